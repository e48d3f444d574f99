// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/internal/store"
)

// DefaultTimeout bounds connecting and every request of the network back
// ends unless WithTimeout says otherwise.
const DefaultTimeout = 5 * time.Second

const (
	defaultConsulPort = "8500"
	defaultRedisPort  = "6379"
)

type options struct {
	logger  *logger.Logger
	timeout time.Duration
}

// Option configures GetConfiguration.
type Option func(*options)

// WithLogger makes the backend log through l. Without it nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithTimeout sets the dial and request timeout of network back ends.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

type constructor func(ctx context.Context, u *url.URL, opts options) (Configuration, error)

var constructors = map[string]constructor{
	"file":       newINI,
	"json":       newJSON,
	"yaml":       newYAML,
	"yml":        newYAML,
	"consul":     newConsul,
	"redis":      newRedis,
	"sqlite":     newSQLite,
	"postgres":   newPostgres,
	"postgresql": newPostgres,
	"http":       newHTTP,
	"https":      newHTTP,
}

// Schemes returns the URI schemes GetConfiguration recognises, sorted. A
// recognised scheme may still be compiled out of the binary.
func Schemes() []string {
	schemes := make([]string, 0, len(constructors))
	for scheme := range constructors {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}

// GetConfiguration returns the backend selected by the scheme of uri. The
// caller owns the result and must Close it.
func GetConfiguration(ctx context.Context, uri string, opts ...Option) (Configuration, error) {
	o := options{logger: logger.Nop(), timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllFormedURI, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: %q has no scheme", ErrIllFormedURI, uri)
	}

	newBackend, ok := constructors[u.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedBackend, u.Scheme)
	}

	c, err := newBackend(ctx, u, o)
	if err != nil {
		o.logger.Err(err).Str("func", "GetConfiguration").Str("uri", u.Redacted()).Msg("error creating backend")
		return nil, err
	}

	o.logger.Debug().Str("func", "GetConfiguration").Str("uri", u.Redacted()).Msg("backend ready")
	return c, nil
}

// localPath folds the authority into the path, so that "file://etc/x.ini",
// "file:///etc/x.ini" and "file:/etc/x.ini" all name /etc/x.ini.
func localPath(u *url.URL) string {
	p := u.Host + u.Path
	if u.Opaque != "" {
		p = u.Opaque
	}
	return "/" + strings.TrimLeft(p, "/")
}

// endpoint returns host:port, adding defaultPort when the URI has none.
func endpoint(u *url.URL, defaultPort string) (string, error) {
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrIllFormedURI, u.Redacted())
	}

	port := u.Port()
	if port == "" {
		port = defaultPort
	}
	return net.JoinHostPort(host, port), nil
}

// secret returns the password of the URI userinfo, or the user name when
// the userinfo holds a single token.
func secret(u *url.URL) string {
	if u.User == nil {
		return ""
	}
	if password, ok := u.User.Password(); ok {
		return password
	}
	return u.User.Username()
}

// withPathPrefix applies a non-empty URI path as the prefix of c.
func withPathPrefix(ctx context.Context, c Configuration, u *url.URL) (Configuration, error) {
	if strings.Trim(u.Path, "/") == "" {
		return c, nil
	}
	if err := c.SetPrefix(ctx, u.Path); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func newINI(_ context.Context, u *url.URL, o options) (Configuration, error) {
	return store.NewINI(localPath(u), o.logger)
}

func newJSON(_ context.Context, u *url.URL, o options) (Configuration, error) {
	return store.NewJSON(localPath(u), o.logger)
}

func newYAML(_ context.Context, u *url.URL, o options) (Configuration, error) {
	return store.NewYAML(localPath(u), o.logger)
}

func newConsul(ctx context.Context, u *url.URL, o options) (Configuration, error) {
	addr, err := endpoint(u, defaultConsulPort)
	if err != nil {
		return nil, err
	}

	b, err := store.NewConsul(ctx, addr, o.timeout, o.logger)
	if err != nil {
		return nil, err
	}
	return withPathPrefix(ctx, b, u)
}

func newRedis(ctx context.Context, u *url.URL, o options) (Configuration, error) {
	addr, err := endpoint(u, defaultRedisPort)
	if err != nil {
		return nil, err
	}

	b, err := store.NewRedis(ctx, addr, secret(u), o.timeout, o.logger)
	if err != nil {
		return nil, err
	}
	return withPathPrefix(ctx, b, u)
}

func newSQLite(ctx context.Context, u *url.URL, o options) (Configuration, error) {
	return store.NewSQL(ctx, store.DialectSQLite, localPath(u), o.logger)
}

func newPostgres(ctx context.Context, u *url.URL, o options) (Configuration, error) {
	return store.NewSQL(ctx, store.DialectPostgres, u.String(), o.logger)
}

func newHTTP(ctx context.Context, u *url.URL, o options) (Configuration, error) {
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrIllFormedURI, u.Redacted())
	}

	base := url.URL{Scheme: u.Scheme, Host: u.Host}
	b, err := store.NewHTTP(ctx, base.String(), secret(u), o.timeout, o.logger)
	if err != nil {
		return nil, err
	}
	return withPathPrefix(ctx, b, u)
}
