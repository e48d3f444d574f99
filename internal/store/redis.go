// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !noredis

package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/MKhiriev/go-config-access/internal/logger"
)

// RedisEnabled reports whether the Redis back end is compiled in.
const RedisEnabled = true

// scanCount is the COUNT hint passed to SCAN.
const scanCount = 256

// redisStore keeps every configuration key as a plain Redis string.
type redisStore struct {
	address string
	pool    *redis.Pool
}

// NewRedis connects to the Redis server at address (host:port). An empty
// password skips AUTH.
func NewRedis(ctx context.Context, address, password string, timeout time.Duration, log *logger.Logger) (*Backend, error) {
	pool := &redis.Pool{
		MaxIdle:     4,
		IdleTimeout: 5 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", address,
				redis.DialConnectTimeout(timeout),
				redis.DialReadTimeout(timeout),
				redis.DialWriteTimeout(timeout),
				redis.DialPassword(password),
			)
		},
	}

	s := &redisStore{address: address, pool: pool}
	if err := s.do(ctx, "PING", func(conn redis.Conn) error {
		_, err := redis.DoContext(conn, ctx, "PING")
		return err
	}); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return newBackend("redis", address, s, log), nil
}

// do runs fn on a pooled connection.
func (s *redisStore) do(ctx context.Context, op string, fn func(redis.Conn) error) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return failure(s.address, "connect", err)
	}
	defer conn.Close()

	if err = fn(conn); err != nil {
		return failure(s.address, op, err)
	}
	return nil
}

func (s *redisStore) get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.do(ctx, "GET "+key, func(conn redis.Conn) error {
		v, err := redis.String(redis.DoContext(conn, ctx, "GET", key))
		if errors.Is(err, redis.ErrNil) {
			return nil
		}
		if err != nil {
			return err
		}
		value, ok = v, true
		return nil
	})
	return value, ok, err
}

func (s *redisStore) put(ctx context.Context, key, value string) error {
	return s.do(ctx, "SET "+key, func(conn redis.Conn) error {
		_, err := redis.DoContext(conn, ctx, "SET", key, value)
		return err
	})
}

func (s *redisStore) exists(ctx context.Context, key string) (ok bool, err error) {
	err = s.do(ctx, "EXISTS "+key, func(conn redis.Conn) error {
		ok, err = redis.Bool(redis.DoContext(conn, ctx, "EXISTS", key))
		return err
	})
	return ok, err
}

func (s *redisStore) list(ctx context.Context, prefix string) (map[string]string, error) {
	out := make(map[string]string)
	err := s.do(ctx, "SCAN "+prefix, func(conn redis.Conn) error {
		pattern := escapeGlob(prefix) + "*"

		cursor := 0
		for {
			reply, err := redis.Values(redis.DoContext(conn, ctx, "SCAN", cursor, "MATCH", pattern, "COUNT", scanCount))
			if err != nil {
				return err
			}

			var keys []string
			if _, err = redis.Scan(reply, &cursor, &keys); err != nil {
				return err
			}

			if err = s.fetch(ctx, conn, keys, out); err != nil {
				return err
			}

			if cursor == 0 {
				return nil
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fetch reads keys with one MGET. Keys deleted since SCAN come back nil and
// are skipped.
func (s *redisStore) fetch(ctx context.Context, conn redis.Conn, keys []string, out map[string]string) error {
	if len(keys) == 0 {
		return nil
	}

	values, err := redis.Values(redis.DoContext(conn, ctx, "MGET", redis.Args{}.AddFlat(keys)...))
	if err != nil {
		return err
	}

	for i, raw := range values {
		if raw == nil {
			continue
		}
		value, err := redis.String(raw, nil)
		if err != nil {
			return err
		}
		out[keys[i]] = value
	}
	return nil
}

func (s *redisStore) close() error {
	return s.pool.Close()
}

// escapeGlob quotes the characters SCAN MATCH treats as wildcards.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
