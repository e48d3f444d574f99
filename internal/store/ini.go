// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// INISuffixes lists the file name suffixes accepted by the INI back end.
var INISuffixes = []string{".ini", ".cfg"}

// Nested section names are dot separated ("[db.primary]").
const (
	sectionDelimiter      = "."
	sectionRune      rune = '.'
)

// iniStore maps keys onto INI sections: the last segment is the key name and
// the preceding segments, joined with ".", name the section. Single-segment
// keys live in the unnamed default section.
type iniStore struct {
	mu   sync.Mutex
	path string
	file *ini.File
}

// NewINI opens the INI file at path. The file must exist and carry one of
// [INISuffixes].
func NewINI(path string, log *logger.Logger) (*Backend, error) {
	if !hasINISuffix(path) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFileType, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, failure(path, "read", err)
	}

	file, err := ini.Load(content)
	if err != nil {
		return nil, failure(path, "parse", withINILine(content, err))
	}

	return newBackend("ini", path, &iniStore{path: path, file: file}, log), nil
}

func hasINISuffix(path string) bool {
	for _, suffix := range INISuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// withINILine adds the 1-based line number to a delimiter error; the parser
// reports the offending text only.
func withINILine(content []byte, err error) error {
	var delimErr ini.ErrDelimiterNotFound
	if !errors.As(err, &delimErr) {
		return err
	}

	for i, line := range bytes.Split(content, []byte("\n")) {
		if strings.TrimSpace(string(line)) == strings.TrimSpace(delimErr.Line) {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return err
}

// locate splits key into section and key name. Section segments containing
// the section delimiter, or naming the default section, would alias another
// key and are refused.
func (s *iniStore) locate(key string) (section, name string, err error) {
	segs := models.SplitPath(key, DefaultSeparator)
	last := len(segs) - 1
	if last == 0 {
		return ini.DefaultSection, segs[0], nil
	}

	for _, seg := range segs[:last] {
		if strings.Contains(seg, sectionDelimiter) {
			return "", "", fmt.Errorf("%w: section segment %q contains %q", models.ErrInvalidPath, seg, sectionDelimiter)
		}
	}
	section = strings.Join(segs[:last], sectionDelimiter)
	if section == ini.DefaultSection {
		return "", "", fmt.Errorf("%w: %q names the default section", models.ErrInvalidPath, key)
	}
	return section, segs[last], nil
}

func (s *iniStore) get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sectionName, name, err := s.locate(key)
	if err != nil {
		return "", false, err
	}
	section, err := s.file.GetSection(sectionName)
	if err != nil {
		return "", false, nil
	}

	// KeysHash holds the section's own keys; GetKey would fall back to
	// parent sections.
	value, ok := section.KeysHash()[name]
	return value, ok, nil
}

func (s *iniStore) put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sectionName, name, err := s.locate(key)
	if err != nil {
		return err
	}
	s.file.Section(sectionName).Key(name).SetValue(value)

	return s.save()
}

// save writes the file, quoting values the parser would otherwise alter on
// the next load. The in-memory values stay unquoted.
func (s *iniStore) save() error {
	quoted := make(map[*ini.Key]string)
	for _, section := range s.file.Sections() {
		for _, k := range section.Keys() {
			if v := k.Value(); needsTripleQuote(v) {
				quoted[k] = v
				k.SetValue(tripleQuote + v + tripleQuote)
			}
		}
	}
	defer func() {
		for k, v := range quoted {
			k.SetValue(v)
		}
	}()

	if err := s.file.SaveTo(s.path); err != nil {
		return failure(s.path, "save", err)
	}
	return nil
}

const tripleQuote = `"""`

// needsTripleQuote reports whether v, written bare, would not read back as
// itself: the parser trims surrounding quotes and whitespace, and treats a
// trailing backslash as a continuation. Values holding a newline, a backtick,
// "#" or ";" are already quoted verbatim by the writer.
func needsTripleQuote(v string) bool {
	if strings.ContainsAny(v, "\n`#;") {
		return false
	}
	return strings.TrimSpace(v) != v ||
		strings.HasPrefix(v, `"`) ||
		strings.HasPrefix(v, "'") ||
		strings.HasSuffix(v, `\`)
}

func (s *iniStore) list(_ context.Context, prefix string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string)
	for _, section := range s.file.Sections() {
		var base []string
		if section.Name() != ini.DefaultSection {
			base = models.SplitPath(section.Name(), sectionRune)
		}

		for _, k := range section.Keys() {
			key := strings.Join(append(base[:len(base):len(base)], k.Name()), keySeparator)
			if within(key, prefix) {
				out[key] = k.Value()
			}
		}
	}

	return out, nil
}

func (s *iniStore) close() error { return nil }
