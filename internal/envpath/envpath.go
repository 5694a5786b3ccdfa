// Package envpath appends entries to a search-path style environment
// variable (PYTHONPATH, CLASSPATH, PATH) through an abstract Store so the
// update logic can run against the real process environment or a map.
package envpath

import (
	"os"
	"strings"
)

// DefaultVariable is the search path read by the Robot Framework runner.
const DefaultVariable = "PYTHONPATH"

// Store is a key-value view of an environment.
type Store interface {
	Lookup(name string) (string, bool)
	Set(name, value string) error
}

// Process is the Store backed by the current process environment. Writes are
// visible to this process and to children started afterwards.
type Process struct{}

func (Process) Lookup(name string) (string, bool) { return os.LookupEnv(name) }
func (Process) Set(name, value string) error      { return os.Setenv(name, value) }

// MapStore is an in-memory Store.
type MapStore map[string]string

func (m MapStore) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapStore) Set(name, value string) error {
	m[name] = value
	return nil
}

// Snapshot copies a single variable from src into a fresh MapStore.
func Snapshot(src Store, name string) MapStore {
	m := MapStore{}
	if v, ok := src.Lookup(name); ok {
		m[name] = v
	}
	return m
}

// Value returns the variable's value, or "" when unset.
func Value(s Store, name string) string {
	v, _ := s.Lookup(name)
	return v
}

// Join concatenates the current value and entries with sep. The current
// value is always the first element, so an empty current value produces a
// leading separator.
func Join(current string, sep rune, entries ...string) string {
	parts := make([]string, 0, len(entries)+1)
	parts = append(parts, current)
	parts = append(parts, entries...)
	return strings.Join(parts, string(sep))
}

// Update appends entries to the named variable in s and returns the value
// written.
func Update(s Store, name string, sep rune, entries ...string) (string, error) {
	v := Join(Value(s, name), sep, entries...)
	if err := s.Set(name, v); err != nil {
		return "", err
	}
	return v, nil
}

// Environ returns a copy of base (KEY=VALUE pairs) with name set to value.
// Any existing entries for name are dropped.
func Environ(base []string, name, value string) []string {
	prefix := name + "="
	out := make([]string, 0, len(base)+1)
	for _, kv := range base {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+value)
}
