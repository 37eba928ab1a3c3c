// Package prefs persists namespaced user preferences as JSON files under the
// user config dir. Writes are atomic (tmp + rename).
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store is a file-backed preference store. One JSON file per namespace,
// holding a flat key/value map.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore returns a store rooted at dir. An empty dir falls back to
// <user config dir>/orderdeck/prefs.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "orderdeck", "prefs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// SetPreference stores value under namespace/key, dropping any write error.
// Preference writes are fire-and-forget; a lost preference only costs a
// default on next startup.
func (s *Store) SetPreference(namespace, key, value string) {
	_ = s.Set(namespace, key, value)
}

// Set stores value under namespace/key.
func (s *Store) Set(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read(namespace)
	if err != nil {
		return err
	}
	if m == nil {
		m = map[string]string{}
	}
	m[key] = value

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	path := s.path(namespace)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Get returns the stored value, or "" when the key or namespace is absent.
func (s *Store) Get(namespace, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read(namespace)
	if err != nil {
		return "", err
	}
	return m[key], nil
}

func (s *Store) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}

func (s *Store) read(namespace string) (map[string]string, error) {
	data, err := os.ReadFile(s.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
