// Package cache is a small disk-backed key-value store with per-entry
// expiry. ttyfolio keeps the last live host facts in it so the neofetch
// panel can start from them before the first probe returns.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTTL applies when StoreConfig.DefaultTTL is negative.
const DefaultTTL = time.Hour

const entrySuffix = ".json"

// StoreConfig holds configuration for a cache Store.
type StoreConfig struct {
	// Dir is created with 0755 permissions if it does not exist.
	Dir string

	// DefaultTTL is used by Put. 0 means entries never expire.
	DefaultTTL time.Duration

	// Now replaces the clock in tests.
	Now func() time.Time
}

// entry is the file format. Value holds the caller's bytes as is.
type entry struct {
	Key     string          `json:"key"`
	Created time.Time       `json:"created"`
	TTL     time.Duration   `json:"ttl_ns"`
	Value   json.RawMessage `json:"value"`
}

func (e entry) expired(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.Created) > e.TTL
}

// Store keeps one JSON file per key. Writes are atomic via
// temp-file-then-rename, so a reader never sees half an entry.
type Store struct {
	cfg StoreConfig
}

// NewStore opens or creates the cache directory.
func NewStore(cfg StoreConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("cache: no directory")
	}
	if cfg.DefaultTTL < 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", cfg.Dir, err)
	}
	return &Store{cfg: cfg}, nil
}

// Get returns the bytes stored under key. Missing, unreadable and expired
// entries are misses; an expired entry is removed.
func (s *Store) Get(key string) ([]byte, bool) {
	path := s.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil || e.Key != key {
		return nil, false
	}
	if e.expired(s.cfg.Now()) {
		_ = os.Remove(path)
		return nil, false
	}
	return e.Value, true
}

// Put stores value under key with the default TTL. value must be valid
// JSON.
func (s *Store) Put(key string, value []byte) error {
	return s.PutWithTTL(key, value, s.cfg.DefaultTTL)
}

// PutWithTTL stores value under key. A TTL of 0 never expires.
func (s *Store) PutWithTTL(key string, value []byte, ttl time.Duration) error {
	if !json.Valid(value) {
		return fmt.Errorf("cache: value for %q is not JSON", key)
	}
	data, err := json.Marshal(entry{Key: key, Created: s.cfg.Now(), TTL: ttl, Value: value})
	if err != nil {
		return fmt.Errorf("cache: marshal %q: %w", key, err)
	}
	if err := atomicWrite(s.path(key), data, s.cfg.Dir); err != nil {
		return fmt.Errorf("cache: write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cache: delete %q: %w", key, err)
	}
	return nil
}

// Clear removes every entry and any leftover temp files.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cache: clear: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(name, entrySuffix) || strings.HasPrefix(name, ".tmp-") {
			_ = os.Remove(filepath.Join(s.cfg.Dir, name))
		}
	}
	return nil
}

// path maps key to a filesystem-safe file name.
func (s *Store) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.cfg.Dir, hex.EncodeToString(sum[:8])+entrySuffix)
}

func atomicWrite(path string, data []byte, dir string) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
