// Package cache provides a filesystem-backed TTL cache for scraped listings and details.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/log"
	"github.com/spf13/afero"
)

// Store keeps JSON entries under a directory and treats entries older than TTL as missing.
type Store struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// New returns a store rooted at dir.
func New(dir string, ttl time.Duration) *Store {
	return &Store{dir: dir, ttl: ttl, now: time.Now}
}

// Key generates a deterministic SHA-256 key from a namespace and a slug or query.
func Key(namespace, id string) string {
	sanitized := namespace + ":" + strings.ToLower(strings.TrimSpace(id))
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read decodes a fresh entry into target and reports whether it was found.
func (s *Store) Read(key string, target any) bool {
	path := s.path(key)

	info, err := filesystem.API().Stat(path)
	if err != nil || s.now().Sub(info.ModTime()) > s.ttl {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Warnf("cache: corrupted entry %s: %s", key, err)
		return false
	}

	return true
}

// Write stores data under key, swapping a temporary file into place.
func (s *Store) Write(key string, data any) error {
	if err := filesystem.API().MkdirAll(s.dir, os.ModePerm); err != nil {
		return err
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	path := s.path(key)
	tmp := path + ".tmp"

	if err := filesystem.API().WriteFile(tmp, encoded, os.ModePerm); err != nil {
		return err
	}

	return filesystem.API().Rename(tmp, path)
}

// CollectGarbage removes expired entries and returns how many were removed.
func (s *Store) CollectGarbage() int {
	var removed int

	_ = filesystem.API().Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if s.now().Sub(info.ModTime()) > s.ttl {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}

		return nil
	})

	return removed
}

// Clear removes every entry.
func (s *Store) Clear() error {
	exists, err := afero.DirExists(filesystem.API(), s.dir)
	if err != nil || !exists {
		return err
	}

	return filesystem.API().RemoveAll(s.dir)
}
