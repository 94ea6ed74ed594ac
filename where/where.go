// Package where resolves the filesystem locations used by anistream.
package where

import (
	"os"
	"path/filepath"

	"github.com/anistream/anistream/constant"
	"github.com/anistream/anistream/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "ANISTREAM_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring ANISTREAM_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache returns the directory holding scraped listings, schedules and metadata lookups.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory for daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History is the watched-episodes file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Favorites is the favorites file.
func Favorites() string {
	return filepath.Join(Config(), "favorites.json")
}

// MetadataBinds is the title to Jikan id registry.
func MetadataBinds() string {
	return filepath.Join(Config(), "jikan.json")
}

// Queries is the remembered search queries file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Listings returns the directory of the scraped page cache.
func Listings() string {
	return ensureDir(filepath.Join(Cache(), "listings"))
}
