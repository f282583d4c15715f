package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/jsonpp/pkg"
)

// baseConfig is the base name of the configuration files and the member
// holding flag values within them.
const baseConfig = "config"

var defaultDirMode os.FileMode = 0o700

// configPath joins elem to the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// cacheDir returns the directory for transient output.
func cacheDir() string { return pkg.CacheDir() }

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
