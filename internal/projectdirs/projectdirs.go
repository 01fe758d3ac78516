// Package projectdirs resolves the per-application cache directory from the
// application identity (qualifier, organization, application name).
package projectdirs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

var ErrNoApplication = errors.New("application name is required")

// CacheDir returns the platform cache directory for the application.
func CacheDir(qualifier, organization, application string) (string, error) {
	if strings.TrimSpace(application) == "" {
		return "", ErrNoApplication
	}

	base, err := cacheBase()
	if err != nil {
		return "", fmt.Errorf("resolving cache directory: %w", err)
	}

	return filepath.Join(base, projectPath(qualifier, organization, application)), nil
}

// cacheBase prefers os.UserCacheDir and falls back to the home directory
// when the environment does not define one.
func cacheBase() (string, error) {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return fallbackCacheBase(home), nil
}
