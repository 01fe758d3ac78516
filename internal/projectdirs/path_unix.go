//go:build !darwin && !windows

package projectdirs

import (
	"path/filepath"
	"strings"
)

// projectPath lowercases the application name and drops its spaces.
func projectPath(_, _, application string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(application)), " ", "")
}

func fallbackCacheBase(home string) string {
	return filepath.Join(home, ".cache")
}
