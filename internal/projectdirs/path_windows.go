//go:build windows

package projectdirs

import (
	"path/filepath"
	"strings"
)

func projectPath(_, organization, application string) string {
	return filepath.Join(strings.TrimSpace(organization), strings.TrimSpace(application), "cache")
}

func fallbackCacheBase(home string) string {
	return filepath.Join(home, "AppData", "Local")
}
