//go:build darwin

package projectdirs

import (
	"path/filepath"
	"strings"
)

// projectPath is the bundle identifier "qualifier.organization.application"
// with spaces turned into dashes.
func projectPath(qualifier, organization, application string) string {
	id := strings.Join([]string{
		strings.TrimSpace(qualifier),
		strings.TrimSpace(organization),
		strings.TrimSpace(application),
	}, ".")
	return strings.ReplaceAll(id, " ", "-")
}

func fallbackCacheBase(home string) string {
	return filepath.Join(home, "Library", "Caches")
}
