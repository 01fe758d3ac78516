// Package logfile describes the timestamped log files found in a log directory.
package logfile

import (
	"sort"
	"strings"
	"time"
)

// Record represents a single log file whose name decoded to an instant.
type Record struct {
	Path      string
	Timestamp time.Time
}

// Stem returns name without its final extension. A leading dot does not
// start an extension, so ".env" is its own stem.
func Stem(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}

// SortNewestFirst orders records by descending timestamp. Records with
// equal timestamps keep their relative order.
func SortNewestFirst(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}

// Paths returns the path of every record, in order.
func Paths(records []Record) []string {
	paths := make([]string, 0, len(records))
	for _, r := range records {
		paths = append(paths, r.Path)
	}
	return paths
}
