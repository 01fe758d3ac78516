package retention

import (
	"fmt"
	"path/filepath"

	"github.com/raoulx24/logkeep/internal/logfile"
	"github.com/raoulx24/logkeep/internal/stamp"
)

// Listing is the content of a log directory, split by whether each entry
// name decoded to an instant.
type Listing struct {
	// Records are sorted newest first.
	Records []logfile.Record
	// Foreign holds the paths of entries whose stem is not a token.
	Foreign []string
}

// List creates dir if needed and classifies its entries. Subdirectories
// and entries without a stem are skipped. Nothing is deleted.
func (e *Engine) List(dir string) (Listing, error) {
	if err := e.fs.MkdirAll(dir); err != nil {
		return Listing{}, fmt.Errorf("%w: creating %s: %w", ErrDirectoryUnavailable, dir, err)
	}

	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("%w: reading %s: %w", ErrDirectoryUnavailable, dir, err)
	}

	var listing Listing
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}

		stem := logfile.Stem(ent.Name())
		if stem == "" {
			continue
		}

		full := filepath.Join(dir, ent.Name())

		t, err := stamp.Decode(stem)
		if err != nil {
			listing.Foreign = append(listing.Foreign, full)
			continue
		}

		listing.Records = append(listing.Records, logfile.Record{
			Path:      full,
			Timestamp: t,
		})
	}

	logfile.SortNewestFirst(listing.Records)
	return listing, nil
}

// Collect deletes foreign entries. The first failure aborts.
func (e *Engine) Collect(foreign []string) error {
	for _, path := range foreign {
		if err := e.fs.Remove(path); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorruptEntryCleanup, path, err)
		}
		e.log.Warn("removed unparseable log entry", "path", path)
	}
	return nil
}
