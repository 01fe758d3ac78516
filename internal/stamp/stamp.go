// Package stamp encodes instants as the fixed-width tokens used to name log files.
package stamp

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the token format: YYYY-MM-DD_HH-MM-SS, local time, second precision.
// Tokens sort chronologically as strings only while years are four digits wide.
const Layout = "2006-01-02_15-04-05"

// ErrDecode reports a token that does not match Layout exactly.
var ErrDecode = errors.New("invalid timestamp token")

// Encode formats t in local time.
func Encode(t time.Time) string {
	return t.Local().Format(Layout)
}

// Decode parses token strictly against Layout in local time.
func Decode(token string) (time.Time, error) {
	// time.Parse accepts a fractional second after "05" even when the
	// layout has none, so the width is checked first.
	if len(token) != len(Layout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDecode, token)
	}

	t, err := time.ParseInLocation(Layout, token, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrDecode, token, err)
	}
	return t, nil
}
