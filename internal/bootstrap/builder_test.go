package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/logkeep/internal/retention"
	"github.com/raoulx24/logkeep/internal/stamp"
)

var now = time.Date(2024, time.October, 3, 14, 15, 16, 0, time.Local)

func testBuilder(dir string, console *bytes.Buffer) Builder {
	b := NewBuilder().
		AppName("logkeep").
		Qualifier("io").
		Organization("raoulx24").
		Directory(dir).
		Console(nil).
		Now(func() time.Time { return now })
	if console != nil {
		b = b.Console(console)
	}
	return b
}

func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestBuilder_SettersDoNotMutate(t *testing.T) {
	base := NewBuilder().AppName("one")
	other := base.AppName("two").LevelFor("net", zerolog.WarnLevel)
	third := other.LevelFor("db", zerolog.ErrorLevel)

	assert.Equal(t, "one", base.appName)
	assert.Equal(t, "two", other.appName)
	assert.Nil(t, base.levelFor)
	assert.Len(t, other.levelFor, 1)
	assert.Len(t, third.levelFor, 2)
}

func TestFinish_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		b    Builder
		want string
	}{
		{"all", NewBuilder(), "app name, qualifier, organization"},
		{"app name", NewBuilder().Qualifier("io").Organization("org"), "app name"},
		{"qualifier", NewBuilder().AppName("app").Organization("org"), "qualifier"},
		{"organization", NewBuilder().AppName("app").Qualifier("io"), "organization"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := tc.b.Directory(t.TempDir()).Finish()
			assert.Nil(t, h)
			assert.ErrorIs(t, err, ErrSetup)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFinish_InvalidMaxFiles(t *testing.T) {
	_, err := testBuilder(t.TempDir(), nil).MaxFiles(0).Finish()
	assert.ErrorIs(t, err, retention.ErrInvalidLimit)
}

func TestFinish_CreatesRunFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	h, err := testBuilder(dir, nil).Finish()
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, dir, h.Dir())
	assert.Equal(t, filepath.Join(dir, "2024-10-03_14-15-16.log"), h.Path())
	_, err = os.Stat(h.Path())
	assert.NoError(t, err)
}

func TestFinish_TrimsBeforeCreating(t *testing.T) {
	dir := t.TempDir()
	var want []string
	for i := 1; i <= 5; i++ {
		name := stamp.Encode(now.Add(-time.Duration(i)*24*time.Hour)) + ".log"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
		if i < 5 {
			want = append(want, name)
		}
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	h, err := testBuilder(dir, nil).MaxFiles(5).Finish()
	require.NoError(t, err)
	defer h.Close()

	want = append(want, stamp.Encode(now)+".log")
	sort.Strings(want)
	assert.Equal(t, want, names(t, dir))

	report := h.Report()
	assert.Len(t, report.Kept, 4)
	assert.Len(t, report.Evicted, 1)
	assert.Len(t, report.Collected, 1)
}

func TestFinish_Twice(t *testing.T) {
	dir := t.TempDir()

	first, err := testBuilder(dir, nil).MaxFiles(3).Finish()
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := testBuilder(dir, nil).
		MaxFiles(3).
		Now(func() time.Time { return now.Add(time.Minute) }).
		Finish()
	require.NoError(t, err)
	defer second.Close()

	assert.Len(t, names(t, dir), 2)
}

func TestFinish_KeepForeign(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	h, err := testBuilder(dir, nil).KeepForeign(true).Finish()
	require.NoError(t, err)
	defer h.Close()

	assert.Contains(t, names(t, dir), "notes.txt")
}

func TestFinish_DirectoryUnavailable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	h, err := testBuilder(file, nil).Finish()
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrSetup)
	assert.ErrorIs(t, err, retention.ErrDirectoryUnavailable)
}

func TestHandle_WritesBothSinks(t *testing.T) {
	var console bytes.Buffer
	h, err := testBuilder(t.TempDir(), &console).Finish()
	require.NoError(t, err)

	logger := h.Logger()
	logger.Info().Msg("hello")
	require.NoError(t, h.Close())

	assert.Equal(t, "[INFO] main - hello\n", console.String())

	data, err := os.ReadFile(h.Path())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\[INFO\] \d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2} main - hello\n$`), string(data))
}

func TestHandle_Levels(t *testing.T) {
	var console bytes.Buffer
	h, err := testBuilder(t.TempDir(), &console).
		GlobalLevel(zerolog.InfoLevel).
		LevelFor("chatty", zerolog.DebugLevel).
		LevelFor("quiet", zerolog.ErrorLevel).
		Finish()
	require.NoError(t, err)
	defer h.Close()

	root := h.Logger()
	root.Debug().Msg("root debug")
	root.Info().Msg("root info")

	chatty := h.Module("chatty")
	chatty.Debug().Msg("chatty debug")

	quiet := h.Module("quiet")
	quiet.Warn().Msg("quiet warn")
	quiet.Error().Msg("quiet error")

	other := h.Module("other")
	other.Debug().Msg("other debug")

	out := console.String()
	assert.NotContains(t, out, "root debug")
	assert.Contains(t, out, "[INFO] main - root info")
	assert.Contains(t, out, "[DEBUG] chatty - chatty debug")
	assert.NotContains(t, out, "quiet warn")
	assert.Contains(t, out, "[ERROR] quiet - quiet error")
	assert.NotContains(t, out, "other debug")
}

func TestHandle_CloseTwice(t *testing.T) {
	h, err := testBuilder(t.TempDir(), nil).Finish()
	require.NoError(t, err)

	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())
}

func TestLogDir_FromCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir, err := NewBuilder().AppName("logkeep").Qualifier("io").Organization("raoulx24").LogDir()
	require.NoError(t, err)
	assert.Equal(t, LogSubdir, filepath.Base(dir))
}
