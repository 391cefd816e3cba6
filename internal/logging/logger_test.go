package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		CloseAll()
		configMu.Lock()
		config = Config{}
		logsDir = ""
		configMu.Unlock()
	})
}

func readLogs(t *testing.T, dir string, category Category) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*_"+string(category)+".log"))
	require.NoError(t, err)
	require.Len(t, matches, 1, "expected one log file for %s", category)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	return string(data)
}

func TestInitializeRequiresDir(t *testing.T) {
	resetLogging(t)
	assert.Error(t, Initialize("", Config{DebugMode: true}))
}

func TestDisabledModeWritesNothing(t *testing.T) {
	resetLogging(t)
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, Initialize(dir, Config{DebugMode: false}))
	Navigation("should not be written")
	CloseAll()

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "logs dir should not be created in production mode")
	assert.False(t, IsDebugMode())
}

func TestCategoryFilesAreWritten(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, Config{DebugMode: true, Level: "debug"}))
	NavigationDebug("transition %s -> %s", "feed", "profile")
	Profile("mounted instance %s", "abc")
	CloseAll()

	assert.Contains(t, readLogs(t, dir, CategoryNavigation), "transition feed -> profile")
	assert.Contains(t, readLogs(t, dir, CategoryProfile), "mounted instance abc")
	assert.Contains(t, readLogs(t, dir, CategoryBoot), "logging initialized")
}

func TestCategoryFilter(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, Config{
		DebugMode:  true,
		Categories: map[string]bool{"gallery": false},
	}))

	assert.True(t, IsCategoryEnabled(CategoryNavigation))
	assert.False(t, IsCategoryEnabled(CategoryGallery))

	GalleryDebug("dropped")
	CloseAll()

	matches, err := filepath.Glob(filepath.Join(dir, "*_gallery.log"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestLevelFiltersDebug(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, Config{DebugMode: true, Level: "info"}))
	ContentWarn("fixture missing highlights")
	Get(CategoryContent).Debug("hidden detail")
	CloseAll()

	out := readLogs(t, dir, CategoryContent)
	assert.Contains(t, out, "fixture missing highlights")
	assert.False(t, strings.Contains(out, "hidden detail"))
}

func TestJSONFormat(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(dir, Config{DebugMode: true, JSONFormat: true}))
	Get(CategorySidebar).With("view", "messages").Info("activated")
	CloseAll()

	out := readLogs(t, dir, CategorySidebar)
	assert.Contains(t, out, `"msg":"activated"`)
	assert.Contains(t, out, `"view":"messages"`)
}

func TestTimerThreshold(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, Config{DebugMode: true}))

	timer := StartTimer(CategoryGallery, "render")
	time.Sleep(2 * time.Millisecond)
	elapsed := timer.StopWithThreshold(time.Nanosecond)
	CloseAll()

	assert.Greater(t, elapsed, time.Duration(0))
	assert.Contains(t, readLogs(t, dir, CategoryGallery), "render took")
}
