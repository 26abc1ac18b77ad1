package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportProfilePlotCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "hull.png")
	require.NoError(t, ExportProfilePlot(testResult(t), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportProfilePlotReportsMkdirFailure(t *testing.T) {
	// A regular file where a directory is needed makes MkdirAll fail;
	// that failure must come back as itself, not as a save error.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := ExportProfilePlot(testResult(t), filepath.Join(blocker, "sub", "hull.png"))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "blocker")
}

func TestExportAreaPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "area.png")
	require.NoError(t, ExportAreaPlot(testResult(t), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
