package maze_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeMazeFile stores content in a temp file and returns its path.
func writeMazeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
