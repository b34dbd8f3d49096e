package paths

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{
		Root:   t.TempDir(),
		Base:   "/opt/newssense",
		SrcDir: "src",
		Search: NewSearchPath(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestFixPathIssuesCreatesDataDirs(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	require.NoError(t, ws.FixPathIssues())

	for _, dir := range []string{"data", "data/scraped_news", "data/market_data", "data/analysis", "data/queries"} {
		info, err := os.Stat(filepath.Join(ws.Root, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestFixPathIssuesPrependsSrcOnce(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	require.NoError(t, ws.FixPathIssues())
	require.NoError(t, ws.FixPathIssues())

	srcPath, err := filepath.Abs(filepath.Join(ws.Root, "src"))
	require.NoError(t, err)

	entries := ws.Search.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, srcPath, entries[0])
}

func TestFixPathIssuesKeepsExistingEntriesBehindSrc(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	ws.Search = NewSearchPath("/usr/lib/newssense")
	require.NoError(t, ws.FixPathIssues())

	entries := ws.Search.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "/usr/lib/newssense", entries[1])
}

func TestEnsureDataDirectory(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)

	dir, err := ws.EnsureDataDirectory("market_data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "market_data"), dir)
	assert.DirExists(t, filepath.Join(ws.Root, dir))

	again, err := ws.EnsureDataDirectory("market_data")
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestEnsureDataDirectoryDefault(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	dir, err := ws.EnsureDataDirectory("")
	require.NoError(t, err)
	assert.Equal(t, "data", dir)
	assert.DirExists(t, filepath.Join(ws.Root, "data"))
}

func TestAbsolutePathIsPure(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)

	got := ws.AbsolutePath("foo/bar")
	assert.Equal(t, filepath.Join("/opt/newssense", "foo/bar"), got)

	// No filesystem access happens; the target does not exist.
	assert.NoFileExists(t, got)
	assert.Equal(t, got, ws.AbsolutePath("foo/bar"))
}
