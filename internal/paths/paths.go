// Package paths guarantees the on-disk layout NewsSense assumes before any
// other component reads or writes data files.
package paths

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"newssense/internal/config"
	"newssense/internal/util"
)

// dataDirs is the fixed set of directories every run expects under the
// workspace root.
var dataDirs = []string{
	"data",
	"data/scraped_news",
	"data/market_data",
	"data/analysis",
	"data/queries",
}

// Workspace resolves and prepares the directories the application works in.
// The search path and logger are owned by the caller; nothing here touches
// process-global state.
type Workspace struct {
	Root   string // directory the data tree lives under
	Base   string // installation base used by AbsolutePath
	SrcDir string // importable source directory, resolved relative to Root
	Search *SearchPath
	Logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) (*Workspace, error) {
	base, err := DefaultBase()
	if err != nil {
		return nil, err
	}
	return &Workspace{
		Root:   cfg.Root,
		Base:   base,
		SrcDir: cfg.SrcDir,
		Search: NewSearchPath(),
		Logger: logger,
	}, nil
}

// DefaultBase returns the installation base directory, two levels above the
// directory holding the running executable.
func DefaultBase() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(exe))), nil
}

// FixPathIssues creates the fixed data directories and makes the source
// directory discoverable on the search path. Calling it again is a no-op
// apart from re-checking the directories.
func (w *Workspace) FixPathIssues() error {
	for _, dir := range dataDirs {
		if err := util.EnsureDir(filepath.Join(w.Root, dir)); err != nil {
			return err
		}
	}

	srcPath, err := filepath.Abs(filepath.Join(w.Root, w.SrcDir))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.SrcDir, err)
	}
	if w.Search.Prepend(srcPath) {
		w.Logger.Info("added source directory to search path", "path", srcPath)
	}
	return nil
}

// EnsureDataDirectory creates data/<dataType> (just data when dataType is
// empty) and returns the relative path used, whether or not it existed.
func (w *Workspace) EnsureDataDirectory(dataType string) (string, error) {
	dir := "data"
	if dataType != "" {
		dir = filepath.Join("data", dataType)
	}
	if err := util.EnsureDir(filepath.Join(w.Root, dir)); err != nil {
		return "", err
	}
	return dir, nil
}

// AbsolutePath anchors a relative path at the installation base. It is a
// pure path computation; the target is not checked for existence.
func (w *Workspace) AbsolutePath(relativePath string) string {
	return filepath.Join(w.Base, relativePath)
}
