// Package setup performs the one-time workspace installation: the full
// directory structure, module markers, and the env scaffold.
package setup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"newssense/internal/util"
)

// structureDirs is the complete layout, data tree plus source modules.
var structureDirs = []string{
	"data",
	"data/scraped_news",
	"data/market_data",
	"data/analysis",
	"data/queries",
	"data/gemini_cache",
	"src",
	"src/analyzer",
	"src/news_scraper",
	"src/query_processor",
	"src/utils",
}

// markerDirs get a .keep file so empty module directories survive checkouts.
var markerDirs = []string{
	"src",
	"src/analyzer",
	"src/news_scraper",
	"src/query_processor",
	"src/utils",
}

// accessProbeDirs are the directories the application writes to first.
var accessProbeDirs = []string{
	"data",
	"data/scraped_news",
	"data/queries",
}

const envExample = `# NewsSense environment
NEWSSENSE_ROOT=.
NEWSSENSE_SRC_DIR=src
NEWSSENSE_LOG_LEVEL=info
NEWSSENSE_LOG_FORMAT=text
NEWSSENSE_HISTORY_LIMIT=10
`

type Installer struct {
	root   string
	logger *slog.Logger
}

func NewInstaller(root string, logger *slog.Logger) *Installer {
	return &Installer{root: root, logger: logger}
}

// CreateStructure creates every directory in the layout and drops missing
// markers. Existing directories and markers are left alone.
func (i *Installer) CreateStructure() error {
	for _, dir := range structureDirs {
		if err := util.EnsureDir(filepath.Join(i.root, dir)); err != nil {
			return err
		}
		i.logger.Debug("ensured directory", "dir", dir)
	}
	for _, dir := range markerDirs {
		marker := filepath.Join(i.root, dir, ".keep")
		if util.FileExists(marker) {
			continue
		}
		if err := util.WriteTextAtomic(marker, "newssense module\n"); err != nil {
			return err
		}
	}
	i.logger.Info("directory structure created", "dirs", len(structureDirs))
	return nil
}

// VerifyAccess writes and removes a probe file in each directory the
// application touches first, failing on the first unwritable one.
func (i *Installer) VerifyAccess() error {
	for _, dir := range accessProbeDirs {
		probe := filepath.Join(i.root, dir, ".access-probe")
		if err := os.WriteFile(probe, []byte("ok\n"), 0o644); err != nil {
			return fmt.Errorf("%s: %w", dir, util.ErrNotWritable)
		}
		if err := os.Remove(probe); err != nil {
			return fmt.Errorf("remove probe %s: %w", probe, err)
		}
	}
	return nil
}

// WriteEnvExample writes the .env.example scaffold unless one already exists.
func (i *Installer) WriteEnvExample() error {
	path := filepath.Join(i.root, ".env.example")
	if util.FileExists(path) {
		return nil
	}
	if err := util.WriteTextAtomic(path, envExample); err != nil {
		return err
	}
	i.logger.Info("wrote env scaffold", "path", path)
	return nil
}
