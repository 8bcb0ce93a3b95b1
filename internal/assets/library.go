// Package assets locates the pre-rendered chart PNGs that feed the
// gallery. Charts live in one folder per panel and follow the
// `<matchup-or-report>_<today|tomorrow>.png` naming convention; the
// folders are produced by the external chart pipeline and treated as
// read-only input here.
package assets

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Default chart folder names, matching the pipeline's output layout.
const (
	DirTodayGame    = "today_game"
	DirTodayBP      = "today_bp"
	DirTomorrowGame = "tomorrow_game"
	DirTomorrowBP   = "tomorrow_bp"
)

// Source binds a panel identifier to the folder its charts come from.
type Source struct {
	PanelID string
	Dir     string
}

// GalleryFiles is the scan result for one panel: image references in
// display order, as forward-slash paths relative to the library root so
// they can be embedded in the generated page as-is.
type GalleryFiles struct {
	PanelID string
	Images  []string
}

// Empty reports whether the scan found no charts for this panel.
func (g GalleryFiles) Empty() bool {
	return len(g.Images) == 0
}

// Library scans chart folders under a root directory.
type Library struct {
	root    string
	sources []Source
}

// NewLibrary creates a library rooted at root with the given sources.
// Source order is preserved; it becomes the gallery's tab order.
func NewLibrary(root string, sources []Source) *Library {
	return &Library{root: root, sources: sources}
}

// Root returns the library's root directory.
func (l *Library) Root() string {
	return l.root
}

// Sources returns the configured panel-to-folder bindings in order.
func (l *Library) Sources() []Source {
	return l.sources
}

// Scan lists each source folder's PNG files, sorted lexicographically.
// A missing folder yields an empty list for that panel rather than an
// error; the chart pipeline may simply not have produced it yet.
func (l *Library) Scan() ([]GalleryFiles, error) {
	out := make([]GalleryFiles, 0, len(l.sources))
	for _, src := range l.sources {
		images, err := listPNGs(filepath.Join(l.root, src.Dir), src.Dir)
		if err != nil {
			return nil, err
		}
		out = append(out, GalleryFiles{PanelID: src.PanelID, Images: images})
	}
	return out, nil
}

// WatchDirs returns the absolute folder paths a watcher should monitor.
func (l *Library) WatchDirs() []string {
	dirs := make([]string, 0, len(l.sources))
	for _, src := range l.sources {
		dirs = append(dirs, filepath.Join(l.root, src.Dir))
	}
	return dirs
}

func listPNGs(dir, relDir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var images []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		images = append(images, path.Join(relDir, e.Name()))
	}
	sort.Strings(images)
	return images, nil
}
