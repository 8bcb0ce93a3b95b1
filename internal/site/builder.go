// Package site generates the static gallery page. The page is a
// self-contained index.html: a tab bar, one hidden content block per
// panel, and a small script that mirrors the gallery semantics (one
// visible tab, per-panel circular slideshows).
package site

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"matchdeck/internal/assets"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// Tab names one panel on the generated page.
type Tab struct {
	ID    string // panel identifier, also the content block's element id
	Label string // tab button text
}

// Options configures a Builder.
type Options struct {
	Title  string // page <title> and heading
	Output string // path of the generated index.html
	Tabs   []Tab  // tab order; IDs must match the library's sources
}

// Result summarizes one build.
type Result struct {
	Output string
	Counts map[string]int // images per panel
}

// Builder renders index.html from a chart library.
type Builder struct {
	lib  *assets.Library
	opts Options
	log  *zap.Logger
}

// NewBuilder creates a builder over the given library.
func NewBuilder(lib *assets.Library, opts Options, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{lib: lib, opts: opts, log: log}
}

type pageData struct {
	Title string
	Tabs  []pageTab
	Decks map[string][]string
}

type pageTab struct {
	ID    string
	Label string
	First string
}

// Build scans the library and writes the page. The write is atomic: the
// page is rendered to a temp file next to the output and renamed over it.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	ctx, span := otel.Tracer("matchdeck/site").Start(ctx, "site.build")
	defer span.End()

	scanned, err := b.lib.Scan()
	if err != nil {
		return Result{}, fmt.Errorf("scanning chart folders: %w", err)
	}
	byPanel := make(map[string]assets.GalleryFiles, len(scanned))
	for _, g := range scanned {
		byPanel[g.PanelID] = g
	}

	data := pageData{
		Title: b.opts.Title,
		Decks: make(map[string][]string, len(b.opts.Tabs)),
	}
	counts := make(map[string]int, len(b.opts.Tabs))
	for _, tab := range b.opts.Tabs {
		g := byPanel[tab.ID]
		first := ""
		if len(g.Images) > 0 {
			first = g.Images[0]
		}
		data.Tabs = append(data.Tabs, pageTab{ID: tab.ID, Label: tab.Label, First: first})
		// The script needs an array even for an empty panel.
		images := g.Images
		if images == nil {
			images = []string{}
		}
		data.Decks[tab.ID] = images
		counts[tab.ID] = len(images)
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return Result{}, fmt.Errorf("rendering page: %w", err)
	}
	if err := writeAtomic(b.opts.Output, buf.Bytes()); err != nil {
		return Result{}, err
	}

	for id, n := range counts {
		span.SetAttributes(attribute.Int("site.images."+id, n))
	}
	b.log.Info("page generated",
		zap.String("output", b.opts.Output),
		zap.Any("images", counts))
	return Result{Output: b.opts.Output, Counts: counts}, nil
}

func writeAtomic(dest string, content []byte) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".index-*.html")
	if err != nil {
		return fmt.Errorf("creating temp page: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp page: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", dest, err)
	}
	return nil
}
