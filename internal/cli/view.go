package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"matchdeck/internal/assets"
	"matchdeck/internal/gallery"
	"matchdeck/internal/ui"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the chart gallery in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib := a.library()
			scanned, err := lib.Scan()
			if err != nil {
				return err
			}
			g, err := a.galleryFrom(scanned)
			if err != nil {
				return err
			}
			p := tea.NewProgram(ui.NewModel(g, lib.Root()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running viewer: %w", err)
			}
			return nil
		},
	}
}

// galleryFrom assembles the gallery model from a library scan, keeping
// the configured tab order. Panels without charts stay in the gallery
// so the viewer can show their empty state.
func (a *app) galleryFrom(scanned []assets.GalleryFiles) (*gallery.Gallery, error) {
	byPanel := make(map[string][]string, len(scanned))
	for _, g := range scanned {
		byPanel[g.PanelID] = g.Images
	}
	panels := make([]*gallery.Panel, 0, len(a.cfg.Tabs))
	for _, tab := range a.cfg.Tabs {
		p := &gallery.Panel{ID: tab.ID, Title: tab.Label}
		if images := byPanel[tab.ID]; len(images) > 0 {
			show, err := gallery.NewSlideshow(images)
			if err != nil {
				return nil, err
			}
			p.Show = show
		}
		panels = append(panels, p)
	}
	return gallery.New(panels)
}
