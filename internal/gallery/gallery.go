// Package gallery models a tabbed image gallery: a fixed set of panels,
// exactly one active at a time, each owning a circularly-navigable
// slideshow. Panels and image lists are fixed at construction; the only
// mutable state is the active-panel selection and each slideshow's cursor.
package gallery

import "errors"

// Well-known panel identifiers for the matchup gallery.
const (
	PanelTodayGame    = "TodayGame"
	PanelTodayBP      = "TodayBP"
	PanelTomorrowGame = "TomorrowGame"
	PanelTomorrowBP   = "TomorrowBP"
)

// ErrNoPanels is returned when constructing a gallery with no panels.
var ErrNoPanels = errors.New("gallery requires at least one panel")

// Panel is one tab's worth of content: an identifier, a human-readable
// title for the tab button, and the slideshow it owns. Show may be nil
// for a panel whose chart folder was empty.
type Panel struct {
	ID    string
	Title string
	Show  *Slideshow
}

// Empty reports whether the panel has no images to display.
func (p *Panel) Empty() bool {
	return p.Show == nil || p.Show.Len() == 0
}

// Gallery holds an ordered set of panels and tracks which one is active.
// The first panel is active after construction.
type Gallery struct {
	panels []*Panel
	active int
}

// New creates a gallery over the given panels, activating the first.
func New(panels []*Panel) (*Gallery, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	return &Gallery{panels: panels}, nil
}

// Panels returns the panels in tab order.
func (g *Gallery) Panels() []*Panel {
	return g.panels
}

// Len returns the number of panels.
func (g *Gallery) Len() int {
	return len(g.panels)
}

// Active returns the currently active panel.
func (g *Gallery) Active() *Panel {
	return g.panels[g.active]
}

// ActiveIndex returns the tab-order index of the active panel.
func (g *Gallery) ActiveIndex() int {
	return g.active
}

// Select activates the panel with the given identifier, deactivating all
// others. An unknown identifier leaves the selection unchanged and
// returns false.
func (g *Gallery) Select(id string) bool {
	for i, p := range g.panels {
		if p.ID == id {
			g.active = i
			return true
		}
	}
	return false
}

// SelectIndex activates the panel at tab-order index i.
// Out-of-range indexes leave the selection unchanged and return false.
func (g *Gallery) SelectIndex(i int) bool {
	if i < 0 || i >= len(g.panels) {
		return false
	}
	g.active = i
	return true
}

// NextPanel activates the next panel in tab order, wrapping at the end,
// and returns it.
func (g *Gallery) NextPanel() *Panel {
	g.active = (g.active + 1) % len(g.panels)
	return g.Active()
}

// PrevPanel activates the previous panel in tab order, wrapping at the
// start, and returns it.
func (g *Gallery) PrevPanel() *Panel {
	g.active = (g.active - 1 + len(g.panels)) % len(g.panels)
	return g.Active()
}
