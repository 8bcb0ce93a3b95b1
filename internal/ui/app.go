package ui

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"matchdeck/internal/assets"
	"matchdeck/internal/gallery"
	"matchdeck/internal/preview"
)

// previewMsg delivers an asynchronously rendered chart preview.
type previewMsg struct {
	key     string
	content string
	err     error
}

// Model is the viewer's root Bubble Tea model.
type Model struct {
	gallery *gallery.Gallery
	root    string // chart library root; image refs are relative to it

	keys KeyMap
	help help.Model

	width  int
	height int

	previews map[string]string // rendered previews keyed by ref and size
	pending  map[string]bool
}

// Ensure Model can run under tea.NewProgram.
var _ tea.Model = (*Model)(nil)

// NewModel creates the viewer over a gallery whose image references are
// relative to root.
func NewModel(g *gallery.Gallery, root string) *Model {
	return &Model{
		gallery:  g,
		root:     root,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		previews: make(map[string]string),
		pending:  make(map[string]bool),
	}
}

// Init implements tea.Model. The first preview loads once the terminal
// size is known.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Previews are rendered for a specific cell budget; a resize
		// invalidates all of them.
		m.previews = make(map[string]string)
		m.pending = make(map[string]bool)
		return m, m.loadCurrent()

	case previewMsg:
		delete(m.pending, msg.key)
		if msg.err != nil {
			m.previews[msg.key] = Styles.Muted.Render("cannot render chart: " + msg.err.Error())
		} else {
			m.previews[msg.key] = msg.content
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.gallery.NextPanel()
			return m, m.loadCurrent()
		case key.Matches(msg, m.keys.PrevTab):
			m.gallery.PrevPanel()
			return m, m.loadCurrent()
		case key.Matches(msg, m.keys.JumpTab):
			i := int(msg.String()[0] - '1')
			if m.gallery.SelectIndex(i) {
				return m, m.loadCurrent()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextSlide):
			if p := m.gallery.Active(); !p.Empty() {
				p.Show.Next()
			}
			return m, m.loadCurrent()
		case key.Matches(msg, m.keys.PrevSlide):
			if p := m.gallery.Active(); !p.Empty() {
				p.Show.Prev()
			}
			return m, m.loadCurrent()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("MLB Matchups") + "\n")
	b.WriteString(m.tabBar() + "\n")
	b.WriteString(m.panelBody() + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) tabBar() string {
	tabs := make([]string, 0, m.gallery.Len())
	for i, p := range m.gallery.Panels() {
		style := Styles.TabInactive
		if i == m.gallery.ActiveIndex() {
			style = Styles.TabActive
		}
		tabs = append(tabs, style.Render(p.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m *Model) panelBody() string {
	p := m.gallery.Active()
	if p.Empty() {
		return Styles.Box.Render(Styles.Empty.Render("No charts yet - run the daily pipeline first."))
	}

	ref := p.Show.Current()
	var b strings.Builder

	if name, ok := assets.ParseChartName(ref); ok {
		b.WriteString(Styles.Normal.Render(name.Subject) + "  " + Styles.Muted.Render("("+name.Day+")") + "\n")
	} else {
		b.WriteString(Styles.Normal.Render(path.Base(ref)) + "\n")
	}
	b.WriteString(Styles.Status.Render(fmt.Sprintf("chart %d/%d", p.Show.Index()+1, p.Show.Len())))
	b.WriteString("  " + Styles.Muted.Render(ref) + "\n\n")

	ck := m.previewKey(ref)
	switch {
	case m.previews[ck] != "":
		b.WriteString(m.previews[ck])
	case m.width == 0:
		b.WriteString(Styles.Muted.Render("waiting for terminal size..."))
	default:
		b.WriteString(Styles.Muted.Render("rendering preview..."))
	}
	return Styles.Box.Render(b.String())
}

// loadCurrent requests a preview render for the active chart if one is
// not cached or already in flight.
func (m *Model) loadCurrent() tea.Cmd {
	p := m.gallery.Active()
	if p.Empty() || m.width == 0 {
		return nil
	}
	ref := p.Show.Current()
	ck := m.previewKey(ref)
	if m.previews[ck] != "" || m.pending[ck] {
		return nil
	}
	m.pending[ck] = true

	cols, rows := m.previewBudget()
	full := filepath.Join(m.root, filepath.FromSlash(ref))
	return func() tea.Msg {
		content, err := preview.Render(full, cols, rows)
		return previewMsg{key: ck, content: content, err: err}
	}
}

func (m *Model) previewKey(ref string) string {
	cols, rows := m.previewBudget()
	return fmt.Sprintf("%s|%dx%d", ref, cols, rows)
}

// previewBudget is the cell budget left for the chart after the title,
// tab bar, metadata lines, box chrome, and help footer.
func (m *Model) previewBudget() (cols, rows int) {
	cols = m.width - 8
	rows = m.height - 14
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
