package toggle

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Toggler is what a Model drives: StateButton, CheckBox and CheckTri.
type Toggler interface {
	Activate()
	Current() (id, title string)
}

type KeyMap struct {
	Activate key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Activate} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Activate}} }

type Style struct {
	Normal lipgloss.Style
	Active lipgloss.Style // while the mouse button is held
}

func DefaultStyle() Style {
	return Style{
		Normal: lipgloss.NewStyle(),
		Active: lipgloss.NewStyle().Bold(true),
	}
}

// CheckGlyphs are the default glyphs of CheckBox and CheckTri states.
func CheckGlyphs() map[string]string {
	return map[string]string{"false": "[ ]", "true": "[x]", "null": "[-]"}
}

type Config struct {
	KeyMap KeyMap
	Style  Style
	// Glyphs maps state ids to what is drawn; missing ids draw the title.
	Glyphs map[string]string
	// OnChange receives the id of the new state after an activation that
	// changed it.
	OnChange func(id string)
}

// Model is a Bubble Tea component for one Toggler.
type Model struct {
	cfg Config
	t   Toggler

	focused bool
	pressed bool
	x, y    int
}

func New(t Toggler, cfg Config) Model {
	if len(cfg.KeyMap.Activate.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{cfg: cfg, t: t}
}

func (m Model) Init() tea.Cmd    { return nil }
func (m Model) Toggler() Toggler { return m.t }
func (m Model) Focused() bool    { return m.focused }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

// SetPosition sets the screen cell of the glyph's first cell.
func (m Model) SetPosition(x, y int) Model {
	m.x, m.y = x, y
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focused && key.Matches(msg, m.cfg.KeyMap.Activate) {
			m.activate()
		}
	case tea.MouseMsg:
		inside := m.inBounds(msg.X, msg.Y)
		switch msg.Action { //nolint:exhaustive
		case tea.MouseActionPress:
			m.pressed = inside && msg.Button == tea.MouseButtonLeft
		case tea.MouseActionRelease:
			if m.pressed && inside {
				m.activate()
			}
			m.pressed = false
		}
	}
	return m, nil
}

func (m Model) View() string {
	st := m.cfg.Style.Normal
	if m.pressed {
		st = m.cfg.Style.Active
	}
	return st.Render(m.glyph())
}

func (m *Model) activate() {
	before, _ := m.t.Current()
	m.t.Activate()
	id, _ := m.t.Current()
	if id != before && m.cfg.OnChange != nil {
		m.cfg.OnChange(id)
	}
}

func (m Model) glyph() string {
	id, title := m.t.Current()
	if g, ok := m.cfg.Glyphs[id]; ok {
		return g
	}
	return title
}

func (m Model) inBounds(x, y int) bool {
	x, y = x-m.x, y-m.y
	return y == 0 && x >= 0 && x < runewidth.StringWidth(m.glyph())
}
