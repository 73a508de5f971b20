package stepper

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numspin/interaction"
	"github.com/iw2rmb/numspin/internal/field"
	"github.com/iw2rmb/numspin/spin"
)

var lastID atomic.Uint64

// spinTickMsg carries a scheduler wake back to the widget that armed it.
type spinTickMsg struct {
	id     uint64
	handle spin.Handle
}

// keyReleaseMsg synthesizes the key-up a terminal never sends.
type keyReleaseMsg struct {
	id  uint64
	gen uint64
	key interaction.Key
}

// Model is a Bubble Tea component wrapping one numeric spinner.
type Model struct {
	id  uint64
	cfg Config

	mach *interaction.Machine
	out  *surface
	fld  *field.Field

	focused bool
	x, y    int

	hover  interaction.Target
	press  interaction.Target
	keyGen uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.KeyRelease <= 0 {
		cfg.KeyRelease = DefaultKeyRelease
	}
	cfg.Glyphs = cfg.Glyphs.withDefaults()
	switch {
	case cfg.HistoryLimit == 0:
		cfg.HistoryLimit = DefaultHistoryLimit
	case cfg.HistoryLimit < 0:
		cfg.HistoryLimit = 0
		cfg.KeyMap.Undo.SetEnabled(false)
		cfg.KeyMap.Redo.SetEnabled(false)
	}

	m := Model{
		id:  lastID.Add(1),
		cfg: cfg,
		out: &surface{},
		fld: field.New("", field.Options{HistoryLimit: cfg.HistoryLimit}),
	}
	m.mach = interaction.New(m.out, interaction.Options{
		Attrs:       cfg.Attrs,
		Profile:     cfg.Profile,
		HostLocale:  cfg.HostLocale,
		Units:       cfg.Units,
		Flags:       cfg.Flags,
		Validate:    cfg.Validate,
		OnChange:    cfg.OnChange,
		OnCorrected: cfg.OnCorrected,
		Logger:      cfg.Logger,
	})
	return m
}

func (m Model) ID() uint64                    { return m.id }
func (m Model) Machine() *interaction.Machine { return m.mach }
func (m Model) Value() float64                { return m.mach.Value() }
func (m Model) Editing() bool                 { return m.mach.State().Mode == interaction.Editing }
func (m Model) Init() tea.Cmd                 { return nil }
func (m Model) Focused() bool                 { return m.focused }
func (m Model) KeyMap() KeyMap                { return m.cfg.KeyMap }
func (m Model) State() interaction.State      { return m.mach.State() }

// Text is what the text area shows: the edit text while editing, the
// formatted value otherwise.
func (m Model) Text() string {
	if m.Editing() {
		return m.fld.Text()
	}
	return m.out.text
}

// SetPosition sets the screen cell of the widget's top-left corner. Mouse
// events are hit-tested relative to it.
func (m Model) SetPosition(x, y int) Model {
	m.x, m.y = x, y
	return m
}

// Focus routes keys to the widget. It does not start editing; the Edit
// binding or a click on the text does.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur ends any edit or spin as a focus loss does.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.dispatch(interaction.FocusOut{})
	}
	return m
}

// SetAttribute forwards to the machine's attribute bridge.
func (m Model) SetAttribute(name, raw string) (Model, error) {
	err := m.mach.SetAttribute(name, raw)
	return m, err
}

func (m Model) RemoveAttribute(name string) (Model, error) {
	err := m.mach.RemoveAttribute(name)
	return m, err
}

func (m Model) SetValue(v float64) Model {
	m.mach.SetValue(v)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinTickMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.dispatch(interaction.SpinTick{Handle: msg.handle})
	case keyReleaseMsg:
		if msg.id != m.id || msg.gen != m.keyGen {
			return m, nil
		}
		return m, m.dispatch(interaction.KeyUp{Key: msg.key})
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

// dispatch feeds ev to the machine, opens the edit field when editing
// starts, and turns an armed wake into a tick.
func (m *Model) dispatch(ev interaction.Event) tea.Cmd {
	was := m.mach.State().Mode
	w := m.mach.Dispatch(ev)
	if s := m.mach.State(); s.Mode == interaction.Editing && was != interaction.Editing {
		m.fld.Reset(s.Text)
	}
	if !w.Armed() {
		return nil
	}
	id, h := m.id, w.Handle
	return tea.Tick(w.After, func(time.Time) tea.Msg {
		return spinTickMsg{id: id, handle: h}
	})
}

// pressKey dispatches a key-down and schedules its synthetic release. A
// later press supersedes the pending release.
func (m *Model) pressKey(k interaction.Key) tea.Cmd {
	cmd := m.dispatch(interaction.KeyDown{Key: k})
	m.keyGen++
	id, gen := m.id, m.keyGen
	release := tea.Tick(m.cfg.KeyRelease, func(time.Time) tea.Msg {
		return keyReleaseMsg{id: id, gen: gen, key: k}
	})
	return tea.Batch(cmd, release)
}

// edit applies fn to the field and reports a text change to the machine.
func (m *Model) edit(fn func(*field.Field)) tea.Cmd {
	before := m.fld.Text()
	fn(m.fld)
	if text := m.fld.Text(); text != before {
		return m.dispatch(interaction.TextChanged{Text: text})
	}
	return nil
}
