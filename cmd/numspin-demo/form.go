package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/numspin"
	"github.com/iw2rmb/numspin/interaction"
	"github.com/iw2rmb/numspin/internal/config"
	"github.com/iw2rmb/numspin/stepper"
	"github.com/iw2rmb/numspin/toggle"
)

const (
	// headerRows precede the first widget row: the title and a blank line.
	headerRows = 2
	marker     = "> "
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle()
	focusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type formKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys joins the focused widget's bindings with the form's own.
type helpKeys struct {
	widget help.KeyMap
	form   formKeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.widget.ShortHelp(), h.form.Next, h.form.Help, h.form.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.widget.FullHelp(), []key.Binding{h.form.Next, h.form.Prev, h.form.Quit})
}

// status is written by widget callbacks, which run inside Update on copies
// of the form; the pointer keeps every copy pointing at one line.
type status struct {
	line string
}

type item struct {
	name   string
	label  string
	toggle bool
	idx    int
}

type form struct {
	items    []item
	steppers []stepper.Model
	toggles  []toggle.Model

	focus  int
	labelW int
	keys   formKeyMap
	help   help.Model
	status *status
	log    *zerolog.Logger
}

func newForm(file *config.File, host string, log *zerolog.Logger) (form, error) {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	f := form{keys: defaultFormKeyMap(), help: help.New(), status: &status{}, log: log}

	for _, w := range file.Widgets {
		f.items = append(f.items, item{name: w.Name, label: labelOf(w.Label, w.Name), idx: len(f.steppers)})
		f.steppers = append(f.steppers, f.newStepper(w, host))
	}
	for _, t := range file.Toggles {
		tm, err := f.newToggle(t)
		if err != nil {
			return form{}, fmt.Errorf("toggle %q: %w", t.Name, err)
		}
		f.items = append(f.items, item{name: t.Name, label: labelOf(t.Label, t.Name), toggle: true, idx: len(f.toggles)})
		f.toggles = append(f.toggles, tm)
	}

	for _, it := range f.items {
		f.labelW = max(f.labelW, runewidth.StringWidth(it.label))
	}
	x := runewidth.StringWidth(marker) + f.labelW + 1
	for i, it := range f.items {
		if it.toggle {
			f.toggles[it.idx] = f.toggles[it.idx].SetPosition(x, headerRows+i)
		} else {
			f.steppers[it.idx] = f.steppers[it.idx].SetPosition(x, headerRows+i)
		}
	}
	f.setFocus(0)
	return f, nil
}

func (f form) newStepper(w config.Widget, host string) stepper.Model {
	attrs, profile := w.Attrs(), w.Profile()
	name, st := w.Name, f.status
	wlog := f.log.With().Str("widget", name).Logger()

	return stepper.New(stepper.Config{
		Attrs:      &attrs,
		Profile:    &profile,
		HostLocale: host,
		Units:      w.Units,
		Flags:      w.InteractionFlags(),
		Logger:     &wlog,
		OnChange: func(ev stepper.ChangeEvent) {
			st.line = fmt.Sprintf("%s = %s", name, humanize.Ftoa(ev.Value))
			wlog.Debug().Float64("value", ev.Value).Bool("spinning", ev.Spinning).Msg("value changed")
		},
		OnCorrected: func(c interaction.Correction) {
			st.line = fmt.Sprintf("%s: %s=%q refused, kept %s", name, c.Attr, c.Raw, c.Kept)
		},
	})
}

func (f form) newToggle(t config.Toggle) (toggle.Model, error) {
	var (
		tg     toggle.Toggler
		glyphs map[string]string
	)
	switch t.Kind {
	case "checkbox":
		cb := toggle.NewCheckBox()
		cb.SetChecked(t.Default)
		tg, glyphs = cb, toggle.CheckGlyphs()
	case "checktri":
		tg, glyphs = toggle.NewCheckTri(t.Default), toggle.CheckGlyphs()
	default:
		states := make([]toggle.State[string], len(t.States))
		for i, s := range t.States {
			id := s.ID
			if id == "" {
				id = s.Value
			}
			states[i] = toggle.State[string]{Value: s.Value, ID: id, Title: s.Title}
		}
		b, err := toggle.NewStateButton(states)
		if err != nil {
			return toggle.Model{}, err
		}
		b.SetAutoIncrement(t.Auto)
		tg = b
	}

	name, st, log := t.Name, f.status, f.log
	return toggle.New(tg, toggle.Config{
		Glyphs: glyphs,
		OnChange: func(id string) {
			st.line = name + " = " + id
			log.Debug().Str("toggle", name).Str("state", id).Msg("toggled")
		},
	}), nil
}

func labelOf(label, name string) string {
	if label != "" {
		return label
	}
	return name
}

func (f form) Init() tea.Cmd { return nil }

func (f form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.help.Width = msg.Width
		return f, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return f, tea.Quit
		}
		// While a spinner is being edited every other key is text.
		if !f.editing() {
			switch {
			case key.Matches(msg, f.keys.Quit):
				return f, tea.Quit
			case key.Matches(msg, f.keys.Help):
				f.help.ShowAll = !f.help.ShowAll
				return f, nil
			}
		}
		switch {
		case key.Matches(msg, f.keys.Next):
			f.setFocus(f.focus + 1)
			return f, nil
		case key.Matches(msg, f.keys.Prev):
			f.setFocus(f.focus - 1)
			return f, nil
		}
		return f, f.updateItem(f.focus, msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := msg.Y - headerRows; i >= 0 && i < len(f.items) && i != f.focus {
				f.setFocus(i)
			}
		}
	}

	// Mouse motion and timer messages go to every widget; each one filters
	// by its own position or id.
	cmds := make([]tea.Cmd, 0, len(f.items))
	for i := range f.items {
		cmds = append(cmds, f.updateItem(i, msg))
	}
	return f, tea.Batch(cmds...)
}

func (f *form) updateItem(i int, msg tea.Msg) tea.Cmd {
	if i < 0 || i >= len(f.items) {
		return nil
	}
	var cmd tea.Cmd
	it := f.items[i]
	if it.toggle {
		f.toggles[it.idx], cmd = f.toggles[it.idx].Update(msg)
	} else {
		f.steppers[it.idx], cmd = f.steppers[it.idx].Update(msg)
	}
	return cmd
}

// setFocus moves focus to item i, wrapping around. Blurring a spinner
// confirms or cancels its edit.
func (f *form) setFocus(i int) {
	n := len(f.items)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	for j, it := range f.items {
		switch {
		case it.toggle && j == i:
			f.toggles[it.idx] = f.toggles[it.idx].Focus()
		case it.toggle:
			f.toggles[it.idx] = f.toggles[it.idx].Blur()
		case j == i:
			f.steppers[it.idx] = f.steppers[it.idx].Focus()
		default:
			f.steppers[it.idx] = f.steppers[it.idx].Blur()
		}
	}
	f.focus = i
}

func (f form) editing() bool {
	if len(f.items) == 0 {
		return false
	}
	it := f.items[f.focus]
	return !it.toggle && f.steppers[it.idx].Editing()
}

func (f form) itemView(it item) string {
	if it.toggle {
		return f.toggles[it.idx].View()
	}
	return f.steppers[it.idx].View()
}

func (f form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("numspin " + numspin.VersionTag()))
	b.WriteString("\n\n")

	for i, it := range f.items {
		pad := strings.Repeat(" ", f.labelW-runewidth.StringWidth(it.label)+1)
		if i == f.focus {
			b.WriteString(focusStyle.Render(marker + it.label))
		} else {
			b.WriteString(labelStyle.Render(strings.Repeat(" ", runewidth.StringWidth(marker)) + it.label))
		}
		b.WriteString(pad)
		b.WriteString(f.itemView(it))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(f.status.line))
	b.WriteString("\n")
	b.WriteString(f.help.View(f.helpKeys()))
	return b.String()
}

func (f form) helpKeys() helpKeys {
	h := helpKeys{widget: stepper.DefaultKeyMap(), form: f.keys}
	if len(f.items) == 0 {
		return h
	}
	if it := f.items[f.focus]; it.toggle {
		h.widget = toggle.DefaultKeyMap()
	} else {
		h.widget = f.steppers[it.idx].KeyMap()
	}
	return h
}

// Summary lists the final value of every widget, one per line.
func (f form) Summary() string {
	var b strings.Builder
	for _, it := range f.items {
		val := ""
		if it.toggle {
			val, _ = f.toggles[it.idx].Toggler().Current()
		} else {
			val = f.steppers[it.idx].Text()
		}
		fmt.Fprintf(&b, "%s: %s\n", it.name, val)
	}
	return b.String()
}
