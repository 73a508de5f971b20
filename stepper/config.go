package stepper

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/numspin/format"
	"github.com/iw2rmb/numspin/interaction"
	"github.com/iw2rmb/numspin/numeric"
)

// DefaultKeyRelease is the synthetic key-up timeout. It covers the usual
// terminal key-repeat delay.
const DefaultKeyRelease = 600 * time.Millisecond

// DefaultHistoryLimit is the undo depth of the edit field.
const DefaultHistoryLimit = 32

// ChangeEvent is delivered to Config.OnChange.
type ChangeEvent = interaction.ChangeEvent

// Config configures the stepper Model.
type Config struct {
	// Attrs seeds value, bounds, step, digits and timing. Nil uses
	// numeric.DefaultAttrs.
	Attrs      *numeric.Attrs
	Profile    *format.Profile
	HostLocale string
	// Units is appended to the displayed value.
	Units string
	Flags interaction.Flags

	// Width of the text area in cells. Zero sizes it to fit min and max.
	Width int

	KeyMap KeyMap
	Style  Style
	Glyphs Glyphs

	Validate    numeric.ValidateFunc
	OnChange    func(ChangeEvent)
	OnCorrected func(interaction.Correction)
	Logger      *zerolog.Logger

	// KeyRelease defaults to DefaultKeyRelease.
	KeyRelease time.Duration
	// Undo depth of the edit field. Zero selects DefaultHistoryLimit; a
	// negative limit disables undo and its key bindings.
	HistoryLimit int
}

// Glyphs are the control icons. Empty fields take the defaults.
type Glyphs struct {
	Up, Down        string
	Confirm, Cancel string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Up: "▲", Down: "▼", Confirm: "✓", Cancel: "✗"}
}

func (g Glyphs) withDefaults() Glyphs {
	d := DefaultGlyphs()
	if g.Up == "" {
		g.Up = d.Up
	}
	if g.Down == "" {
		g.Down = d.Down
	}
	if g.Confirm == "" {
		g.Confirm = d.Confirm
	}
	if g.Cancel == "" {
		g.Cancel = d.Cancel
	}
	return g
}
