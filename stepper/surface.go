package stepper

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/numspin/interaction"
)

// surface is the interaction.Renderer of a Model. It records what the
// machine asks for; View turns it into cells.
type surface struct {
	controls bool
	text     string
	tag      interaction.VisualTag
}

func (s *surface) ShowControls(visible bool)                { s.controls = visible }
func (s *surface) SetDisplayText(text string)               { s.text = text }
func (s *surface) SetVisualState(tag interaction.VisualTag) { s.tag = tag }
func (s *surface) MeasureText(text string) int              { return runewidth.StringWidth(text) }
