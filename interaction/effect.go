package interaction

import (
	"github.com/iw2rmb/numspin/numeric"
	"github.com/iw2rmb/numspin/spin"
)

// Effect is a side effect requested by the reducer. Machine executes them in
// order.
type Effect interface{ isEffect() }

type (
	ShowControls struct{ Visible bool }
	// DisplayFormatted shows the current value in display format.
	DisplayFormatted struct{}
	// DisplayText shows raw edit text.
	DisplayText struct{ Text string }
	SetVisual   struct{ Tag VisualTag }

	// Commit applies a confirmed edit value.
	Commit struct{ Value float64 }

	StartSpin    struct{ Dir numeric.Direction }
	RedirectSpin struct{ Dir numeric.Direction }
	SpinOnce     struct{ Dir numeric.Direction }
	StopSpin     struct{}
	FireSpin     struct{ Handle spin.Handle }
)

func (ShowControls) isEffect()     {}
func (DisplayFormatted) isEffect() {}
func (DisplayText) isEffect()      {}
func (SetVisual) isEffect()        {}
func (Commit) isEffect()           {}
func (StartSpin) isEffect()        {}
func (RedirectSpin) isEffect()     {}
func (SpinOnce) isEffect()         {}
func (StopSpin) isEffect()         {}
func (FireSpin) isEffect()         {}
