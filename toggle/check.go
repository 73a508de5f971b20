package toggle

// CheckBox is a two-state button: false, then true.
type CheckBox struct {
	*StateButton[bool]
}

func NewCheckBox() CheckBox {
	b, _ := NewStateButton([]State[bool]{
		{Value: false, ID: "false"},
		{Value: true, ID: "true"},
	})
	b.SetAutoIncrement(true)
	return CheckBox{b}
}

func (c CheckBox) Checked() bool { return c.Value() }

// SetChecked never fails: both values are states.
func (c CheckBox) SetChecked(on bool) { _ = c.SetValue(on) }

// Tri is the value of a CheckTri.
type Tri int8

const (
	// Indeterminate defers to the check box default.
	Indeterminate Tri = iota
	False
	True
)

func (t Tri) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "null"
	}
}

// CheckTri is a three-state check box. Activation rotates
// Indeterminate → !default → default → Indeterminate.
type CheckTri struct {
	*StateButton[Tri]
	def *bool
}

func NewCheckTri(def bool) CheckTri {
	b, _ := NewStateButton([]State[Tri]{
		{Value: Indeterminate, ID: "null"},
		{Value: False, ID: "false"},
		{Value: True, ID: "true"},
	})
	return CheckTri{StateButton: b, def: &def}
}

func (c CheckTri) Default() bool       { return *c.def }
func (c CheckTri) SetDefault(def bool) { *c.def = def }

// Checked resolves Indeterminate to the default.
func (c CheckTri) Checked() bool {
	switch c.Value() {
	case True:
		return true
	case False:
		return false
	default:
		return *c.def
	}
}

// Activate rotates the value. With states ordered null, false, true the
// rotation is forward when the default is true and backward otherwise.
func (c CheckTri) Activate() {
	if *c.def {
		c.Increment()
	} else {
		c.Decrement()
	}
}
