// Package config loads YAML widget profiles for the demo program.
package config

// File is a profile file: a form of spinners and toggles.
type File struct {
	// Locale is the host locale; empty means derive it from the environment.
	Locale  string   `yaml:"locale" validate:"omitempty,locale"`
	Widgets []Widget `yaml:"widgets" validate:"required,min=1,dive"`
	Toggles []Toggle `yaml:"toggles" validate:"omitempty,dive"`
}

// Widget describes one numeric spinner. Unset numeric fields keep the
// engine defaults; an unset step follows digits.
type Widget struct {
	Name  string `yaml:"name" validate:"required"`
	Label string `yaml:"label"`

	Value    *float64 `yaml:"value"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
	Step     *float64 `yaml:"step" validate:"omitempty,ne=0"`
	Digits   *int     `yaml:"digits" validate:"omitempty,min=0,max=100"`
	Delay    *int     `yaml:"delay" validate:"omitempty,min=1"`
	Interval *int     `yaml:"interval" validate:"omitempty,min=1"`

	Units      string `yaml:"units"`
	Locale     string `yaml:"locale" validate:"omitempty,locale"`
	Notation   string `yaml:"notation" validate:"omitempty,notation"`
	Currency   string `yaml:"currency" validate:"omitempty,iso4217"`
	Accounting bool   `yaml:"accounting"`
	AnyDecimal bool   `yaml:"any_decimal"`

	Flags Flags `yaml:"flags"`
}

type Flags struct {
	BlurCancel  bool `yaml:"blur_cancel"`
	ShowButtons bool `yaml:"show_buttons"`
	NoSpin      bool `yaml:"no_spin"`
	NoConfirm   bool `yaml:"no_confirm"`
	NoKeys      bool `yaml:"no_keys"`
}

// Toggle describes a check box, tri-state check box or state button.
type Toggle struct {
	Name    string        `yaml:"name" validate:"required"`
	Label   string        `yaml:"label"`
	Kind    string        `yaml:"kind" validate:"required,oneof=checkbox checktri state"`
	Default bool          `yaml:"default"`
	States  []ToggleState `yaml:"states" validate:"required_if=Kind state,dive"`
	Auto    bool          `yaml:"auto_increment"`
}

type ToggleState struct {
	Value string `yaml:"value" validate:"required"`
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}
