package config

import "fmt"

// Error reports a profile file that could not be read, decoded or
// validated.
type Error struct {
	Path string
	// Line is the YAML line of a decode error, 0 when unknown.
	Line int
	// Field is the yaml path of the first invalid field, e.g.
	// widgets[0].digits.
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Field != "":
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Field, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("config %s:%d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
