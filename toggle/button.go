// Package toggle provides multi-state buttons and check boxes: the value
// rotates through a fixed list of states on each activation.
package toggle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// State is one position of a StateButton.
type State[T comparable] struct {
	Value T
	// ID names the state, for glyph lookup and styling.
	ID string
	// Title defaults to the capitalized ID.
	Title string
}

// DisplayTitle returns Title, or the ID with its first letter upper-cased.
func (s State[T]) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	r, n := utf8.DecodeRuneInString(s.ID)
	if n == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s.ID[n:]
}

// StateButton holds an ordered, non-empty list of states and the index of
// the current one.
type StateButton[T comparable] struct {
	states []State[T]
	index  int
	auto   bool
}

func NewStateButton[T comparable](states []State[T]) (*StateButton[T], error) {
	b := &StateButton[T]{}
	if err := b.SetStates(states); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *StateButton[T]) Index() int          { return b.index }
func (b *StateButton[T]) Len() int            { return len(b.states) }
func (b *StateButton[T]) State() State[T]     { return b.states[b.index] }
func (b *StateButton[T]) Value() T            { return b.states[b.index].Value }
func (b *StateButton[T]) AutoIncrement() bool { return b.auto }

// SetAutoIncrement makes Activate advance to the next state.
func (b *StateButton[T]) SetAutoIncrement(on bool) { b.auto = on }

// States returns a copy of the states.
func (b *StateButton[T]) States() []State[T] {
	return append([]State[T](nil), b.states...)
}

// SetStates replaces the states. The current value is kept when the new
// list has it; otherwise the index is clamped into the new list.
func (b *StateButton[T]) SetStates(states []State[T]) error {
	if len(states) == 0 {
		return newError(ErrCodeEmptyStates, "states must not be empty", nil)
	}
	var cur T
	hadValue := len(b.states) > 0
	if hadValue {
		cur = b.Value()
	}
	b.states = append([]State[T](nil), states...)
	if i, ok := b.indexOf(cur); hadValue && ok {
		b.index = i
		return nil
	}
	b.index = min(b.index, len(b.states)-1)
	return nil
}

func (b *StateButton[T]) SetIndex(i int) error {
	if i < 0 || i >= len(b.states) {
		return newError(ErrCodeIndexOutOfRange,
			fmt.Sprintf("index %d not in [0, %d]", i, len(b.states)-1),
			map[string]any{"index": i})
	}
	b.index = i
	return nil
}

// SetValue selects the first state holding v.
func (b *StateButton[T]) SetValue(v T) error {
	i, ok := b.indexOf(v)
	if !ok {
		return newError(ErrCodeUnknownValue,
			fmt.Sprintf("%v is not one of %s", v, b.valueList()),
			map[string]any{"value": v})
	}
	b.index = i
	return nil
}

// Increment moves to the next state, wrapping to the first.
func (b *StateButton[T]) Increment() {
	b.index = (b.index + 1) % len(b.states)
}

// Decrement moves to the previous state, wrapping to the last.
func (b *StateButton[T]) Decrement() {
	b.index = (b.index + len(b.states) - 1) % len(b.states)
}

// Activate is a click or activation key. It advances only when
// AutoIncrement is on.
func (b *StateButton[T]) Activate() {
	if b.auto {
		b.Increment()
	}
}

// Current reports the id and title of the current state.
func (b *StateButton[T]) Current() (id, title string) {
	s := b.State()
	return s.ID, s.DisplayTitle()
}

func (b *StateButton[T]) indexOf(v T) (int, bool) {
	for i, s := range b.states {
		if s.Value == v {
			return i, true
		}
	}
	return 0, false
}

func (b *StateButton[T]) valueList() string {
	parts := make([]string, len(b.states))
	for i, s := range b.states {
		parts[i] = fmt.Sprint(s.Value)
	}
	return strings.Join(parts, ", ")
}
