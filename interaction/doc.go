// Package interaction is the controller of the numeric spinner.
//
// Reduce is a pure transition function over State: pointer, keyboard, focus
// and timer events go in, a new State and a list of Effects come out. Machine
// wraps it for hosts: it owns the numeric model, the formatter and the spin
// scheduler, executes effects, and reports through a Renderer and change
// callbacks.
//
// Modes:
//
//	Idle ⇄ Hovering         pointer enters/leaves the widget
//	Idle|Hovering → Editing text field focus (keyboard) or press+release on the text
//	Editing → Idle|Hovering confirm, cancel or blur
//	Idle|Hovering → Spinning press on a control, or an arrow key
//	Spinning → Idle|Hovering release, leave, or key up
//
// Editing never touches the model until confirm; every keystroke only
// recomputes the Invalid and OutOfBounds flags.
package interaction
