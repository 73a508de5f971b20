// Package numeric implements the bounded numeric attribute model behind the
// spinner widget.
//
// The seven attributes (value, min, max, step, digits, delay, interval) are
// validated independently. An invalid write reverts that single attribute to
// its last accepted value; it never fails the caller. After every accepted
// mutation min <= value <= max holds.
package numeric
