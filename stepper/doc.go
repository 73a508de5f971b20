// Package stepper is a Bubble Tea numeric spinner.
//
// It hosts an interaction.Machine on a single terminal row: the value on the
// left, right-aligned, and two controls on the right. The controls spin the
// value while held, or confirm and cancel while the text is being edited.
//
// Terminals report no key releases, so a keyboard spin ends when no repeat
// of the key arrives within Config.KeyRelease.
//
// Mouse coordinates are relative to the origin set with SetPosition. Hover
// needs all-motion mouse reporting (tea.WithMouseAllMotion).
package stepper
