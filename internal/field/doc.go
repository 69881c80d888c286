// Package field describes text field behaviour as data: presets bundle the
// copy, validation rule, keyboard and visual transform of a field, and
// Validate turns a value into the advisory error state shown under it.
package field
