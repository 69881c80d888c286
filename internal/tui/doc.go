// Package tui is the interactive component preview: a sign-up form whose
// fields validate as you type, and a chat thread with a working composer.
package tui
