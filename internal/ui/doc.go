// Package ui holds the colour themes used by the command-line output. It
// exposes ANSI escape sequences for inline colouring and lipgloss styles for
// status badges, both switched off together by -no-color or NO_COLOR.
package ui
