package ui

import "github.com/charmbracelet/lipgloss"

// ColorReset returns the reset sequence of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error colour.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success colour.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning colour.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary colour.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info colour.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorGrey returns the secondary colour.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold sequence.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline sequence.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// BadgeKind selects a badge colour.
type BadgeKind int

const (
	BadgeNeutral BadgeKind = iota
	BadgeSuccess
	BadgeFailure
)

// Badge renders text as a padded status badge in the active theme. With the
// no-colour theme it renders as "[text]".
func Badge(kind BadgeKind, text string) string {
	t := GetCurrentTheme()
	if t.Name == NoColorTheme.Name {
		return "[" + text + "]"
	}
	bg := t.BadgeNeutral
	switch kind {
	case BadgeSuccess:
		bg = t.BadgeSuccess
	case BadgeFailure:
		bg = t.BadgeFailure
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.BadgeText).
		Background(bg).
		Render(text)
}
