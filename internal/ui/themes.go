package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a colour scheme. The string fields hold ANSI escape sequences;
// the lipgloss colours drive badge rendering.
type Theme struct {
	Name string

	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string

	BadgeText    lipgloss.TerminalColor
	BadgeSuccess lipgloss.TerminalColor
	BadgeFailure lipgloss.TerminalColor
	BadgeNeutral lipgloss.TerminalColor
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;141m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",

		BadgeText:    lipgloss.Color("#000000"),
		BadgeSuccess: lipgloss.Color("#9ece6a"),
		BadgeFailure: lipgloss.Color("#FF4444"),
		BadgeNeutral: lipgloss.Color("#7aa2f7"),
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;54m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",

		BadgeText:    lipgloss.Color("#FFFFFF"),
		BadgeSuccess: lipgloss.Color("#2E7D32"),
		BadgeFailure: lipgloss.Color("#B71C1C"),
		BadgeNeutral: lipgloss.Color("#1565C0"),
	}

	// NoColorTheme disables colour output.
	NoColorTheme = Theme{
		Name:         "none",
		BadgeText:    lipgloss.NoColor{},
		BadgeSuccess: lipgloss.NoColor{},
		BadgeFailure: lipgloss.NoColor{},
		BadgeNeutral: lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none". Unknown
// names select the dark theme.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme selects the no-colour theme when noColor is set or the NO_COLOR
// environment variable exists (https://no-color.org/), and the dark theme
// otherwise.
func InitTheme(noColor bool) {
	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
