package ui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft green #34D399, configurable): highlights, IDs, paths
// - Muted (gray): secondary info
// - No colored success/error/warning - unicode symbols only

const defaultAccent = "#34D399"

var (
	// accentColor is the active accent, replaceable from config.
	accentColor = defaultAccent

	// codeTheme is the Glamour/Chroma theme for rendered markdown.
	codeTheme string

	// Accent style for member IDs, file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

var accentColorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[0-9]{1,3})$`)

// normalizeAccentColor validates a configured accent value: an ANSI code
// ("0" to "255") or a hex color ("#RRGGBB"). "none" disables the accent.
func normalizeAccentColor(s string) (string, bool) {
	if s == "" || s == "none" {
		return "", false
	}
	if !accentColorRegex.MatchString(s) {
		return "", false
	}
	return s, true
}

// ConfigureTheme applies UI preferences from config. Invalid or empty
// values keep the defaults.
func ConfigureTheme(accent, theme string) {
	if color, ok := normalizeAccentColor(accent); ok {
		accentColor = color
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}
	if theme != "" {
		codeTheme = theme
	}
}

// AccentColor returns the active accent color, if any.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}
