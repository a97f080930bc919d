// Package notify provides implementations of the driven.Notifier sink.
package notify

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// Theme defines the colour palette for notifications.
type Theme struct {
	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Info is for neutral status messages.
	Info lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Success: lipgloss.Color("#A6E3A1"), // Green
		Info:    lipgloss.Color("#06B6D4"), // Cyan
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
	}
}

// levelStyle pairs a marker with its style.
type levelStyle struct {
	marker string
	style  lipgloss.Style
}

// newLevelStyles builds per-level styles bound to renderer r.
func newLevelStyles(r *lipgloss.Renderer, theme *Theme) map[driven.NotifyLevel]levelStyle {
	if theme == nil {
		theme = DefaultTheme()
	}
	return map[driven.NotifyLevel]levelStyle{
		driven.NotifySuccess: {"✓", r.NewStyle().Bold(true).Foreground(theme.Success)},
		driven.NotifyInfo:    {"•", r.NewStyle().Foreground(theme.Info)},
		driven.NotifyWarning: {"!", r.NewStyle().Bold(true).Foreground(theme.Warning)},
		driven.NotifyError:   {"✗", r.NewStyle().Bold(true).Foreground(theme.Error)},
	}
}
