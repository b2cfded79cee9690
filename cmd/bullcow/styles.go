package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the TUI.
var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	logoStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))

	// Rich-text tags emitted by the game.
	richStyles = map[string]lipgloss.Style{
		"RichText.Debug":             lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Italic(true), // magenta
		"RichText.Small":             lipgloss.NewStyle().Foreground(lipgloss.Color("8")),              // gray
		"RichText.MenuItem":          lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		"RichText.MenuItem.Selected": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")), // yellow
	}
)

const logoBanner = ` ___      _ _      ___     ___
| _ )_  _| | |___ / __|___/ __|_____ __ _____
| _ \ || | | (_-< | (__/ _ \ (__/ _ \ V  V (_-<
|___/\_,_|_|_/__/  \___\___/\___\___/\_/\_//__/`
