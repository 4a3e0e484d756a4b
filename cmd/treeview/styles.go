package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	sampleColor  = lipgloss.Color("#14e05c")
	leafColor    = lipgloss.Color("#D75F5F")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7FF")).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7FF"))

	// Leaf category styles
	typeLeafStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	sampleLeafStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(sampleColor)

	defaultLeafStyle = lipgloss.NewStyle().
				Foreground(leafColor)

	internalStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	distStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Leaf markers
	typeMarker    = "●"
	sampleMarker  = "●"
	defaultMarker = "·"
)
