package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// GitLab brand colors
var (
	// GitLab orange: #FC6D26
	gitlabOrange = lipgloss.Color("#FC6D26")
	// Success green
	successGreen = lipgloss.Color("#00C853")
	// Warning yellow
	warningYellow = lipgloss.Color("#FFC107")
	// Muted gray
	mutedGray = lipgloss.Color("#9E9E9E")
)

// Style definitions
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(gitlabOrange).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successGreen).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningYellow).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedGray)
)

// printTitle prints a styled section title
func printTitle(text string) {
	fmt.Println(titleStyle.Render(text))
	fmt.Println()
}

// printSuccess prints a success message
func printSuccess(text string) {
	fmt.Println(successStyle.Render("✓ " + text))
}

// printWarning prints a warning message
func printWarning(text string) {
	fmt.Println(warningStyle.Render("⚠ " + text))
}

// printMuted prints muted text
func printMuted(text string) {
	fmt.Println(mutedStyle.Render(text))
}
