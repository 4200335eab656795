package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles of the edit panel.
type Styles struct {
	Title    lipgloss.Style
	Locator  lipgloss.Style
	Header   lipgloss.Style
	Key      lipgloss.Style
	Value    lipgloss.Style
	Type     lipgloss.Style
	Selected lipgloss.Style
	Input    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Locator:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Type:     lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Input:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
