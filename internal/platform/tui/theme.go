package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used by the menu and the scoreboard.
type Theme struct {
	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuChapter     lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Stars           lipgloss.Style
	StarsEmpty      lipgloss.Style
	Controls        lipgloss.Style

	// Scoreboard styles
	TableHeaderBorder lipgloss.Color
	TableSelectedFg   lipgloss.Color
	TableSelectedBg   lipgloss.Color
	PanelBorder       lipgloss.Color
	Won               lipgloss.Style
	Lost              lipgloss.Style
}

// DefaultTheme returns the festival red and gold theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		MenuChapter:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Stars:           lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		StarsEmpty:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableHeaderBorder: lipgloss.Color("240"),
		TableSelectedFg:   lipgloss.Color("229"),
		TableSelectedBg:   lipgloss.Color("124"), // Lantern red
		PanelBorder:       lipgloss.Color("240"),
		Won:               lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Lost:              lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuChapter = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.Stars = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.TableSelectedFg = lipgloss.Color("0")
	theme.TableSelectedBg = lipgloss.Color("250")
	theme.Won = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	return theme
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
