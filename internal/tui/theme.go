package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Header   lipgloss.Style
	Title    lipgloss.Style
	Frame    lipgloss.Style
	Target   lipgloss.Style
	Item     lipgloss.Style
	Pinned   lipgloss.Style
	Dragging lipgloss.Style
	Landed   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Dim      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Frame:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Target:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Pinned:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Dragging: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Landed:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Frame:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Target:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Pinned:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Dragging: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Landed:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// CurrentTheme holds the active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme. Unknown names are ignored.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

func themeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
