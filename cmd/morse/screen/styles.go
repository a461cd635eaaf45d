package screen

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/dit/cmd/common/config"
)

type theme struct {
	base      lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	morse     lipgloss.Style
	help      lipgloss.Style
	panelOn   lipgloss.Style
	panelOff  lipgloss.Style
	indicator lipgloss.Style
	info      lipgloss.Style
	warning   lipgloss.Style
	alert     lipgloss.Style
}

var (
	green  = lipgloss.Color("#00ff00")
	black  = lipgloss.Color("#000000")
	white  = lipgloss.Color("#ffffff")
	gray   = lipgloss.Color("241")
	yellow = lipgloss.Color("226")
	red    = lipgloss.Color("196")
)

func newTheme(name string) theme {
	fg, bg, accent := green, black, green
	if name == config.ThemeLight {
		fg, bg, accent = black, white, lipgloss.Color("28")
	}

	panel := lipgloss.NewStyle().Width(panelWidth).Height(panelHeight).Border(lipgloss.RoundedBorder())
	return theme{
		base:      lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(1, 3),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		label:     lipgloss.NewStyle().Foreground(gray),
		morse:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:      lipgloss.NewStyle().Foreground(gray),
		panelOn:   panel.BorderForeground(accent).Background(accent),
		panelOff:  panel.BorderForeground(gray),
		indicator: lipgloss.NewStyle().Bold(true).Foreground(accent),
		info:      lipgloss.NewStyle().Foreground(accent),
		warning:   lipgloss.NewStyle().Foreground(yellow),
		alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(red).
			Padding(0, 2),
	}
}

const (
	panelWidth  = 16
	panelHeight = 3
)
