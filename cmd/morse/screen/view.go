package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/mattn/go-runewidth"
)

const defaultWidth = 80

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	// Room left for the text after base padding.
	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(t.title.Render("dit · morse"))
	b.WriteString("  ")
	b.WriteString(t.label.Render(m.session.Direction.String()))
	b.WriteString("\n\n")

	b.WriteString(t.label.Render("Text"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")

	b.WriteString(t.label.Render("Morse"))
	b.WriteString("\n")
	b.WriteString(m.morse.View())
	b.WriteString("\n\n")

	b.WriteString(t.label.Render("Output"))
	b.WriteString("\n")
	b.WriteString(t.morse.Render(runewidth.Truncate(m.session.Output(), inner, "…")))
	b.WriteString("\n\n")

	panel := t.panelOff.Render("")
	if m.session.Lit {
		panel = t.panelOn.Render("")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, panel, "  ", m.statusView()))
	b.WriteString("\n\n")

	if n := m.session.Notice; n != nil {
		b.WriteString(m.noticeView(*n))
		b.WriteString("\n\n")
	}

	b.WriteString(t.help.Render("enter play · tab switch field · ↑/↓ speed · ctrl+y copy · ctrl+t theme · esc quit"))

	return t.base.Width(width).Render(b.String())
}

func (m Model) statusView() string {
	t := m.theme
	state := t.label.Render("○ idle")
	if m.session.Active {
		state = t.indicator.Render("● playing")
	}
	speed := t.label.Render(fmt.Sprintf("speed %.2fx", m.session.Speed))
	return lipgloss.JoinVertical(lipgloss.Left, state, speed)
}

func (m Model) noticeView(n device.Notice) string {
	t := m.theme
	if n.Blocking {
		return t.alert.Render(n.String() + "\n\n" + t.help.Render("press enter to dismiss"))
	}
	switch n.Level {
	case device.LevelWarning, device.LevelError:
		return t.warning.Render(n.String())
	default:
		return t.info.Render(n.String())
	}
}
