package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seiscube/internal/models"
	"seiscube/pkg/colorscale"
	"seiscube/pkg/scene"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50E3C2")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2D6A80")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8CA1AE"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F6AE2D"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F6AE2D"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8CA1AE"))
)

// View renders the control panels: cube metadata, slice navigation state,
// and the status/error line. The 3D scene itself lives in the rendered
// document, not in the terminal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("seiscube — 3D seismic cube viewer"))
	b.WriteString("\n")

	if m.cube == nil {
		if m.fetchErr != "" {
			b.WriteString(errStyle.Render("upload/fetch error: " + m.fetchErr))
		} else {
			b.WriteString(m.spin.View() + " " + m.status)
		}
		b.WriteString("\n" + m.help.View(m.keys))
		return b.String()
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.cubePanel()),
		panelStyle.Render(m.slicePanel()),
	)
	b.WriteString(panels)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) cubePanel() string {
	c := m.cube
	cmin, cmax := scene.ResolveAmplitudeRange(c.Amplitude)
	lines := []string{
		titleStyle.Render("Cube"),
		fmt.Sprintf("%s %d × %d × %d", labelStyle.Render("shape"), c.Shape[0], c.Shape[1], c.Shape[2]),
		fmt.Sprintf("%s %.0f..%.0f", labelStyle.Render("inline"), c.InlineRange.Min, c.InlineRange.Max),
		fmt.Sprintf("%s %.0f..%.0f", labelStyle.Render("xline "), c.XlineRange.Min, c.XlineRange.Max),
		fmt.Sprintf("%s %.1f..%.1f", labelStyle.Render("depth "), c.SampleRange.Min, c.SampleRange.Max),
		fmt.Sprintf("%s %.4g..%.4g", labelStyle.Render("amp   "), cmin, cmax),
		fmt.Sprintf("%s %.1f MB", labelStyle.Render("memory"), c.MemoryUsageMB),
		fmt.Sprintf("%s %s", labelStyle.Render("scheme"), m.schemeSwatch()),
	}
	return strings.Join(lines, "\n")
}

func (m Model) slicePanel() string {
	lines := []string{titleStyle.Render("Slices")}
	for _, t := range models.SliceTypes {
		marker := "  "
		if t == m.activeAxis {
			marker = activeStyle.Render("▸ ")
		}
		vis := labelStyle.Render("hidden")
		if m.visibility.Get(t) {
			vis = "shown"
		}
		loaded := labelStyle.Render("absent")
		if p := m.payloads[t]; p.Valid() {
			loaded = "loaded"
		}
		idx := m.indices.Get(t)
		fixed := scene.FixedCoordinate(t, idx, m.cube)
		lines = append(lines, fmt.Sprintf("%s%-7s %4d/%d  @%.1f  %s  %s",
			marker, t.String(), idx, m.cube.Shape[int(t)]-1, fixed, vis, loaded))
	}
	return strings.Join(lines, "\n")
}

// schemeSwatch previews the active colorscale as a short colored strip.
func (m Model) schemeSwatch() string {
	stops := colorscale.Resolve(m.color)
	const cells = 10
	var b strings.Builder
	for i := 0; i < cells; i++ {
		c := colorscale.Interpolate(stops, float64(i)/(cells-1))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("█"))
	}
	return m.color.Scheme + " " + b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.vizErr != "":
		return errStyle.Render(m.vizErr + "  (e to dismiss)")
	case m.fetchErr != "":
		return errStyle.Render(m.fetchErr + "  (e to dismiss)")
	case m.warning != "":
		return warnStyle.Render(m.warning)
	case m.pending > 0 || m.drawing:
		return m.spin.View() + " " + statusStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
