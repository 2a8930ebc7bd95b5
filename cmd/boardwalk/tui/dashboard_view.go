package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marshallshelly/boardwalk/pkg/charts"
)

const barWidth = 36

// View renders the UI
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Analytics Dashboard"))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	p := m.panels[m.active]
	switch {
	case !p.loaded:
		b.WriteString(m.spinner.View() + infoStyle.Render(" loading..."))
	case p.errMsg != "":
		b.WriteString(errorStyle.Render(p.errMsg))
	default:
		b.WriteString(m.panelBody())
		b.WriteString("\n\n")
		b.WriteString(m.legendView(p.legend))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		FormatKey("←/→", "panel") + " • " +
			FormatKey("↑/↓", "legend") + " • " +
			FormatKey("space", "toggle series") + " • " +
			FormatKey("r", "refresh") + " • " +
			FormatKey("q", "quit"),
	))

	return b.String()
}

func (m DashboardModel) tabBar() string {
	var tabs []string
	for id := panelID(0); id < panelCount; id++ {
		label := fmt.Sprintf(" %d ", id+1)
		if id == m.active {
			tabs = append(tabs, activeButtonStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveButtonStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, tabs...) + "  " +
		subtitleStyle.Render(panelTitles[m.active])
}

func (m DashboardModel) legendView(legend charts.Legend) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("legend:"))
	b.WriteString("\n")
	for i, e := range legend {
		marker := "  "
		if i == m.legendIdx {
			marker = "▸ "
		}
		check := "✓"
		if !e.Visible {
			check = "○"
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		line := fmt.Sprintf("%s%s %s %s", marker, check, swatch, e.Label)
		if !e.Visible {
			line = mutedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) panelBody() string {
	switch m.active {
	case panelCoffeeBrands:
		labels := make([]string, len(m.coffee))
		values := make([]float64, len(m.coffee))
		for i, d := range m.coffee {
			labels[i], values[i] = d.Brand, d.Popularity
		}
		return renderBars(charts.Bars(labels, values, m.panels[m.active].legend))

	case panelSnackBrands:
		labels := make([]string, len(m.snacks))
		values := make([]float64, len(m.snacks))
		for i, d := range m.snacks {
			labels[i], values[i] = d.Name, d.Share
		}
		return renderBars(charts.Bars(labels, values, m.panels[m.active].legend))

	case panelMoodTrend:
		legend := m.panels[m.active].legend
		rows := make([]groupedRow, len(m.mood))
		for i, w := range m.mood {
			rows[i] = groupedRow{
				label:  w.Week,
				values: []float64{w.Happy, w.Tired, w.Stressed},
			}
		}
		return renderGrouped(rows, []string{"happy", "tired", "stressed"}, legend)

	case panelWorkoutTrend:
		legend := m.panels[m.active].legend
		rows := make([]groupedRow, len(m.workout))
		for i, w := range m.workout {
			rows[i] = groupedRow{
				label:  w.Week,
				values: []float64{w.Running, w.Cycling, w.Stretching},
			}
		}
		return renderGrouped(rows, []string{"running", "cycling", "stretching"}, legend)

	case panelCoffeeConsumption:
		return m.consumptionBody()

	case panelSnackImpact:
		return m.impactBody()
	}
	return ""
}

// renderBars draws one horizontal bar per label. Hidden entries keep their
// row but render empty, so toggling a series never reflows the chart.
func renderBars(bars []charts.Bar) string {
	max := charts.MaxValue(bars)
	var b strings.Builder
	for _, bar := range bars {
		w := charts.ScaleWidth(bar.Value, max, barWidth)
		fill := strings.Repeat("█", w)
		if bar.Color != "" {
			fill = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(fill)
		}
		value := mutedStyle.Render("—")
		if bar.Value > 0 {
			value = fmt.Sprintf("%.0f", bar.Value)
		}
		b.WriteString(fmt.Sprintf("%s %s%s %s\n", Pad(bar.Label, 16), fill, strings.Repeat(" ", barWidth-w), value))
	}
	return strings.TrimRight(b.String(), "\n")
}

type groupedRow struct {
	label  string
	values []float64
}

// renderGrouped draws one stacked bar per row, one colored segment per
// visible series.
func renderGrouped(rows []groupedRow, seriesLabels []string, legend charts.Legend) string {
	max := 1.0
	for _, row := range rows {
		total := 0.0
		for i, v := range row.values {
			if i < len(seriesLabels) && legend.Visible(seriesLabels[i]) {
				total += v
			}
		}
		if total > max {
			max = total
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(Pad(row.label, 6))
		b.WriteString(" ")
		used := 0
		for i, v := range row.values {
			if i >= len(seriesLabels) || !legend.Visible(seriesLabels[i]) {
				continue
			}
			w := charts.ScaleWidth(v, max, barWidth)
			if used+w > barWidth {
				w = barWidth - used
			}
			if w <= 0 {
				continue
			}
			seg := strings.Repeat("█", w)
			if color := legend.Color(seriesLabels[i]); color != "" {
				seg = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(seg)
			}
			b.WriteString(seg)
			used += w
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) consumptionBody() string {
	legend := m.panels[m.active].legend
	var b strings.Builder
	b.WriteString(mutedStyle.Render(Pad("team", 12) + " cups: bugs / productivity"))
	b.WriteString("\n")
	for _, team := range m.consumption.Teams {
		if !legend.Visible(team.Team) {
			b.WriteString(mutedStyle.Render(Pad(team.Team, 12) + " (hidden)"))
			b.WriteString("\n")
			continue
		}
		name := team.Team
		if color := legend.Color(team.Team); color != "" {
			name = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(Pad(name, 12))
		} else {
			name = Pad(name, 12)
		}
		var cells []string
		for _, p := range team.Series {
			cells = append(cells, fmt.Sprintf("%.0f: %.0f/%.0f", p.Cups, p.Bugs, p.Productivity))
		}
		b.WriteString(name + " " + strings.Join(cells, "  "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) impactBody() string {
	legend := m.panels[m.active].legend
	var b strings.Builder
	b.WriteString(mutedStyle.Render(Pad("department", 14) + " morale by snack level"))
	b.WriteString("\n")
	for _, dept := range m.impact.Departments {
		if !legend.Visible(dept.Name) {
			b.WriteString(mutedStyle.Render(Pad(dept.Name, 14) + " (hidden)"))
			b.WriteString("\n")
			continue
		}
		labels := make([]string, len(dept.Metrics))
		values := make([]float64, len(dept.Metrics))
		for i, p := range dept.Metrics {
			labels[i] = fmt.Sprintf("%.0f snacks", p.Snacks)
			values[i] = p.Morale
		}
		name := Pad(dept.Name, 14)
		if color := legend.Color(dept.Name); color != "" {
			name = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(name)
		}
		b.WriteString(name)
		b.WriteString("\n")
		sub := charts.Legend{}
		for _, l := range labels {
			sub = append(sub, charts.Entry{Label: l, Color: legend.Color(dept.Name), Visible: true})
		}
		bars := charts.Bars(labels, values, sub)
		for _, line := range strings.Split(renderBars(bars), "\n") {
			b.WriteString("  " + line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
