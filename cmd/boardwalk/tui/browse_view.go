package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marshallshelly/boardwalk/pkg/board"
)

// View renders the UI
func (m BrowseModel) View() string {
	switch m.mode {
	case ModeChecking:
		return boxStyle.Render(m.spinner.View() + " checking session...")

	case ModeDenied:
		msg := titleStyle.Render("Not signed in") + "\n\n" +
			warningStyle.Render("Redirecting to "+m.decision.RedirectTo) + "\n" +
			mutedStyle.Render("Run `boardwalk login` first.") + "\n\n" +
			helpStyle.Render(FormatKey("any key", "exit"))
		return m.center(boxStyle.Render(msg))

	case ModeConfirmDelete:
		return m.center(m.confirm.View())

	case ModeForm:
		return m.center(m.formView())

	case ModeDetail:
		return m.center(m.detailView())

	case ModeDates:
		return m.center(m.datesView())
	}

	return m.listView()
}

func (m BrowseModel) center(content string) string {
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m BrowseModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Board Posts"))
	b.WriteString("\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")
	b.WriteString(m.tableView())
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg + "  (x to dismiss)"))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		FormatKey("/", "search") + " • " +
			FormatKey("c", "category") + " • " +
			FormatKey("s/o", "sort/order") + " • " +
			FormatKey("b", "date range") + " • " +
			FormatKey("n/e/d", "new/edit/delete") + " • " +
			FormatKey("enter", "detail") + " • " +
			FormatKey("1-4", "columns") + " • " +
			FormatKey("tab <>", "resize") + " • " +
			FormatKey("q", "quit"),
	))

	return b.String()
}

func (m BrowseModel) filterBar() string {
	q := m.feed.Query()

	search := q.Search
	if m.mode == ModeSearch {
		search = m.searchInput.View()
	} else if search == "" {
		search = mutedStyle.Render("(none)")
	}

	category := "ALL"
	if q.Category != "" {
		category = string(q.Category)
	}

	bounds := mutedStyle.Render("(any time)")
	if q.From != "" || q.To != "" {
		bounds = fmt.Sprintf("%s .. %s", orAny(q.From), orAny(q.To))
	}

	return fmt.Sprintf("%s %s  %s %s  %s %s %s  %s %s",
		mutedStyle.Render("search:"), search,
		mutedStyle.Render("category:"), infoStyle.Render(category),
		mutedStyle.Render("sort:"), string(q.Sort), string(q.Order),
		mutedStyle.Render("range:"), bounds,
	)
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

func (m BrowseModel) tableView() string {
	visible := m.columns.Visible()

	var header strings.Builder
	for i, col := range m.columns {
		if !col.Visible {
			continue
		}
		label := col.Label
		if i == m.selCol {
			label = "▸" + label
		}
		header.WriteString(Pad(label, CellWidth(col.Width)))
		header.WriteString(" ")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.TrimRight(header.String(), " ")))
	b.WriteString("\n")

	items := m.feed.Items()
	if len(items) == 0 {
		if m.feed.InFlight() {
			b.WriteString(m.spinner.View() + infoStyle.Render(" loading posts..."))
		} else {
			b.WriteString(mutedStyle.Render("No posts match the current filters."))
		}
		return b.String()
	}

	start, end := m.windowBounds(len(items))
	for i := start; i < end; i++ {
		row := m.renderRow(items[i], visible)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// windowBounds keeps the cursor inside the visible slice of rows.
func (m BrowseModel) windowBounds(total int) (int, int) {
	rows := m.height - 10
	if rows < 5 {
		rows = 5
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > total {
		end = total
	}
	return start, end
}

func (m BrowseModel) renderRow(p board.Post, visible board.Columns) string {
	var b strings.Builder
	for _, col := range visible {
		w := CellWidth(col.Width)
		var cell string
		switch col.Key {
		case "category":
			cell = string(p.Category)
		case "title":
			cell = p.Title
		case "tags":
			cell = board.JoinTags(p.Tags)
		case "createdAt":
			cell = p.CreatedAt.Local().Format("2006-01-02 15:04")
		case board.ColumnActions:
			cell = "[enter]view [e]dit [d]el"
		}
		b.WriteString(Pad(cell, w))
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

func (m BrowseModel) statusLine() string {
	var parts []string
	parts = append(parts, mutedStyle.Render(fmt.Sprintf("%d loaded", m.feed.Len())))
	if m.feed.InFlight() {
		parts = append(parts, m.spinner.View()+infoStyle.Render(" fetching next page"))
	} else if m.feed.HasNext() {
		parts = append(parts, mutedStyle.Render("scroll down for more"))
	} else {
		parts = append(parts, mutedStyle.Render("end of results"))
	}
	return strings.Join(parts, "  ")
}

func (m BrowseModel) formView() string {
	var b strings.Builder

	heading := "New Post"
	if m.form.Editing() != nil {
		heading = "Edit Post"
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Title", 0))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Body", 1))
	b.WriteString("\n")
	b.WriteString(m.bodyInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Category", 2))
	b.WriteString("  ")
	for _, cat := range board.Categories() {
		if cat == m.form.Category {
			b.WriteString(activeButtonStyle.Render(string(cat)))
		} else {
			b.WriteString(inactiveButtonStyle.Render(string(cat)))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Tags", 3))
	b.WriteString("\n")
	b.WriteString(m.tagsInput.View())
	b.WriteString("\n")

	if m.form.Err() != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.form.Err()))
		b.WriteString("\n")
	}

	if m.form.IsSubmitting() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View() + infoStyle.Render(" submitting..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		FormatKey("tab", "next field") + " • " +
			FormatKey("ctrl+s", "save") + " • " +
			FormatKey("esc", "cancel"),
	))

	return activeBoxStyle.Render(b.String())
}

func (m BrowseModel) fieldLabel(label string, idx int) string {
	if m.formFocus == idx {
		return infoStyle.Render("▸ " + label)
	}
	return mutedStyle.Render("  " + label)
}

func (m BrowseModel) detailView() string {
	if m.detail == nil {
		return ""
	}
	p := m.detail

	var b strings.Builder
	b.WriteString(titleStyle.Render("Post Detail"))
	b.WriteString("\n\n")
	b.WriteString(FormatCategory(p.Category))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(p.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("by " + p.UserID))
	b.WriteString("\n\n")

	if len(p.Tags) > 0 {
		for _, tag := range p.Tags {
			b.WriteString(tagStyle.Render("#" + tag))
			b.WriteString(" ")
		}
		b.WriteString("\n\n")
	}

	body := p.Body
	width := 72
	if m.width > 0 && m.width-12 < width {
		width = m.width - 12
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(body))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("e", "edit") + " • " + FormatKey("esc", "back")))

	return boxStyle.Render(b.String())
}

func (m BrowseModel) datesView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Created-At Range"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Local date-times, converted to UTC; leave blank for an open bound."))
	b.WriteString("\n\n")
	b.WriteString(dateLabel("From", m.dateFocus == 0))
	b.WriteString("\n")
	b.WriteString(m.fromInput.View())
	b.WriteString("\n\n")
	b.WriteString(dateLabel("To", m.dateFocus == 1))
	b.WriteString("\n")
	b.WriteString(m.toInput.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		FormatKey("tab", "switch") + " • " +
			FormatKey("enter", "apply") + " • " +
			FormatKey("esc", "cancel"),
	))
	return activeBoxStyle.Render(b.String())
}

func dateLabel(label string, focused bool) string {
	if focused {
		return infoStyle.Render("▸ " + label)
	}
	return mutedStyle.Render("  " + label)
}
