package threadview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"terminalhn/domain"
	"terminalhn/tui/common"
)

// View renders the thread view.
func (m Model) View() string {
	var b strings.Builder

	story := m.state.Story()
	b.WriteString(common.AppTitleStyle.Render(common.Truncate(story.Title, m.contentWidth())))
	b.WriteString("\n ")
	b.WriteString(fmt.Sprintf("%s  %s  %d comments",
		common.ScoreStyle.Render(fmt.Sprintf("%d pts", story.Score)),
		common.AuthorStyle.Render(story.Author),
		story.Descendants,
	))
	b.WriteString("\n\n")

	rows := m.visibleRows()
	if len(rows) == 0 {
		if m.state.Loading() {
			b.WriteString(fmt.Sprintf(" %s loading comments...\n", m.spinner.View()))
		} else {
			b.WriteString(" no comments\n")
		}
		b.WriteString(m.statusBar())
		return b.String()
	}

	now := time.Now()
	end := m.start + m.rowSlots()
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.start; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i == m.cursor, now))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) renderRow(r row, selected bool, now time.Time) string {
	c := r.comment
	indent := strings.Repeat("  ", c.Level)
	width := m.contentWidth() - ansi.StringWidth(indent)
	if width < 20 {
		width = 20
	}

	header := fmt.Sprintf("%s %s",
		common.AuthorStyle.Render(c.Author),
		common.TimestampStyle.Render(common.FormatAge(c.Time, now)),
	)

	if m.state.IsCollapsed(c.ID) {
		line := common.CollapsedStyle.Render(fmt.Sprintf("[+] %d hidden", domain.CountComments(c.Children)))
		if m.state.OffersCollapseThread(c.ID) {
			line += " " + common.AffordanceStyle.Render("▼ collapse thread")
		}
		return m.renderCard(indent, header+"\n"+line, selected)
	}

	body := wordwrap.String(c.Text, width)
	if !selected {
		body = firstLines(body, 2)
	}
	card := header + "\n" + common.ContentStyle.Render(body)
	if c.HasDeepReplies {
		card += "\n" + common.DeepRepliesStyle.Render(fmt.Sprintf("… %d more replies", len(c.ChildIDs)-len(c.Children)))
	}
	return m.renderCard(indent, card, selected)
}

// renderCard indents every line of a bordered card to the comment's depth.
func (m Model) renderCard(indent, content string, selected bool) string {
	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	rendered := style.Render(content)
	if indent == "" {
		return rendered
	}
	lines := strings.Split(rendered, "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusBar() string {
	if m.err != nil {
		return common.StatusBarStyle.Render(" " + common.ErrorStyle.Render("load failed: "+m.err.Error()))
	}
	parts := []string{"↑/↓: move", "c: collapse", "t: thread", "esc: back"}
	if m.showHints {
		parts = []string{"↑/↓: move", "c: collapse", "t: collapse thread", "T: expand thread", "z: top level only", "m: more", "esc: back", "q: quit"}
	}
	status := " " + strings.Join(parts, "  ")
	if m.state.Loading() {
		status += "  " + m.spinner.View() + " loading"
	} else if m.state.HasMore() {
		status += fmt.Sprintf("  m: more (%d/%d)", m.state.LoadedTotal(), m.state.Story().Descendants)
	}
	return common.StatusBarStyle.Render(status)
}

func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 72
	}
	return w
}

func firstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "…"
}
