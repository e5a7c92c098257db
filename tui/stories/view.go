package stories

import (
	"fmt"
	"strings"
	"time"

	"terminalhn/tui/common"
)

// View renders the stories view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("terminalhn"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("\n %s loading front page...\n", m.spinner.View()))
		return b.String()
	}
	if m.err != nil {
		b.WriteString("\n " + common.ErrorStyle.Render("error: "+m.err.Error()) + "\n")
		b.WriteString(common.StatusBarStyle.Render(" r: retry  q: quit"))
		return b.String()
	}

	now := time.Now()
	width := m.width - 6
	if width < 20 {
		width = 60
	}

	end := m.start + m.storySlots()
	if end > len(m.stories) {
		end = len(m.stories)
	}
	for i := m.start; i < end; i++ {
		st := m.stories[i]
		title := common.Truncate(st.Title, width)
		meta := fmt.Sprintf("%s  %s  %s  %d comments",
			common.ScoreStyle.Render(fmt.Sprintf("%d pts", st.Score)),
			common.AuthorStyle.Render(st.Author),
			common.TimestampStyle.Render(common.FormatAge(st.Time, now)),
			st.Descendants,
		)
		card := title + "\n" + meta
		if i == m.cursor {
			b.WriteString(common.SelectedStyle.Render(card))
		} else {
			b.WriteString(common.UnselectedStyle.Render(card))
		}
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render(" ↑/↓: select  enter: comments  o: open link  r: refresh  q: quit"))
	return b.String()
}
