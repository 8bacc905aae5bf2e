package tui

import (
	"fmt"
	"strings"
)

const progressWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == stateAdd && m.form != nil {
		return appStyle.Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("habitleaf"))
	b.WriteString("\n")
	b.WriteString(m.progressView())
	b.WriteString("\n\n")
	b.WriteString(m.listView())

	if m.state == stateConfirmDelete {
		if h, ok := m.ledger.Get(m.deleteID); ok {
			b.WriteString(confirmStyle.Render(fmt.Sprintf("delete %q? (y/n)", h.Name)))
			b.WriteString("\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return appStyle.Render(b.String())
}

func (m Model) progressView() string {
	pct := m.ledger.ProgressPercentage()
	filled := int(pct / 100 * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	bar := progressFillStyle.Render(strings.Repeat("█", filled)) +
		progressEmptyStyle.Render(strings.Repeat("░", progressWidth-filled))
	label := progressLabelStyle.Render(
		fmt.Sprintf(" %d/%d today", m.ledger.CompletedCount(), m.ledger.Len()))
	return bar + label
}

func (m Model) listView() string {
	habits := m.ledger.Habits()
	if len(habits) == 0 {
		return pendingStyle.Render("no habits yet, press a to add one") + "\n"
	}

	var b strings.Builder
	for i, h := range habits {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("❯ ")
		}
		mark := pendingStyle.Render("○")
		name := pendingStyle.Render(h.Name)
		if h.Completed {
			mark = doneStyle.Render("✓")
			name = doneStyle.Render(h.Name)
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, mark, h.Icon, name)
		if h.Streak > 0 {
			line += streakStyle.Render(fmt.Sprintf("  🔥%d", h.Streak))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
