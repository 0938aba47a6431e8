package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	listview "github.com/muse-labs/trackboard/internal/tui/list"
)

// View renders the current view (Bubble Tea interface).
func (m DashboardModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return CritStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case ViewStateBrowsing, ViewStateReading:
		return m.renderDashboard()
	default:
		return ""
	}
}

// renderDashboard composes the selector and content panes side by side
// with the status bar underneath.
func (m DashboardModel) renderDashboard() string {
	selector := m.renderSelector()
	content := BoxStyle.Width(m.contentWidth()).Render(m.content.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, selector, content)

	sections := []string{body, m.renderStatusBar()}
	if m.showFilter {
		sections = append(sections, LabelStyle.Render("Filter: ")+m.textInput.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSelector renders the left pane.
func (m DashboardModel) renderSelector() string {
	list := m.list.View(renderSelectorItem)
	return BoxStyle.Width(selectorWidth).Render(list)
}

// renderSelectorItem renders one selector row: a cursor marker, the
// annotation mark, and the display label.
func renderSelectorItem(item listview.Item, selected bool) string {
	mark := PlainMark
	if item.Annotated {
		mark = AnnotatedMark
	}
	if item.Sentinel {
		mark = InfoStyle.Render("≡")
	}

	label := truncate(item.Label, selectorWidth-6)
	if selected {
		return SelectedItemStyle.Render("> ") + mark + " " + SelectedItemStyle.Render(label)
	}
	return "  " + mark + " " + ValueStyle.Render(label)
}

// renderStatusBar shows mode, counts, filter state, and the key hints.
func (m DashboardModel) renderStatusBar() string {
	mode := "browse"
	if m.state == ViewStateReading {
		mode = "read"
	}

	filterStatus := ""
	if m.textInput.Value() != "" {
		filterStatus = fmt.Sprintf(" | Filtered: %d/%d", m.list.Len(), m.list.TotalLen())
	}

	reloadStatus := ""
	if m.reloadErr != nil {
		reloadStatus = " | " + WarnStyle.Render("reload failed, showing stale data")
	}

	status := fmt.Sprintf("Mode: %s%s%s | Enter to read, '/' to filter, Esc to go back, 'q' to quit",
		mode, filterStatus, reloadStatus)
	return SubtleStyle.Render(status)
}
