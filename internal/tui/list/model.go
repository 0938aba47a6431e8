// Package listview implements the song selector: a scrolling window over
// the overview sentinel plus every display label, with substring
// filtering. Rendering is delegated so the parent owns the styling.
package listview

import "strings"

// OverviewLabel is the sentinel entry pinned to the top of the full list.
const OverviewLabel = "[ Overview ]"

// Item is one selector row.
type Item struct {
	Label     string
	Annotated bool

	// Sentinel marks the overview entry.
	Sentinel bool
}

// RenderFunc renders one item; selected marks the cursor row.
type RenderFunc func(item Item, selected bool) string

// Model is a windowed selection list. Only the rows around the cursor are
// rendered, so the list stays cheap for large catalogs.
type Model struct {
	all     []Item // sentinel + every label, fixed order
	visible []Item // after filtering; sentinel always first
	cursor  int
	height  int
	filter  string
}

// New builds the selector from the ordered (label, annotated) entries.
// The overview sentinel is prepended regardless of ordering.
func New(labels []Item, height int) *Model {
	all := make([]Item, 0, len(labels)+1)
	all = append(all, Item{Label: OverviewLabel, Sentinel: true})
	all = append(all, labels...)

	m := &Model{all: all, height: height}
	m.applyFilter()
	return m
}

// SetHeight sets the window height in rows.
func (m *Model) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	m.height = height
}

// SetFilter narrows the list to labels containing q, case-insensitively.
// The sentinel never filters out. The cursor resets to the top.
func (m *Model) SetFilter(q string) {
	m.filter = q
	m.applyFilter()
	m.cursor = 0
}

// Filter returns the active filter text.
func (m *Model) Filter() string {
	return m.filter
}

func (m *Model) applyFilter() {
	if m.filter == "" {
		m.visible = m.all
		return
	}
	q := strings.ToLower(m.filter)
	filtered := make([]Item, 0, len(m.all))
	for _, item := range m.all {
		if item.Sentinel || strings.Contains(strings.ToLower(item.Label), q) {
			filtered = append(filtered, item)
		}
	}
	m.visible = filtered
}

// MoveUp moves the cursor one row up.
func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor one row down.
func (m *Model) MoveDown() {
	if m.cursor < len(m.visible)-1 {
		m.cursor++
	}
}

// PageUp moves the cursor one window up.
func (m *Model) PageUp() {
	m.cursor -= m.height
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// PageDown moves the cursor one window down.
func (m *Model) PageDown() {
	m.cursor += m.height
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
}

// Home moves the cursor to the sentinel.
func (m *Model) Home() {
	m.cursor = 0
}

// End moves the cursor to the last row.
func (m *Model) End() {
	if len(m.visible) > 0 {
		m.cursor = len(m.visible) - 1
	}
}

// Selected returns the item under the cursor. The list is never empty:
// the sentinel survives every filter.
func (m *Model) Selected() Item {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return m.all[0]
	}
	return m.visible[m.cursor]
}

// Len returns the visible row count.
func (m *Model) Len() int {
	return len(m.visible)
}

// TotalLen returns the unfiltered row count, sentinel included.
func (m *Model) TotalLen() int {
	return len(m.all)
}

// View renders the window around the cursor using render.
func (m *Model) View(render RenderFunc) string {
	if len(m.visible) == 0 {
		return ""
	}

	from, to := m.window()
	var sb strings.Builder
	for i := from; i < to; i++ {
		sb.WriteString(render(m.visible[i], i == m.cursor))
		if i < to-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// window computes the visible range, keeping the cursor centered where
// possible.
func (m *Model) window() (int, int) {
	if len(m.visible) <= m.height {
		return 0, len(m.visible)
	}

	half := m.height / 2
	from := m.cursor - half
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.visible) {
		to = len(m.visible)
		from = to - m.height
	}
	return from, to
}
