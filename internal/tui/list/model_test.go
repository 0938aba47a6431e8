package listview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(height int) *Model {
	return New([]Item{
		{Label: "Alpha | Album", Annotated: true},
		{Label: "Beta | Album", Annotated: true},
		{Label: "Gamma | Album"},
		{Label: "Delta | Album"},
	}, height)
}

func TestNewPrependsSentinel(t *testing.T) {
	m := newTestList(10)

	assert.Equal(t, 5, m.TotalLen())
	assert.True(t, m.Selected().Sentinel)
	assert.Equal(t, OverviewLabel, m.Selected().Label)
}

func TestNavigation(t *testing.T) {
	m := newTestList(10)

	m.MoveUp()
	assert.True(t, m.Selected().Sentinel, "MoveUp at the top stays put")

	m.MoveDown()
	assert.Equal(t, "Alpha | Album", m.Selected().Label)

	m.End()
	assert.Equal(t, "Delta | Album", m.Selected().Label)
	m.MoveDown()
	assert.Equal(t, "Delta | Album", m.Selected().Label, "MoveDown at the bottom stays put")

	m.Home()
	assert.True(t, m.Selected().Sentinel)

	m.PageDown()
	m.PageUp()
	assert.True(t, m.Selected().Sentinel)
}

func TestFilterKeepsSentinel(t *testing.T) {
	m := newTestList(10)
	m.End()

	m.SetFilter("gamma")
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Selected().Sentinel, "filter resets the cursor to the top")
	assert.Equal(t, "gamma", m.Filter())

	m.MoveDown()
	assert.Equal(t, "Gamma | Album", m.Selected().Label)

	m.SetFilter("no such song")
	assert.Equal(t, 1, m.Len(), "the sentinel survives every filter")

	m.SetFilter("")
	assert.Equal(t, 5, m.Len())
}

func TestViewWindow(t *testing.T) {
	m := newTestList(3)
	render := func(item Item, selected bool) string {
		if selected {
			return "> " + item.Label
		}
		return "  " + item.Label
	}

	out := m.View(render)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3, "only the window renders")
	assert.Equal(t, "> "+OverviewLabel, lines[0])

	m.End()
	out = m.View(render)
	lines = strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "> Delta | Album", lines[2], "window follows the cursor to the bottom")
}

func TestSelectedOutOfRangeFallsBack(t *testing.T) {
	m := newTestList(10)
	m.cursor = 99
	assert.True(t, m.Selected().Sentinel)
}
