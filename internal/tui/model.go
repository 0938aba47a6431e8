package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/muse-labs/trackboard/internal/catalog"
	"github.com/muse-labs/trackboard/internal/stats"
	listview "github.com/muse-labs/trackboard/internal/tui/list"
)

// ViewState tracks the dashboard's interaction mode.
type ViewState int

const (
	// ViewStateBrowsing is the default mode: the selector has focus.
	ViewStateBrowsing ViewState = iota
	// ViewStateReading hands focus to the content pane for scrolling.
	ViewStateReading
	// ViewStateQuitting is the terminal state after a quit key.
	ViewStateQuitting
	// ViewStateError is entered when the catalog can no longer be shown.
	ViewStateError
)

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
)

// Default terminal dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 40

	selectorWidth = 38
	chromeHeight  = 3 // status bar, filter line, padding
	borderPadding = 2
)

// CatalogReloadedMsg is sent after the source file changed on disk and
// the catalog was re-fetched.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// FetchFunc re-reads the catalog, typically through the load cache.
type FetchFunc func(ctx context.Context) (*catalog.Catalog, error)

// DashboardModel is the Bubble Tea model for the song dashboard: a
// selector pane on the left and the overview or per-song detail on the
// right.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	state ViewState
	ctx   context.Context

	cat      *catalog.Catalog
	overview *stats.Overview
	topN     int
	bins     int

	// Interactive components
	list      *listview.Model
	textInput textinput.Model
	content   viewport.Model

	// Display configuration
	width      int
	height     int
	ready      bool
	showFilter bool

	// Live reload
	reload <-chan struct{}
	fetch  FetchFunc

	err       error
	reloadErr error
}

// DashboardOptions configures the model beyond the catalog itself.
type DashboardOptions struct {
	TopN int
	Bins int

	// Reload fires when the source file changed; Fetch re-reads it.
	// Both nil disables live reload.
	Reload <-chan struct{}
	Fetch  FetchFunc
}

// NewDashboardModel creates the dashboard over a loaded catalog.
func NewDashboardModel(ctx context.Context, cat *catalog.Catalog, opts DashboardOptions) DashboardModel {
	m := DashboardModel{
		state:     ViewStateBrowsing,
		ctx:       ctx,
		cat:       cat,
		topN:      opts.TopN,
		bins:      opts.Bins,
		width:     defaultWidth,
		height:    defaultHeight,
		textInput: newTextInput(),
		reload:    opts.Reload,
		fetch:     opts.Fetch,
	}

	m.overview = stats.BuildOverview(cat, m.topN, m.bins)
	m.list = listview.New(selectorItems(cat), m.listHeight())
	m.content = viewport.New(m.contentWidth(), m.contentHeight())
	m.refreshContent()
	return m
}

// Init starts the reload listener (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	return m.waitForReload()
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.ready = true
		m.list.SetHeight(m.listHeight())
		m.content.Width = m.contentWidth()
		m.content.Height = m.contentHeight()
		m.refreshContent()
		return m, nil
	}

	if reloadMsg, ok := msg.(CatalogReloadedMsg); ok {
		return m.handleReloaded(reloadMsg)
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateBrowsing:
		return m.handleBrowsingUpdate(msg)
	case ViewStateReading:
		return m.handleReadingUpdate(msg)
	case ViewStateQuitting, ViewStateError:
		return m.handleTerminalUpdate(msg)
	default:
		return m, nil
	}
}

// handleReloaded swaps in a freshly fetched catalog. A failed fetch keeps
// the current data on screen and surfaces a warning.
func (m DashboardModel) handleReloaded(msg CatalogReloadedMsg) (tea.Model, tea.Cmd) {
	log := zerolog.Ctx(m.ctx)

	if msg.Err != nil {
		log.Warn().Err(msg.Err).Msg("catalog reload failed, keeping previous data")
		m.reloadErr = msg.Err
		return m, m.waitForReload()
	}

	previous := m.list.Selected()
	m.cat = msg.Catalog
	m.overview = stats.BuildOverview(m.cat, m.topN, m.bins)
	m.reloadErr = nil

	m.list = listview.New(selectorItems(m.cat), m.listHeight())
	m.list.SetFilter(m.textInput.Value())
	m.restoreSelection(previous)

	m.refreshContent()
	log.Debug().Int("tracks", m.overview.Summary.Total).Msg("catalog reloaded")
	return m, m.waitForReload()
}

// restoreSelection moves the cursor back to the previously selected label
// when it survived the reload. A vanished label falls back to the
// overview sentinel.
func (m *DashboardModel) restoreSelection(previous listview.Item) {
	if previous.Sentinel {
		return
	}
	for m.list.Selected().Label != previous.Label {
		before := m.list.Selected().Label
		m.list.MoveDown()
		if m.list.Selected().Label == before {
			m.list.Home()
			return
		}
	}
}

func (m DashboardModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.list.SetFilter(m.textInput.Value())
			m.refreshContent()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.list.SetFilter(m.textInput.Value())
	m.refreshContent()
	return m, cmd
}

func (m DashboardModel) handleBrowsingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case "up", "k":
		m.list.MoveUp()
		m.refreshContent()
	case "down", "j":
		m.list.MoveDown()
		m.refreshContent()
	case "pgup":
		m.list.PageUp()
		m.refreshContent()
	case "pgdown":
		m.list.PageDown()
		m.refreshContent()
	case "home", "g":
		m.list.Home()
		m.refreshContent()
	case "end", "G":
		m.list.End()
		m.refreshContent()
	case keyEnter:
		m.state = ViewStateReading
	case keySlash:
		m.showFilter = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.list.SetFilter("")
			m.refreshContent()
		}
	}
	return m, nil
}

func (m DashboardModel) handleReadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.state = ViewStateBrowsing
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleTerminalUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC, keyEsc:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}
	return m, nil
}

// waitForReload blocks on the watcher channel and re-fetches the catalog
// when it fires. Returns nil when live reload is disabled.
func (m DashboardModel) waitForReload() tea.Cmd {
	if m.reload == nil || m.fetch == nil {
		return nil
	}
	reload := m.reload
	fetch := m.fetch
	ctx := m.ctx
	return func() tea.Msg {
		if _, ok := <-reload; !ok {
			return nil
		}
		cat, err := fetch(ctx)
		return CatalogReloadedMsg{Catalog: cat, Err: err}
	}
}

// refreshContent re-renders the content pane for the current selection.
func (m *DashboardModel) refreshContent() {
	m.content.SetContent(m.renderContent())
	m.content.GotoTop()
}

// renderContent produces the right pane: the overview when the sentinel
// is selected, otherwise the detail for the selected song.
func (m *DashboardModel) renderContent() string {
	selected := m.list.Selected()
	if selected.Sentinel {
		return RenderOverview(m.overview)
	}

	rec, ok := m.cat.Find(selected.Label)
	if !ok {
		// The selected label no longer exists, usually after a live
		// reload rewrote the catalog underneath the selector.
		return CritStyle.Render("Selection no longer in catalog: "+selected.Label) + "\n" +
			SubtleStyle.Render("The data file changed. Pick another entry from the selector.")
	}
	return RenderDetail(m.cat, rec)
}

// Selected exposes the current selector item (for external access).
func (m *DashboardModel) Selected() listview.Item {
	return m.list.Selected()
}

// State exposes the current view state (for external access).
func (m *DashboardModel) State() ViewState {
	return m.state
}

func (m *DashboardModel) listHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m *DashboardModel) contentWidth() int {
	w := m.width - selectorWidth - borderPadding
	if w < 20 {
		w = 20
	}
	return w
}

func (m *DashboardModel) contentHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// selectorItems maps the catalog's ordered selection entries onto
// selector rows.
func selectorItems(cat *catalog.Catalog) []listview.Item {
	entries := cat.SelectionEntries()
	items := make([]listview.Item, len(entries))
	for i, e := range entries {
		items[i] = listview.Item{Label: e.Label, Annotated: e.Annotated}
	}
	return items
}

// newTextInput builds the filter input.
func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "filter songs"
	ti.CharLimit = 80
	ti.Width = selectorWidth - 4
	return ti
}
