package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devoto-app/devoto/internal/debounce"
	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/query"
	"github.com/devoto-app/devoto/internal/store"
)

// TUIConfig holds configuration needed by the TUI.
type TUIConfig struct {
	Editor        string        // resolved editor command
	MaxWidth      int           // maximum viewport width (0 = no limit)
	Theme         Theme         // resolved theme
	DebounceDelay time.Duration // quiescence window for live search
	HistorySize   int           // recent-searches retention
}

type searchScreen int

const (
	screenResults searchScreen = iota
	screenDetail
	screenRecent
)

// resultItem implements list.Item for a search hit.
type resultItem struct {
	entry entry.Entry
}

func (r resultItem) Title() string {
	marker := " "
	if r.entry.Favorite {
		marker = "★"
	}
	return fmt.Sprintf("%s %s  %s", marker, entry.DayKey(r.entry.Date), r.entry.Preview(50))
}

func (r resultItem) Description() string {
	var parts []string
	if r.entry.Category != "" {
		parts = append(parts, r.entry.Category.DisplayName())
	}
	if r.entry.Verse != "" {
		parts = append(parts, r.entry.Verse)
	}
	if len(parts) == 0 {
		return r.entry.ID
	}
	return strings.Join(parts, "  ")
}

func (r resultItem) FilterValue() string { return r.entry.ID }

// resultsMsg carries a finished evaluation back into the model. The seq is
// checked against the debouncer before the results are shown; stale results
// are dropped.
type resultsMsg struct {
	seq     uint64
	text    string
	entries []entry.Entry
	err     error
}

type searchModel struct {
	store *store.Store
	cfg   TUIConfig

	input     textinput.Model
	results   list.Model
	viewport  viewport.Model
	recent    list.Model
	screen    searchScreen
	selected  entry.Entry
	debouncer *debounce.Debouncer
	history   *debounce.History
	evals     chan resultsMsg

	desc       query.Descriptor
	categories []entry.Category
	catIdx     int // -1 = no category filter

	count  int
	width  int
	height int
	ready  bool
	err    error
}

type recentItem string

func (r recentItem) Title() string       { return string(r) }
func (r recentItem) Description() string { return "" }
func (r recentItem) FilterValue() string { return string(r) }

func newSearchModel(s *store.Store, cfg TUIConfig) *searchModel {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.Focus()
	ti.CharLimit = 200

	m := &searchModel{
		store:      s,
		cfg:        cfg,
		input:      ti,
		history:    debounce.NewHistory(cfg.HistorySize),
		evals:      make(chan resultsMsg, 8),
		desc:       query.Descriptor{Sort: query.Newest},
		categories: entry.Categories(s.Tracker()),
		catIdx:     -1,
		results:    cfg.Theme.NewList(nil, 0, 0),
	}
	m.results.Title = "Search"
	m.results.SetShowHelp(false)
	m.results.SetFilteringEnabled(false)

	m.debouncer = debounce.New(cfg.DebounceDelay, func(seq uint64, text string) {
		m.evals <- m.evaluate(seq, text)
	})
	return m
}

// evaluate runs off the Update loop, on the debouncer's timer goroutine. The
// store is safe for concurrent reads.
func (m *searchModel) evaluate(seq uint64, text string) resultsMsg {
	desc := m.desc
	desc.Text = strings.TrimSpace(text)
	entries, err := query.Evaluate(m.store, desc)
	return resultsMsg{seq: seq, text: desc.Text, entries: entries, err: err}
}

func (m *searchModel) listen() tea.Cmd {
	return func() tea.Msg { return <-m.evals }
}

// refilterNow re-evaluates synchronously for discrete filter changes; only
// typed text goes through the debounce window.
func (m *searchModel) refilterNow() tea.Cmd {
	m.debouncer.Submit(m.input.Value())
	m.debouncer.Flush()
	return nil
}

func (m *searchModel) Init() tea.Cmd {
	m.refilterNow()
	return tea.Batch(textinput.Blink, m.listen())
}

func (m *searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsMsg:
		if !m.debouncer.Accept(msg.seq) {
			// Superseded while in flight.
			return m, m.listen()
		}
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.count = len(msg.entries)
		items := make([]list.Item, len(msg.entries))
		for i, e := range msg.entries {
			items[i] = resultItem{entry: e}
		}
		m.results.SetItems(items)
		if msg.text != "" && len(msg.entries) > 0 {
			m.history.Commit(msg.text)
		}
		return m, m.listen()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = m.contentWidth() - 4
		m.results.SetSize(m.contentWidth(), msg.Height-5)
		if m.screen == screenDetail {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = msg.Height - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenDetail:
			return m.updateDetail(msg)
		case screenRecent:
			return m.updateRecent(msg)
		}
		return m.updateResults(msg)
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *searchModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if item, ok := m.results.SelectedItem().(resultItem); ok {
			return m.openDetail(item.entry)
		}
		m.debouncer.Flush()
		return m, nil
	case "up", "down":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	case "ctrl+f":
		m.desc.FavoritesOnly = !m.desc.FavoritesOnly
		return m, m.refilterNow()
	case "ctrl+v":
		m.desc.WithVerse = !m.desc.WithVerse
		return m, m.refilterNow()
	case "ctrl+t":
		m.cycleCategory()
		return m, m.refilterNow()
	case "ctrl+s":
		m.cycleSort()
		return m, m.refilterNow()
	case "ctrl+r":
		return m.openRecent()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.debouncer.Submit(m.input.Value())
	}
	return m, cmd
}

func (m *searchModel) cycleCategory() {
	if len(m.categories) == 0 {
		return
	}
	m.catIdx++
	if m.catIdx >= len(m.categories) {
		m.catIdx = -1
		m.desc.Category = ""
		return
	}
	m.desc.Category = m.categories[m.catIdx]
}

func (m *searchModel) cycleSort() {
	switch m.desc.Sort {
	case query.Newest:
		m.desc.Sort = query.Oldest
	case query.Oldest:
		m.desc.Sort = query.MostItems
	default:
		m.desc.Sort = query.Newest
	}
}

func (m *searchModel) openDetail(e entry.Entry) (tea.Model, tea.Cmd) {
	m.selected = e
	height := max(m.height-4, 1)
	m.viewport = viewport.New(m.contentWidth(), height)

	var b strings.Builder
	FormatEntryFull(&b, e, m.cfg.Theme.MarkdownStyle)
	m.viewport.SetContent(b.String())
	m.screen = screenDetail
	return m, nil
}

func (m *searchModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "backspace":
		m.screen = screenResults
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *searchModel) openRecent() (tea.Model, tea.Cmd) {
	terms := m.history.Recent()
	items := make([]list.Item, len(terms))
	for i, term := range terms {
		items[i] = recentItem(term)
	}
	m.recent = m.cfg.Theme.NewList(items, m.contentWidth()-4, min(m.height-4, len(terms)*3+4))
	m.recent.Title = "Recent searches"
	m.recent.SetShowHelp(false)
	m.screen = screenRecent
	return m, nil
}

func (m *searchModel) updateRecent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+r":
		m.screen = screenResults
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		if item, ok := m.recent.SelectedItem().(recentItem); ok {
			m.input.SetValue(string(item))
			m.screen = screenResults
			return m, m.refilterNow()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.recent, cmd = m.recent.Update(msg)
	return m, cmd
}

// chips renders the active discrete filters for the footer.
func (m *searchModel) chips() string {
	var chips []string
	if m.desc.FavoritesOnly {
		chips = append(chips, "★ favorites")
	}
	if m.desc.WithVerse {
		chips = append(chips, "verse")
	}
	if m.desc.Category != "" {
		chips = append(chips, m.desc.Category.DisplayName())
	}
	chips = append(chips, "sort:"+string(m.desc.Sort))
	return strings.Join(chips, "  ")
}

func (m *searchModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

func (m *searchModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	cw := m.contentWidth()

	switch m.screen {
	case screenDetail:
		header := m.cfg.Theme.HeaderStyle().Width(cw).Render("Entry: " + m.selected.ID)
		footer := m.cfg.Theme.HelpStyle().Width(cw).Render("↑/↓ scroll • esc back")
		pane := m.cfg.Theme.ViewPaneStyle().Width(cw)
		return m.cfg.Theme.PaintScreen(header+"\n\n"+pane.Render(m.viewport.View())+"\n"+footer, m.width, m.height, cw)
	case screenRecent:
		footer := m.cfg.Theme.HelpStyle().Width(cw).Render("enter reuse • esc back")
		return m.cfg.Theme.PaintScreen(m.recent.View()+"\n"+footer, m.width, m.height, cw)
	}

	header := m.cfg.Theme.HeaderStyle().Width(cw).Render(
		fmt.Sprintf("Search %s  (%d results)", m.store.Tracker(), m.count))
	chips := m.cfg.Theme.AccentStyle().Width(cw).Render(m.chips())
	footer := m.cfg.Theme.HelpStyle().Width(cw).Render(
		"^F favorites  ^V verse  ^T category  ^S sort  ^R recent  enter open  esc quit")
	result := header + "\n" + m.input.View() + "\n" + chips + "\n" + m.results.View() + "\n" + footer
	return m.cfg.Theme.PaintScreen(result, m.width, m.height, cw)
}

// RunSearch launches the interactive search over one tracker's store.
func RunSearch(s *store.Store, cfg TUIConfig) error {
	m := newSearchModel(s, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := result.(*searchModel); ok && sm.err != nil {
		return sm.err
	}
	return nil
}
