package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"legalsearch/internal/config"
	"legalsearch/internal/eventbus"
	"legalsearch/internal/logging"
	"legalsearch/internal/search"
	"legalsearch/internal/ui/query"
	"legalsearch/internal/ui/state"
	"legalsearch/internal/ui/views"
)

// Model is the single search view: query box, result, citations and raw inspector.
// All state changes happen inside Update, so no locking is needed.
type Model struct {
	ctx      context.Context
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.ViewState
	searcher search.Searcher

	query    *query.Controller
	renderer *views.Renderer
	keys     keyMap
	help     help.Model
	spinner  spinner.Model

	width  int
	height int

	// signOut is handed to the navigation header; the default only logs
	signOut func()
}

// NewModel creates the search view. ctx bounds every outbound search;
// cancelling it is the only way in-flight searches are abandoned.
func NewModel(ctx context.Context, cfg *config.Config, searcher search.Searcher, bus eventbus.EventBus) *Model {
	h := help.New()
	h.ShowAll = false

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := &Model{
		ctx:      ctx,
		bus:      bus,
		config:   cfg,
		state:    state.NewViewState(),
		searcher: searcher,
		query:    query.NewController(cfg.Examples),
		renderer: views.NewRenderer(),
		keys:     newKeyMap(),
		help:     h,
		spinner:  sp,
	}
	m.signOut = func() {
		logging.Info("sign out requested (no-op)")
	}
	return m
}

// SetSignOut replaces the header's sign-out action
func (m *Model) SetSignOut(fn func()) {
	if fn != nil {
		m.signOut = fn
	}
}

// State exposes the view state for inspection
func (m *Model) State() *state.ViewState {
	return m.state
}

// Query exposes the query input controller
func (m *Model) Query() *query.Controller {
	return m.query
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.query.SetWidth(msg.Width - 8)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchCompletedMsg:
		m.handleCompleted(msg)
		return m, nil

	case searchFailedMsg:
		m.handleFailed(msg)
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			logging.Warn("pager exited with error", "err", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.InFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and anything else the text input cares about
	return m, m.query.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.ToggleRaw):
		m.toggleInspector()
		return m, nil

	case key.Matches(msg, m.keys.OpenPager):
		return m, openPagerCmd(views.FormatPayload(m.state.LastRaw, m.state.LastResult))

	case key.Matches(msg, m.keys.SignOut):
		m.signOut()
		m.publish(eventbus.SignOutRequestedEvent{})
		return m, nil

	case key.Matches(msg, m.keys.NextExample):
		m.query.NextExample()
		m.state.QueryText = m.query.QueryText()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if i, ok := exampleIndex(msg); ok {
		m.query.SelectExampleAt(i)
		m.state.QueryText = m.query.QueryText()
		return m, nil
	}

	cmd := m.query.Update(msg)
	m.state.QueryText = m.query.QueryText()
	return m, cmd
}

// submit dispatches the current text and clears the box. The search itself runs
// off the update loop; its result comes back as a message.
func (m *Model) submit() tea.Cmd {
	sub := m.query.Submit()
	m.state.QueryText = m.query.QueryText()
	m.state.BeginSearch()

	logging.Info("search submitted", "seq", sub.Seq, "query", sub.Query)
	m.publish(eventbus.SearchStartedEvent{Submission: sub})

	searcher, ctx := m.searcher, m.ctx
	run := func() tea.Msg {
		resp, err := searcher.Search(ctx, sub.Query)
		if err != nil {
			return searchFailedMsg{submission: sub, err: err}
		}
		return searchCompletedMsg{submission: sub, response: resp}
	}

	if m.state.InFlight == 1 {
		return tea.Batch(run, m.spinner.Tick)
	}
	return run
}

// handleCompleted installs a response. Whichever response arrives last wins,
// unless discard_stale is set, in which case older submissions are dropped.
func (m *Model) handleCompleted(msg searchCompletedMsg) {
	sub := msg.submission
	if m.config.DiscardStale && m.state.IsStale(sub.Seq) {
		m.state.DiscardSearch()
		logging.Info("discarding stale search response", "seq", sub.Seq, "displayed", m.state.LastSeq)
		m.publish(eventbus.SearchDiscardedEvent{Submission: sub, Displayed: m.state.LastSeq})
		return
	}

	m.state.CompleteSearch(sub.Seq, msg.response.Result, msg.response.Raw)

	logging.Info("search completed",
		"seq", sub.Seq,
		"request_id", msg.response.RequestID,
		"citations", len(msg.response.Result.Citations),
		"elapsed", msg.response.Elapsed)
	m.publish(eventbus.SearchCompletedEvent{
		Submission: sub,
		RequestID:  msg.response.RequestID,
		Citations:  len(msg.response.Result.Citations),
		Elapsed:    msg.response.Elapsed,
	})
}

func (m *Model) handleFailed(msg searchFailedMsg) {
	m.state.FailSearch(msg.err)
	logging.Error("search failed", "seq", msg.submission.Seq, "err", msg.err, "recoverable", search.IsRecoverable(msg.err))
	m.publish(eventbus.SearchFailedEvent{Submission: msg.submission, Err: msg.err})
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) toggleInspector() {
	visible := m.state.ToggleRawPanel()
	m.publish(eventbus.InspectorToggledEvent{Visible: visible})
}

// View renders the search view
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	helpView := ""
	if m.config.UISettings.ShowHelp {
		helpView = m.help.View(m.keys)
	}

	return m.renderer.Render(views.ViewData{
		Width:    m.width,
		Height:   m.height,
		Title:    m.config.UISettings.Title,
		Input:    m.query.View(),
		Examples: m.query.Examples(),
		State:    m.state,
		Spinner:  m.spinner.View(),
		Help:     helpView,
	})
}
