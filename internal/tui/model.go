package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/holonet/internal/app"
	"github.com/papapumpkin/holonet/internal/swapi"
	"github.com/papapumpkin/holonet/internal/view"
)

// noticeTTL is how long a log notice stays in the status bar.
const noticeTTL = 6 * time.Second

// scrollMargin is how many lines are kept visible around the focused
// control when the page body scrolls.
const scrollMargin = 4

// AppModel is the root BubbleTea model. It forwards keys to the committed
// view tree as intents, performs the fetches those intents ask for and
// reports the outcomes back to the controller.
type AppModel struct {
	Keys      KeyMap
	StatusBar StatusBar
	Detail    DetailPanel
	Input     textinput.Model
	Spinner   spinner.Model
	Width     int
	Height    int

	ctrl   *app.Controller
	gw     app.Gateway
	screen *Screen
	ctx    context.Context
	// scroll is the first body line shown when the page is taller than the
	// terminal.
	scroll int
}

// NewAppModel creates a root model and subscribes its screen to the
// controller's store, so every dispatch re-renders.
func NewAppModel(ctx context.Context, ctrl *app.Controller, gw app.Gateway) AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Enter search term..."
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	m := AppModel{
		Keys:    DefaultKeyMap(),
		Detail:  NewDetailPanel(TwoColumnWidth, 24),
		Input:   ti,
		Spinner: sp,
		ctrl:    ctrl,
		gw:      gw,
		screen:  NewScreen(ctrl.State, gw.BaseURL()),
		ctx:     ctx,
	}
	ctrl.Store().Subscribe(m.screen.Listener())
	m.sync()
	return m
}

// Screen returns the committed view.
func (m AppModel) Screen() *Screen {
	return m.screen
}

// Init starts the spinner. Nothing is fetched until the user searches.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.Spinner.Tick)
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.StatusBar.Width = msg.Width
		m.Detail.SetSize(msg.Width, m.bodyHeight())

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case msgCategoryFetched:
		m.ctrl.Finish(msg.req, msg.doc, msg.err)

	case msgResourceFetched:
		m.screen.ResolveDetails(msg.doc, msg.err)

	case MsgGatewayChanged:
		if msg.Gateway != nil {
			m.gw = msg.Gateway
			m.screen.SetBaseURL(msg.Gateway.BaseURL())
		}

	case MsgLog:
		m.StatusBar.noticeSeq++
		m.StatusBar.Notice = msg.Summary
		m.StatusBar.NoticeLevel = msg.Level
		seq := m.StatusBar.noticeSeq
		cmds = append(cmds, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
			return msgNoticeFade{seq: seq}
		}))

	case msgNoticeFade:
		if msg.seq == m.StatusBar.noticeSeq {
			m.StatusBar.Notice = ""
		}

	default:
		// Cursor blink and other textinput messages.
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press by mode: overlay, search field or browse.
func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return tea.Quit
	}
	switch {
	case m.screen.Details().Visible():
		return m.handleOverlayKey(msg)
	case m.screen.Focus() == view.IDSearchInput:
		return m.handleInputKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *AppModel) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	km := OverlayKeyMap()
	switch {
	case key.Matches(msg, km.Close):
		m.screen.CloseDetails()
	case key.Matches(msg, km.Quit):
		return tea.Quit
	case key.Matches(msg, km.Raw):
		m.screen.ToggleRaw()
	case key.Matches(msg, km.Activate):
		return m.activate(view.EventClick)
	default:
		m.Detail.Update(msg)
	}
	return nil
}

func (m *AppModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	km := InputKeyMap()
	switch {
	case key.Matches(msg, km.Activate):
		return m.activate(view.EventChange)
	case key.Matches(msg, km.Next):
		m.screen.MoveFocus(1)
	case key.Matches(msg, km.Prev):
		m.screen.MoveFocus(-1)
	case key.Matches(msg, km.Close):
		// Escape anywhere closes the overlay; with none open it is ignored.
	default:
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return tea.Batch(cmd, m.activate(view.EventInput))
	}
	return nil
}

func (m *AppModel) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	km := m.Keys
	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit
	case key.Matches(msg, km.Next, km.Right, km.Down):
		m.screen.MoveFocus(1)
	case key.Matches(msg, km.Prev, km.Left, km.Up):
		m.screen.MoveFocus(-1)
	case key.Matches(msg, km.Activate):
		return m.activate(view.EventClick)
	case key.Matches(msg, km.Search):
		m.screen.SetFocus(view.IDSearchInput)
	case key.Matches(msg, km.Category):
		m.selectCategory(msg.String())
	}
	return nil
}

// selectCategory handles the 1-5 shortcuts by clicking the matching
// category button.
func (m *AppModel) selectCategory(digit string) {
	cats := swapi.Categories()
	if len(digit) != 1 {
		return
	}
	i := int(digit[0]) - '1'
	if i < 0 || i >= len(cats) {
		return
	}
	if n, ok := m.screen.Tree().Find(view.CategoryButtonID(cats[i])); ok {
		if intent, ok := n.On(view.EventClick); ok {
			m.dispatch(intent)
		}
	}
}

// activate fires event on the focused node.
func (m *AppModel) activate(e view.Event) tea.Cmd {
	n, ok := m.screen.FocusedNode()
	if !ok {
		return nil
	}
	intent, ok := n.On(e)
	if !ok {
		return nil
	}
	return m.dispatch(intent)
}

// dispatch performs an intent and returns the fetch it starts, if any.
func (m *AppModel) dispatch(intent view.Intent) tea.Cmd {
	switch intent.Action {
	case view.ActionSelectCategory:
		m.ctrl.SelectCategory(intent.Category)
	case view.ActionSearch:
		req := m.ctrl.StartSearch(m.screen.Draft())
		return fetchCategory(m.ctx, m.gw, req)
	case view.ActionViewDetails:
		m.screen.OpenDetails(intent.URL)
		return fetchResource(m.ctx, m.gw, intent.URL)
	case view.ActionCloseDetails:
		m.screen.CloseDetails()
	case view.ActionEditSearch:
		m.screen.SetDraft(m.Input.Value())
	}
	return nil
}

// fetchCategory runs a category fetch off the update loop. The gateway is
// captured at issue time.
func fetchCategory(ctx context.Context, gw app.Gateway, req app.Request) tea.Cmd {
	return func() tea.Msg {
		doc, err := gw.FetchCategory(ctx, req.Category, req.Term)
		return msgCategoryFetched{req: req, doc: doc, err: err}
	}
}

// fetchResource runs a details fetch off the update loop.
func fetchResource(ctx context.Context, gw app.Gateway, url string) tea.Cmd {
	return func() tea.Msg {
		doc, err := gw.FetchResource(ctx, url)
		return msgResourceFetched{url: url, doc: doc, err: err}
	}
}

// sync brings the adapter widgets in line with the committed screen.
func (m *AppModel) sync() {
	if m.screen.Focus() == view.IDSearchInput && !m.screen.Details().Visible() {
		m.Input.Focus()
	} else {
		m.Input.Blur()
	}
	m.StatusBar.Sync(m.ctrl.State())
	m.Detail.SetOverlay(m.screen.Tree().Details)
	m.followFocus()
}

// followFocus scrolls the page body so the focused control stays on screen.
func (m *AppModel) followFocus() {
	h := m.bodyHeight()
	if h <= 0 {
		return
	}
	p := m.paintBody()
	total := lipgloss.Height(p.body)
	if p.focusLine >= 0 {
		if p.focusLine < m.scroll+1 {
			m.scroll = max(0, p.focusLine-1)
		}
		if p.focusLine+scrollMargin > m.scroll+h {
			m.scroll = p.focusLine + scrollMargin - h
		}
	}
	m.scroll = max(0, min(m.scroll, total-h))
}

func (m AppModel) paintBody() painted {
	return paint(m.screen.Tree(), m.screen.Focus(), paintOptions{
		width:     m.Width,
		spinner:   m.Spinner.View(),
		inputView: m.Input.View(),
	})
}

// bodyHeight is the space between the status bar and the footer.
func (m AppModel) bodyHeight() int {
	// Status bar (1) and footer with its top border (2).
	return m.Height - 3
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return styleSubtitle.Render("Terminal too small. Resize to at least 40×12.")
	}

	status := m.StatusBar
	status.Spinner = m.Spinner.View()

	var body string
	if m.screen.Details().Visible() {
		closeFocused := m.screen.Focus() == view.IDDetailsClose
		body = centerOverlay(m.Detail.View(closeFocused), m.Width, m.bodyHeight())
	} else {
		body = clipLines(m.paintBody().body, m.scroll, m.bodyHeight())
	}

	return lipgloss.JoinVertical(lipgloss.Left, status.View(), body, m.buildFooter().View())
}

// clipLines returns height lines of s starting at offset, padding short
// content so the footer stays at the bottom.
func clipLines(s string, offset, height int) string {
	lines := strings.Split(s, "\n")
	offset = max(0, min(offset, len(lines)))
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// buildFooter selects bindings for the current mode.
func (m AppModel) buildFooter() Footer {
	f := Footer{Width: m.Width}
	switch {
	case m.screen.Details().Visible():
		f.Bindings = OverlayFooterBindings(OverlayKeyMap())
	case m.screen.Focus() == view.IDSearchInput:
		f.Bindings = InputFooterBindings(InputKeyMap())
	default:
		f.Bindings = BrowseFooterBindings(m.Keys)
	}
	return f
}
