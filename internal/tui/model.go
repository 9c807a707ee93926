package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/periodic/internal/catalog"
	"github.com/papapumpkin/periodic/internal/resolver"
	"github.com/papapumpkin/periodic/internal/telemetry"
	"github.com/papapumpkin/periodic/internal/ui"
)

// statusKind selects how the status line is styled.
type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusWarn
	statusError
)

// Options configures a lookup model.
type Options struct {
	Resolver *resolver.Resolver
	Labels   ui.Labeler          // nil for English labels
	History  *telemetry.Emitter // nil disables history
}

// AppModel is the root BubbleTea model for interactive lookup.
type AppModel struct {
	Input     textinput.Model
	Detail    DetailPanel
	Keys      KeyMap
	ActiveTab PageTab
	Width     int
	Height    int

	resolver *resolver.Resolver
	labels   ui.Labeler
	history  *telemetry.Emitter

	current   *catalog.Element
	localized string
	status    string
	kind      statusKind
}

// NewAppModel creates a model showing the welcome text with the input focused.
func NewAppModel(opts Options) AppModel {
	ti := textinput.New()
	ti.Prompt = styleInputPrompt.Render("▸ ")
	ti.Placeholder = ui.Label(opts.Labels, "prompt")
	ti.CharLimit = 64
	ti.Focus()

	w, h := detailSize(80, 24)
	m := AppModel{
		Input:    ti,
		Detail:   NewDetailPanel(w, h),
		Keys:     DefaultKeyMap(),
		resolver: opts.Resolver,
		labels:   opts.Labels,
		history:  opts.History,
	}
	m.Detail.SetEmpty(ui.Label(m.labels, "welcome"))
	return m
}

// Current returns the element being displayed, if any.
func (m AppModel) Current() (catalog.Element, bool) {
	if m.current == nil {
		return catalog.Element{}, false
	}
	return *m.current, true
}

// Status returns the text of the status line.
func (m AppModel) Status() string {
	return m.status
}

// Init starts the cursor blink.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Detail.SetSize(detailSize(msg.Width, msg.Height))
		m.Input.Width = max(msg.Width-8, 10)
		m.render()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Lookup):
		m.lookup()
		return m, nil
	case key.Matches(msg, m.Keys.Clear):
		m.clear()
		return m, nil
	case key.Matches(msg, m.Keys.NextTab):
		m.switchTab(m.ActiveTab.Next())
		return m, nil
	case key.Matches(msg, m.Keys.PrevTab):
		m.switchTab(m.ActiveTab.Prev())
		return m, nil
	case key.Matches(msg, m.Keys.Basic):
		m.switchTab(TabBasic)
		return m, nil
	case key.Matches(msg, m.Keys.Details):
		m.switchTab(TabDetails)
		return m, nil
	case key.Matches(msg, m.Keys.Properties):
		m.switchTab(TabProperties)
		return m, nil
	case key.Matches(msg, m.Keys.ScrollUp), key.Matches(msg, m.Keys.ScrollDown):
		m.Detail.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// lookup resolves the current input and records the attempt to history.
func (m *AppModel) lookup() {
	query := strings.TrimSpace(m.Input.Value())
	if query == "" {
		m.setStatus(statusWarn, ui.Label(m.labels, "empty_query"))
		return
	}

	match, ok := m.resolver.Explain(query)
	rec := telemetry.LookupData{Query: query, Found: ok}
	if !ok {
		m.current = nil
		m.localized = ""
		m.setStatus(statusError, ui.NotFound(m.labels, query))
	} else {
		el := match.Element
		m.current = &el
		m.localized = m.resolver.LocalizedName(el)
		m.ActiveTab = TabBasic
		m.setStatus(statusInfo, el.Symbol+" · "+el.Name+" · "+m.localized)
		rec.Strategy = string(match.Strategy)
		rec.Symbol = el.Symbol
	}
	if err := m.history.Lookup(rec); err != nil {
		m.setStatus(statusError, "history: "+err.Error())
	}
	m.render()
}

// clear resets the input and shows the welcome text.
func (m *AppModel) clear() {
	m.Input.Reset()
	m.current = nil
	m.localized = ""
	m.ActiveTab = TabBasic
	m.setStatus(statusNone, "")
	m.Detail.SetEmpty(ui.Label(m.labels, "welcome"))
}

func (m *AppModel) switchTab(t PageTab) {
	m.ActiveTab = t
	m.render()
}

func (m *AppModel) setStatus(kind statusKind, text string) {
	m.kind = kind
	m.status = text
}

// render refreshes the detail panel for the current state.
func (m *AppModel) render() {
	switch {
	case m.current != nil:
		pages := ui.Pages(*m.current, m.localized, m.labels, []string{m.ActiveTab.Key()})
		if len(pages) == 0 {
			return
		}
		m.Detail.SetContent(pages[0].Title, renderRows(pages[0].Rows, m.Detail.Width()))
	case m.kind == statusError && m.status != "":
		m.Detail.SetContent(m.status, renderHints(ui.Hints(m.labels)))
	default:
		m.Detail.SetEmpty(ui.Label(m.labels, "welcome"))
	}
}

// renderRows lays out label/value rows in two columns, wrapping long values.
func renderRows(rows []ui.Row, width int) string {
	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.Label))
	}
	labelW = min(labelW, labelColumnMax)
	valueW := max(width-labelW-2, 10)

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		valueStyle := styleRowValue
		if r.Value == string(catalog.NotAvailable) {
			valueStyle = styleRowMissing
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			styleRowLabel.Width(labelW).Render(r.Label),
			"  ",
			valueStyle.Width(valueW).Render(r.Value),
		))
	}
	return strings.Join(lines, "\n")
}

func renderHints(hints []string) string {
	lines := make([]string, len(hints))
	for i, h := range hints {
		lines[i] = styleHint.Render("• " + h)
	}
	return strings.Join(lines, "\n")
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}

	sections := []string{
		styleTitleBar.Width(m.Width).Render(ui.Label(m.labels, "welcome")),
		styleInputBox.Width(m.Width - 2).Render(m.Input.View()),
	}

	if m.current != nil {
		tabs := TabBar{ActiveTab: m.ActiveTab, Width: m.Width}
		for i := range tabs.Titles {
			tabs.Titles[i] = ui.Label(m.labels, "page_"+PageTab(i).Key())
		}
		sections = append(sections, tabs.View())
	} else {
		sections = append(sections, "")
	}

	sections = append(sections, m.renderStatus(), m.Detail.View())

	footer := Footer{Width: m.Width, Bindings: FooterBindings(m.Keys)}
	sections = append(sections, footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) renderStatus() string {
	switch m.kind {
	case statusWarn:
		return styleStatusWarn.Render("⚠ " + m.status)
	case statusError:
		return styleStatusError.Render("✗ " + m.status)
	case statusInfo:
		return styleStatusInfo.Render(m.status)
	default:
		return ""
	}
}
