package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	identitydto "notehub/internal/modules/identity/dto"
	prefsdto "notehub/internal/modules/prefs/dto"
	wdto "notehub/internal/modules/workspace/dto"
	apperrors "notehub/internal/platform/errors"
	"notehub/internal/ui/components"
	"notehub/internal/ui/theme"
	editorview "notehub/internal/ui/views/editor"
	sidebarview "notehub/internal/ui/views/sidebar"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.

type workspacePort interface {
	Refresh(ctx context.Context) error
	Notes(ctx context.Context) ([]wdto.NoteOutput, error)
	Sessions(ctx context.Context) (wdto.SessionListOutput, error)
	Open(ctx context.Context, noteID string) (wdto.SessionOutput, error)
	Close(ctx context.Context, sessionID string) error
	SetActive(ctx context.Context, sessionID string) error
	Edit(ctx context.Context, sessionID, content string) error
	Flush(ctx context.Context, sessionID string) error
	Create(ctx context.Context, title, content string) (wdto.NoteOutput, error)
	Rename(ctx context.Context, noteID, title string) (wdto.NoteOutput, error)
	Delete(ctx context.Context, noteID string) (wdto.DeleteOutput, error)
	Search(ctx context.Context, query string) ([]wdto.NoteOutput, error)
}

type identityPort interface {
	SignOut(ctx context.Context) error
}

type prefsPort interface {
	ToggleVimMode(ctx context.Context) (prefsdto.SettingsOutput, error)
	ToggleDarkMode(ctx context.Context) (prefsdto.SettingsOutput, error)
}

// ─── focus ───────────────────────────────────────────────────────────────────

type focusArea int

const (
	focusSidebar focusArea = iota
	focusEditor
)

// ─── async messages ───────────────────────────────────────────────────────────

type sessionsMsg struct {
	list wdto.SessionListOutput
	err  error
}

type openedMsg struct {
	sess wdto.SessionOutput
	err  error
}

type flushedMsg struct{ err error }

type closedMsg struct{ err error }

type createdMsg struct {
	note wdto.NoteOutput
	err  error
}

type renamedMsg struct {
	note wdto.NoteOutput
	err  error
}

type deletedMsg struct {
	out wdto.DeleteOutput
	err error
}

type searchMsg struct {
	results []wdto.NoteOutput
	err     error
}

type settingsMsg struct {
	settings prefsdto.SettingsOutput
	err      error
}

type exportedMsg struct {
	path string
	err  error
}

type signedOutMsg struct{ err error }

type tickMsg time.Time

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Open    key.Binding
	NewNote key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Save    key.Binding
	Close   key.Binding
	Find    key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open note")),
		NewNote: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save now")),
		Close:   key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		Find:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Find, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.NewNote, k.NextTab, k.PrevTab},
		{k.Save, k.Close, k.Find},
		{k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns focus routing between the
// sidebar and the editor, the search and palette overlays, and the help
// view. All business logic is delegated to port interfaces.
type Model struct {
	workspace workspacePort
	identity  identityPort
	prefs     prefsPort

	sidebar sidebarview.Model
	editor  editorview.Model

	theme    theme.Theme
	settings prefsdto.SettingsOutput
	user     identitydto.UserOutput

	sessions wdto.SessionListOutput
	focus    focusArea
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	finder   components.Finder
	status   string
	width    int
	height   int
}

func NewModel(
	workspace workspacePort,
	identity identityPort,
	prefs prefsPort,
	settings prefsdto.SettingsOutput,
	user identitydto.UserOutput,
) Model {
	th := theme.ForDarkMode(settings.DarkMode)
	return Model{
		workspace: workspace,
		identity:  identity,
		prefs:     prefs,
		sidebar:   sidebarview.New(workspace, th),
		editor:    editorview.New(th, settings.VimMode),
		theme:     th,
		settings:  settings,
		user:      user,
		focus:     focusSidebar,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(th),
		finder:    components.NewFinder(th),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sidebar.Init(), m.tickCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.finder.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case tickMsg:
		// Background write-backs flip dirty flags outside any key event, so
		// the tab row is re-read on a coarse tick.
		return m, tea.Batch(m.readSessionsCmd(), m.tickCmd())

	case sessionsMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.sessions = msg.list
			m.editor.SetSessions(msg.list)
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.status = "open: " + msg.err.Error()
			return m, nil
		}
		m.status = "opened " + msg.sess.Title
		m.focus = focusEditor
		return m, tea.Batch(m.editor.Focus(), m.readSessionsCmd())

	case flushedMsg:
		if msg.err != nil {
			m.status = "save: " + msg.err.Error()
		} else {
			m.status = "saved"
		}
		return m, tea.Batch(m.readSessionsCmd(), m.sidebar.Reread())

	case closedMsg:
		if msg.err != nil {
			m.status = "close: " + msg.err.Error()
		} else {
			m.status = "tab closed"
		}
		return m, tea.Batch(m.readSessionsCmd(), m.sidebar.Reread())

	case createdMsg:
		if msg.err != nil {
			m.status = "new note: " + msg.err.Error()
			return m, nil
		}
		m.status = "created " + msg.note.Title
		return m, tea.Batch(m.openNoteCmd(msg.note.ID), m.sidebar.Reread())

	case renamedMsg:
		if msg.err != nil {
			m.status = "rename: " + msg.err.Error()
			return m, nil
		}
		m.status = "renamed to " + msg.note.Title
		return m, tea.Batch(m.readSessionsCmd(), m.sidebar.Reread())

	case deletedMsg:
		if msg.err != nil {
			m.status = "delete: " + msg.err.Error()
			return m, nil
		}
		m.status = "note deleted"
		if msg.out.SessionClosed {
			m.status = "note deleted, tab closed"
		}
		return m, tea.Batch(m.readSessionsCmd(), m.sidebar.Reread())

	case searchMsg:
		if msg.err != nil {
			m.status = "search: " + msg.err.Error()
		} else {
			m.finder.SetResults(toFinderResults(msg.results))
		}
		return m, nil

	case settingsMsg:
		if msg.err != nil {
			m.status = "settings: " + msg.err.Error()
		} else {
			m.applySettings(msg.settings)
		}
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.status = "export: " + msg.err.Error()
		} else {
			m.status = "exported to " + msg.path
		}
		return m, nil

	case signedOutMsg:
		if msg.err != nil {
			m.status = "sign out: " + msg.err.Error()
			return m, nil
		}
		return m, tea.Quit

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg, components.FinderCancelMsg:
		m.status = "ready"
		return m, nil

	case components.FinderQueryMsg:
		return m, m.searchCmd(msg.Query)

	case components.FinderPickMsg:
		return m, m.openNoteCmd(msg.NoteID)

	case editorview.EditedMsg:
		return m, m.editCmd(msg.SessionID, msg.Content)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (spinner ticks, cursor blinks, load results) fans out
	// to all panes and overlays; each ignores what it does not know.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	cmds = append(cmds, cmd)
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	m.palette, cmd = m.palette.Update(msg)
	cmds = append(cmds, cmd)
	m.finder, cmd = m.finder.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture all keys while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}
	if m.finder.Visible() {
		var cmd tea.Cmd
		m.finder, cmd = m.finder.Update(msg)
		return m, cmd
	}
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	// Yield to the sidebar while its filter is capturing input.
	if m.focus == focusSidebar && m.sidebar.Filtering() {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}

	typing := m.focus == focusEditor && m.editor.InsertMode()

	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		if id := m.editor.ActiveSessionID(); id != "" {
			return m, m.flushCmd(id)
		}
		return m, nil
	case key.Matches(msg, m.keys.Close):
		if id := m.editor.ActiveSessionID(); id != "" {
			return m, m.closeCmd(id)
		}
		return m, nil
	}

	if !typing {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.Find):
			return m, m.finder.Open()
		case key.Matches(msg, m.keys.NewNote) && m.focus == focusSidebar:
			return m, m.palette.OpenWith("new ")
		case key.Matches(msg, m.keys.NextTab):
			return m, m.cycleSession(1)
		case key.Matches(msg, m.keys.PrevTab):
			return m, m.cycleSession(-1)
		case msg.String() == "esc" && m.focus == focusEditor:
			m.focus = focusSidebar
			m.editor.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Open) && m.focus == focusSidebar:
			if id, ok := m.sidebar.SelectedNoteID(); ok {
				return m, m.openNoteCmd(id)
			}
			return m, nil
		}
	}

	// Everything else goes to the focused pane.
	var cmd tea.Cmd
	switch m.focus {
	case focusSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleSession(dir int) tea.Cmd {
	n := len(m.sessions.Sessions)
	if n == 0 {
		return nil
	}
	idx := 0
	for i, sess := range m.sessions.Sessions {
		if sess.ID == m.sessions.ActiveID {
			idx = i
			break
		}
	}
	next := m.sessions.Sessions[(idx+dir+n)%n].ID
	return m.setActiveCmd(next)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	topBar := m.renderTopBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(topBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.finder.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.finder.View())
	default:
		content = m.renderPanes(contentH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, topBar, content, statusBar)
}

func (m Model) renderPanes(contentH int) string {
	sidebarW := m.width * 3 / 10
	if sidebarW < 24 {
		sidebarW = min(24, m.width/2)
	}
	editorW := m.width - sidebarW

	sidebarStyle := m.theme.Pane
	editorStyle := m.theme.Pane
	if m.focus == focusSidebar {
		sidebarStyle = m.theme.PaneActive
	} else {
		editorStyle = m.theme.PaneActive
	}

	sidebarPane := sidebarStyle.Width(sidebarW - 2).Height(contentH - 2).Render(m.sidebar.View())
	editorPane := editorStyle.Width(editorW - 2).Height(contentH - 2).Render(m.editor.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarPane, editorPane)
}

func (m Model) renderTopBar() string {
	title := m.theme.Title.Render("notehub")
	who := m.theme.Muted.Render(m.user.Email)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(who) - 4
	if gap < 1 {
		gap = 1
	}
	bar := "  " + title + strings.Repeat(" ", gap) + who + "  "
	return lipgloss.NewStyle().Background(m.theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if dirty := m.dirtyCount(); dirty > 0 {
		left = m.theme.Dirty.Render("●") + " " + left
	}
	right := m.theme.Muted.Render("?:help  /:search  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(m.theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) dirtyCount() int {
	n := 0
	for _, sess := range m.sessions.Sessions {
		if sess.Dirty {
			n++
		}
	}
	return n
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "new":
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if title == "" {
			m.status = "usage: new <title>"
			return m, nil
		}
		return m, m.createCmd(title)

	case "rename":
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if title == "" {
			m.status = "usage: rename <new title>"
			return m, nil
		}
		noteID, ok := m.targetNoteID()
		if !ok {
			m.status = "no note selected"
			return m, nil
		}
		return m, m.renameCmd(noteID, title)

	case "delete":
		noteID, ok := m.targetNoteID()
		if !ok {
			m.status = "no note selected"
			return m, nil
		}
		return m, m.deleteCmd(noteID)

	case "save":
		if id := m.editor.ActiveSessionID(); id != "" {
			return m, m.flushCmd(id)
		}
		m.status = "no open note"
		return m, nil

	case "close":
		if id := m.editor.ActiveSessionID(); id != "" {
			return m, m.closeCmd(id)
		}
		m.status = "no open note"
		return m, nil

	case "export":
		noteID, ok := m.targetNoteID()
		if !ok {
			m.status = "no note selected"
			return m, nil
		}
		return m, m.exportCmd(noteID)

	case "refresh":
		m.status = "refreshing…"
		return m, tea.Batch(m.sidebar.Reload(), m.readSessionsCmd())

	case "vim":
		return m, m.toggleVimCmd()

	case "theme":
		return m, m.toggleThemeCmd()

	case "signout":
		return m, m.signOutCmd()

	case "quit", "q":
		return m, tea.Quit

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// targetNoteID resolves which note a palette command acts on: the active
// tab's note when the editor has focus, otherwise the sidebar selection.
func (m Model) targetNoteID() (string, bool) {
	if activeID := m.editor.ActiveSessionID(); activeID != "" && m.focus == focusEditor {
		for _, sess := range m.sessions.Sessions {
			if sess.ID == activeID {
				return sess.NoteID, true
			}
		}
	}
	return m.sidebar.SelectedNoteID()
}

func (m *Model) applySettings(settings prefsdto.SettingsOutput) {
	vimChanged := settings.VimMode != m.settings.VimMode
	darkChanged := settings.DarkMode != m.settings.DarkMode
	m.settings = settings
	if vimChanged {
		m.editor.SetVimMode(settings.VimMode)
		if settings.VimMode {
			m.status = "vim mode on"
		} else {
			m.status = "vim mode off"
		}
	}
	if darkChanged {
		m.theme = theme.ForDarkMode(settings.DarkMode)
		m.sidebar.SetTheme(m.theme)
		m.editor.SetTheme(m.theme)
		m.palette.SetTheme(m.theme)
		m.finder.SetTheme(m.theme)
		m.status = "theme switched"
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sidebarW := m.width * 3 / 10
	contentH := m.height - 4
	m.sidebar, _ = m.sidebar.Update(tea.WindowSizeMsg{Width: sidebarW - 4, Height: contentH - 2})
	m.editor, _ = m.editor.Update(tea.WindowSizeMsg{Width: m.width - sidebarW - 4, Height: contentH - 2})
}

func toFinderResults(notes []wdto.NoteOutput) []components.FinderResult {
	results := make([]components.FinderResult, 0, len(notes))
	for _, n := range notes {
		snippet := strings.TrimSpace(n.Content)
		if idx := strings.IndexByte(snippet, '\n'); idx >= 0 {
			snippet = snippet[:idx]
		}
		if len(snippet) > 48 {
			snippet = snippet[:48] + "…"
		}
		results = append(results, components.FinderResult{
			NoteID:  n.ID,
			Title:   n.Title,
			Snippet: snippet,
		})
	}
	return results
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) readSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.workspace.Sessions(context.Background())
		return sessionsMsg{list: list, err: err}
	}
}

func (m Model) openNoteCmd(noteID string) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.workspace.Open(context.Background(), noteID)
		if err == nil {
			err = m.workspace.SetActive(context.Background(), sess.ID)
		}
		return openedMsg{sess: sess, err: err}
	}
}

func (m Model) setActiveCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.workspace.SetActive(context.Background(), sessionID); err != nil {
			return sessionsMsg{err: err}
		}
		list, err := m.workspace.Sessions(context.Background())
		return sessionsMsg{list: list, err: err}
	}
}

func (m Model) editCmd(sessionID, content string) tea.Cmd {
	return func() tea.Msg {
		if err := m.workspace.Edit(context.Background(), sessionID, content); err != nil {
			return sessionsMsg{err: err}
		}
		list, err := m.workspace.Sessions(context.Background())
		return sessionsMsg{list: list, err: err}
	}
}

func (m Model) flushCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		return flushedMsg{err: m.workspace.Flush(context.Background(), sessionID)}
	}
}

func (m Model) closeCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		return closedMsg{err: m.workspace.Close(context.Background(), sessionID)}
	}
}

func (m Model) createCmd(title string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.workspace.Create(context.Background(), title, "")
		return createdMsg{note: note, err: err}
	}
}

func (m Model) renameCmd(noteID, title string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.workspace.Rename(context.Background(), noteID, title)
		return renamedMsg{note: note, err: err}
	}
}

func (m Model) deleteCmd(noteID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.workspace.Delete(context.Background(), noteID)
		return deletedMsg{out: out, err: err}
	}
}

// exportCmd writes the note to <title>.txt in the working directory. An
// open tab exports its working content, unsaved edits included; a note
// without a session exports its persisted content.
func (m Model) exportCmd(noteID string) tea.Cmd {
	title, content := "", ""
	found := false
	for _, sess := range m.sessions.Sessions {
		if sess.NoteID == noteID {
			title, content = sess.Title, sess.WorkingContent
			found = true
			break
		}
	}
	return func() tea.Msg {
		if !found {
			notes, err := m.workspace.Notes(context.Background())
			if err != nil {
				return exportedMsg{err: err}
			}
			for _, n := range notes {
				if n.ID == noteID {
					title, content = n.Title, n.Content
					found = true
					break
				}
			}
		}
		if !found {
			return exportedMsg{err: fmt.Errorf("note %s: %w", noteID, apperrors.ErrNotFound)}
		}
		path := exportFileName(title)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

// exportFileName turns a note title into a safe flat file name.
func exportFileName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "untitled"
	}
	return name + ".txt"
}

func (m Model) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.workspace.Search(context.Background(), query)
		return searchMsg{results: results, err: err}
	}
}

func (m Model) toggleVimCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.prefs.ToggleVimMode(context.Background())
		return settingsMsg{settings: settings, err: err}
	}
}

func (m Model) toggleThemeCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.prefs.ToggleDarkMode(context.Background())
		return settingsMsg{settings: settings, err: err}
	}
}

func (m Model) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		return signedOutMsg{err: m.identity.SignOut(context.Background())}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
