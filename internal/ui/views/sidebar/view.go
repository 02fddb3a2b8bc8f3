package sidebar

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	wdto "notehub/internal/modules/workspace/dto"
	"notehub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type NotesPort interface {
	Refresh(ctx context.Context) error
	Notes(ctx context.Context) ([]wdto.NoteOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type NotesLoadedMsg struct {
	Notes []wdto.NoteOutput
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type noteItem struct {
	note wdto.NoteOutput
}

func (i noteItem) Title() string       { return i.note.Title }
func (i noteItem) Description() string { return "edited " + relativeTime(i.note.UpdatedAt) }
func (i noteItem) FilterValue() string { return i.note.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    NotesPort
	theme   theme.Theme
	list    list.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port NotesPort, th theme.Theme) Model {
	l := list.New(nil, newDelegate(th), 0, 0)
	l.Title = "Notes"
	l.Styles.Title = th.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(th.Lavender)

	return Model{
		port:    port,
		theme:   th,
		list:    l,
		spinner: sp,
		loading: true,
	}
}

func newDelegate(th theme.Theme) list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(th.Lavender).BorderForeground(th.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(th.Sapphire).BorderForeground(th.Lavender)
	return delegate
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case NotesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Notes — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Notes"
		items := make([]list.Item, len(msg.Notes))
		for i, n := range msg.Notes {
			items[i] = noteItem{note: n}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading notes…")
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(m.list.View())
}

// SelectedNoteID returns the current selection's note id, if any.
func (m Model) SelectedNoteID() (string, bool) {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.ID, true
	}
	return "", false
}

// SelectedNoteTitle returns the current selection's title.
func (m Model) SelectedNoteTitle() string {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.Title
	}
	return ""
}

// Filtering reports whether the list's filter is active, in which case the
// app must yield global key bindings so typing stays in the filter box.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetTheme swaps the sidebar's color variant.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.list.Styles.Title = th.Title
	m.list.SetDelegate(newDelegate(th))
	m.spinner.Style = lipgloss.NewStyle().Foreground(th.Lavender)
}

// Reload refreshes the cache from the repository and re-reads it.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.port.Refresh(ctx); err != nil {
			return NotesLoadedMsg{Err: err}
		}
		notes, err := m.port.Notes(ctx)
		return NotesLoadedMsg{Notes: notes, Err: err}
	}
}

// Reread re-reads the in-memory cache without hitting the repository, for
// cheap updates after local mutations.
func (m Model) Reread() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.port.Notes(context.Background())
		return NotesLoadedMsg{Notes: notes, Err: err}
	}
}

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2 2006")
	}
}
