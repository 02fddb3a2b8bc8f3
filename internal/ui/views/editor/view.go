package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	wdto "notehub/internal/modules/workspace/dto"
	"notehub/internal/ui/theme"
)

// EditedMsg reports that the buffer content changed and must be pushed to
// the session identified by SessionID.
type EditedMsg struct {
	SessionID string
	Content   string
}

// Model renders the open sessions as a tab row over a textarea bound to the
// active session. A minimal modal layer (normal/insert) is available when
// vim mode is enabled.
type Model struct {
	theme     theme.Theme
	area      textarea.Model
	sessions  []wdto.SessionOutput
	activeID  string
	vimMode   bool
	vimNormal bool
	width     int
	height    int
}

func New(th theme.Theme, vimMode bool) Model {
	ta := textarea.New()
	ta.Placeholder = "start typing…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	return Model{
		theme:     th,
		area:      ta,
		vimMode:   vimMode,
		vimNormal: vimMode,
	}
}

// SetSessions replaces the tab row. When the active session changed, the
// buffer is re-seeded from its working content; otherwise the buffer is the
// source of truth and is left alone so typing never gets clobbered by a
// concurrent refresh.
func (m *Model) SetSessions(list wdto.SessionListOutput) {
	m.sessions = list.Sessions
	if list.ActiveID == m.activeID {
		return
	}
	m.activeID = list.ActiveID
	for _, sess := range m.sessions {
		if sess.ID == m.activeID {
			m.area.SetValue(sess.WorkingContent)
			m.area.CursorEnd()
			return
		}
	}
	m.area.SetValue("")
}

func (m Model) ActiveSessionID() string { return m.activeID }

func (m *Model) Focus() tea.Cmd {
	if m.vimMode {
		m.vimNormal = true
		return nil
	}
	return m.area.Focus()
}

func (m *Model) Blur() { m.area.Blur() }

func (m *Model) SetVimMode(on bool) {
	m.vimMode = on
	m.vimNormal = on
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// InsertMode reports whether plain keystrokes currently go into the buffer,
// so the app knows to yield global single-key bindings.
func (m Model) InsertMode() bool {
	return m.area.Focused()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.area.SetWidth(m.width - 2)
		m.area.SetHeight(m.height - 2)
		return m, nil

	case tea.KeyMsg:
		if m.activeID == "" {
			return m, nil
		}
		if m.vimMode {
			return m.updateVim(msg)
		}
		return m.updateArea(msg)
	}

	// Cursor blinks and other component messages pass straight through.
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m Model) updateVim(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.vimNormal {
		switch msg.String() {
		case "i":
			m.vimNormal = false
			return m, m.area.Focus()
		case "h":
			m.area.SetCursor(m.area.LineInfo().ColumnOffset - 1)
		case "l":
			m.area.SetCursor(m.area.LineInfo().ColumnOffset + 1)
		case "j":
			m.area.CursorDown()
		case "k":
			m.area.CursorUp()
		case "0":
			m.area.CursorStart()
		case "$":
			m.area.CursorEnd()
		case "G":
			// textarea exposes no move-to-end method; walk to the last line.
			for m.area.Line() < m.area.LineCount()-1 {
				m.area.CursorDown()
			}
			m.area.CursorEnd()
		}
		return m, nil
	}
	if msg.String() == "esc" {
		m.vimNormal = true
		m.area.Blur()
		return m, nil
	}
	return m.updateArea(msg)
}

func (m Model) updateArea(msg tea.KeyMsg) (Model, tea.Cmd) {
	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if content := m.area.Value(); content != before {
		sessionID := m.activeID
		return m, tea.Batch(cmd, func() tea.Msg {
			return EditedMsg{SessionID: sessionID, Content: content}
		})
	}
	return m, cmd
}

func (m Model) View() string {
	tabRow := m.renderTabRow()
	if m.activeID == "" {
		placeholder := m.theme.Muted.Render("No open notes — press enter on a note, or n for a new one")
		body := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, placeholder)
		return lipgloss.JoinVertical(lipgloss.Left, tabRow, body)
	}
	body := lipgloss.NewStyle().Padding(0, 1).Render(m.area.View())
	return lipgloss.JoinVertical(lipgloss.Left, tabRow, body)
}

func (m Model) renderTabRow() string {
	if len(m.sessions) == 0 {
		return lipgloss.NewStyle().Background(m.theme.Mantle).Width(m.width).
			Render(m.theme.Muted.Render(" no open notes "))
	}
	parts := make([]string, 0, len(m.sessions))
	for _, sess := range m.sessions {
		label := sess.Title
		if label == "" {
			label = "untitled"
		}
		if sess.Dirty {
			label = "● " + label
		}
		if sess.ID == m.activeID {
			parts = append(parts, m.theme.Hot.Render(" "+label+" "))
		} else if sess.Dirty {
			parts = append(parts, m.theme.Dirty.Render(" "+label+" "))
		} else {
			parts = append(parts, m.theme.Muted.Render(" "+label+" "))
		}
	}
	sep := m.theme.Muted.Render("│")
	row := strings.Join(parts, sep)
	if m.vimMode {
		mode := " INSERT "
		if m.vimNormal {
			mode = " NORMAL "
		}
		row += "  " + m.theme.Title.Render(mode)
	}
	return lipgloss.NewStyle().Background(m.theme.Mantle).Width(m.width).Render(row)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
