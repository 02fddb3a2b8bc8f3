package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notehub/internal/ui/theme"
)

// FinderQueryMsg asks the app to run a search for the current query.
type FinderQueryMsg struct{ Query string }

// FinderPickMsg is emitted when the user picks a result.
type FinderPickMsg struct{ NoteID string }

// FinderCancelMsg is emitted when the user presses esc.
type FinderCancelMsg struct{}

// FinderResult is one search hit shown in the overlay.
type FinderResult struct {
	NoteID  string
	Title   string
	Snippet string
}

const maxFinderResults = 8

// Finder is a live-search overlay: every keystroke re-queries, arrow keys
// move the selection, enter opens the note.
type Finder struct {
	theme    theme.Theme
	input    textinput.Model
	results  []FinderResult
	selected int
	visible  bool
	width    int
}

func NewFinder(th theme.Theme) Finder {
	ti := textinput.New()
	ti.Placeholder = "search titles and content…"
	ti.CharLimit = 256
	return Finder{theme: th, input: ti}
}

func (f Finder) Visible() bool { return f.visible }

// Open shows the finder and immediately queries with the empty string so
// the overlay starts with the full collection listed.
func (f *Finder) Open() tea.Cmd {
	f.visible = true
	f.input.SetValue("")
	f.results = nil
	f.selected = 0
	focus := f.input.Focus()
	return tea.Batch(focus, func() tea.Msg { return FinderQueryMsg{} })
}

func (f *Finder) SetWidth(w int) { f.width = w }

func (f *Finder) SetTheme(th theme.Theme) { f.theme = th }

// SetResults replaces the hits; the selection is clamped, not reset, so the
// cursor survives a re-query.
func (f *Finder) SetResults(results []FinderResult) {
	if len(results) > maxFinderResults {
		results = results[:maxFinderResults]
	}
	f.results = results
	if f.selected >= len(results) {
		f.selected = 0
	}
}

func (f Finder) Update(msg tea.Msg) (Finder, tea.Cmd) {
	if !f.visible {
		return f, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			f.visible = false
			f.input.Blur()
			return f, func() tea.Msg { return FinderCancelMsg{} }
		case "up", "ctrl+p":
			if f.selected > 0 {
				f.selected--
			}
			return f, nil
		case "down", "ctrl+n":
			if f.selected < len(f.results)-1 {
				f.selected++
			}
			return f, nil
		case "enter":
			if f.selected < len(f.results) {
				noteID := f.results[f.selected].NoteID
				f.visible = false
				f.input.Blur()
				return f, func() tea.Msg { return FinderPickMsg{NoteID: noteID} }
			}
			return f, nil
		}
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if query := f.input.Value(); query != before {
		return f, tea.Batch(cmd, func() tea.Msg { return FinderQueryMsg{Query: query} })
	}
	return f, cmd
}

func (f Finder) View() string {
	if !f.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(f.theme.Title.Render("Search") + "\n")
	sb.WriteString("/ " + f.input.View() + "\n")

	if len(f.results) == 0 {
		sb.WriteString("\n" + f.theme.Muted.Render("  no matches"))
	} else {
		sb.WriteString("\n")
		for i, res := range f.results {
			line := res.Title
			if res.Snippet != "" {
				line += f.theme.Muted.Render("  " + res.Snippet)
			}
			if i == f.selected {
				sb.WriteString(f.theme.Hot.Render("▸ ") + line + "\n")
			} else {
				sb.WriteString("  " + line + "\n")
			}
		}
	}

	w := f.width
	if w < 20 {
		w = 64
	}
	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(f.theme.Sapphire).
		Background(f.theme.Mantle).
		Foreground(f.theme.Text).
		Padding(0, 1)
	return frame.Width(w - 2).Render(sb.String())
}
