package compose

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/services"
	"github.com/thomas-vilte/commitsmith/internal/warnings"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type outcome int

const (
	outcomePending outcome = iota
	outcomeCommit
	outcomeAbort
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Dismiss    key.Binding
	DismissAll key.Binding
	Permanent  key.Binding
	Undo       key.Binding
	Commit     key.Binding
	Abort      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dismiss, k.DismissAll, k.Permanent, k.Undo, k.Commit, k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dismiss"),
	),
	DismissAll: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "dismiss all"),
	),
	Permanent: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "dismiss pattern permanently"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Commit: key.NewBinding(
		key.WithKeys("c", "enter"),
		key.WithHelp("c", "commit"),
	),
	Abort: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "abort"),
	),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	severityStyle = map[models.Severity]lipgloss.Style{
		models.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// reviewModel walks the user through the active warnings before committing.
// Every mutation goes through the warning manager; the item list is re-read
// from it after each action so both stay in sync.
type reviewModel struct {
	message string
	result  models.ValidationResult
	service *services.ReviewService
	trans   *i18n.Translations

	keys    keyMap
	help    help.Model
	items   []models.PatternMatch
	cursor  int
	history []warnings.Snapshot
	outcome outcome
}

func newReviewModel(message string, result models.ValidationResult, service *services.ReviewService, t *i18n.Translations) reviewModel {
	return reviewModel{
		message: message,
		result:  result,
		service: service,
		trans:   t,
		keys:    defaultKeyMap,
		help:    help.New(),
		items:   service.ActiveWarnings(),
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Dismiss):
		if len(m.items) > 0 {
			m.pushSnapshot()
			m.service.Manager().DismissWarning(m.items[m.cursor].PatternID)
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.DismissAll):
		if len(m.items) > 0 {
			m.pushSnapshot()
			m.service.Manager().DismissAllWarnings()
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Permanent):
		if len(m.items) > 0 {
			m.pushSnapshot()
			m.service.Manager().PersistentlyDismissPattern(m.items[m.cursor].PatternID)
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Undo):
		if n := len(m.history); n > 0 {
			m.service.Manager().RestoreSnapshot(m.history[n-1])
			m.history = m.history[:n-1]
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Commit):
		m.outcome = outcomeCommit
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Abort):
		m.outcome = outcomeAbort
		return m, tea.Quit
	}
	return m, nil
}

func (m *reviewModel) pushSnapshot() {
	m.history = append(m.history, m.service.Manager().CreateSnapshot())
}

func (m *reviewModel) refresh() {
	m.items = m.service.ActiveWarnings()
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m reviewModel) View() string {
	if m.outcome != outcomePending {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Review warnings"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(firstLine(m.message)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("No warnings left."))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		badge := severityStyle[item.Severity].Render(strings.ToUpper(string(item.Severity)))
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, badge, item.Name, dimStyle.Render("["+item.PatternID+"]")))
		if i == m.cursor && item.Suggestion != "" {
			b.WriteString(dimStyle.Render("     " + item.Suggestion))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
