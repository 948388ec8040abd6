package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typestorm/internal/storage"
)

const maxHistoryRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "bests/history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scores screen: a table of
// best scores per language and difficulty, with a toggleable session
// history view.
type ScoreboardModel struct {
	bests       []storage.BestEntry
	history     []storage.SessionEntry
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	showHistory bool
	quitting    bool
	err         error
}

// NewScoreboardModel loads scores from the store and builds the model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys: DefaultScoreboardKeyMap(),
		help: help.New(),
	}

	var err error
	m.bests, err = store.AllBests()
	if err != nil {
		m.err = err
		return m
	}
	m.history, err = store.RecentSessions(maxHistoryRows)
	if err != nil {
		m.err = err
		return m
	}

	m.table = m.buildTable(height)
	return m
}

func (m *ScoreboardModel) buildTable(height int) table.Model {
	var columns []table.Column
	var rows []table.Row

	if m.showHistory {
		columns = []table.Column{
			{Title: "WHEN", Width: 17},
			{Title: "LANGUAGE", Width: 10},
			{Title: "MODE", Width: 7},
			{Title: "SCORE", Width: 6},
			{Title: "ACC", Width: 5},
			{Title: "TIME", Width: 6},
		}
		for _, e := range m.history {
			acc := "-"
			if e.Shots > 0 {
				acc = fmt.Sprintf("%d%%", 100*e.Hits/e.Shots)
			}
			rows = append(rows, table.Row{
				e.CreatedAt.Format("2006-01-02 15:04"),
				e.Language,
				e.Difficulty,
				fmt.Sprintf("%d", e.Score),
				acc,
				fmt.Sprintf("%ds", int(e.Duration/6)),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "LANGUAGE", Width: 12},
			{Title: "MODE", Width: 8},
			{Title: "BEST", Width: 8},
			{Title: "UPDATED", Width: 17},
		}
		for _, e := range m.bests {
			rows = append(rows, table.Row{
				e.Language,
				e.Difficulty,
				fmt.Sprintf("%d", e.Score),
				e.UpdatedAt.Format("2006-01-02 15:04"),
			})
		}
	}

	visible := height - 6
	if visible < 3 {
		visible = 3
	}
	if visible > len(rows)+1 {
		visible = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(visible),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.showHistory = !m.showHistory
			m.table = m.buildTable(m.table.Height() + 6)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("cannot load scores: %v\n", m.err)
	}

	title := "BEST SCORES"
	if m.showHistory {
		title = "RECENT SESSIONS"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).MarginBottom(1)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the scoreboard and blocks until the user exits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, width, height))
	_, err := p.Run()
	return err
}
