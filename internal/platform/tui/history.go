package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// MaxHistory is the number of games loaded into the history view.
const MaxHistory = 100

// HistorySource lists journaled games, newest first.
type HistorySource interface {
	RecentGames(player string, limit int) ([]storage.GameRecord, error)
	GameCount(player string) (int, error)
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultHistoryKeyMap returns the default history bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the finished-games list.
type HistoryModel struct {
	source   HistorySource
	player   string // Empty lists every player
	games    []storage.GameRecord
	total    int // Games in the journal, loaded or not
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history view and loads the journal.
func NewHistoryModel(source HistorySource, player string, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		player: player,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Pieces", Width: 7},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Header, summary, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the journal and refreshes the table.
func (m *HistoryModel) load() {
	m.games, m.total, m.loadErr = nil, 0, nil
	if m.source != nil {
		m.games, m.loadErr = m.source.RecentGames(m.player, MaxHistory)
		if m.loadErr == nil {
			m.total, m.loadErr = m.source.GameCount(m.player)
		}
	}
	m.table.SetRows(HistoryRows(m.games))
	m.table.GotoTop()
}

// HistoryRows formats games as table rows.
func HistoryRows(games []storage.GameRecord) []table.Row {
	rows := make([]table.Row, len(games))
	for i, g := range games {
		rows[i] = table.Row{
			g.CreatedAt.Local().Format("Jan 02 15:04"),
			g.Player,
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.Lines),
			fmt.Sprintf("%d", g.Level),
			fmt.Sprintf("%d", g.Pieces),
			formatDuration(g.Duration),
		}
	}
	return rows
}

// formatDuration renders a play time as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.games))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RECENT GAMES"
	if m.player != "" {
		title = fmt.Sprintf("RECENT GAMES - %s", m.player)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.summary()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table or a notice.
func (m HistoryModel) tableContent() string {
	notice := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return notice.Render("Could not read history:\n" + m.loadErr.Error())
	case len(m.games) == 0:
		return notice.Render("No games recorded yet.\nFinished games show up here.")
	}
	return m.table.View()
}

// summary describes the loaded games in one line.
func (m HistoryModel) summary() string {
	lines := 0
	var played time.Duration
	for _, g := range m.games {
		lines += g.Lines
		played += g.Duration
	}
	return fmt.Sprintf("showing %d of %d games, %d lines, %s played",
		len(m.games), m.total, lines, formatDuration(played))
}

// centerText pads s so it is centered within width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunHistory runs the history screen.
func RunHistory(source HistorySource, player string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
