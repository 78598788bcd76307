package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns       = 100 // Max runs to load
	chromeRows    = 9   // Title, stats, borders and help
	minTableWidth = 50
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
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
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best runs of one game.
type ScoreboardModel struct {
	store  *storage.Store
	gameID string
	title  string
	runs   []storage.RunRecord
	stats  *storage.Stats
	err    error
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a scoreboard and loads the runs.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	width := max(minTableWidth, m.width-6)
	dateWidth := min(18, width-46)

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Preset", Width: 8},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: max(12, dateWidth)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-chromeRows)),
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

// load reads runs and stats from the store.
func (m *ScoreboardModel) load() {
	m.err = nil
	m.runs = nil
	m.stats = nil

	if m.store != nil {
		m.runs, m.err = m.store.TopRuns(m.gameID, maxRuns)
		if m.err == nil {
			m.stats, m.err = m.store.Stats(m.gameID)
		}
	}

	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func runRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		preset := r.Difficulty
		if preset == "" {
			preset = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Frames),
			preset,
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("HIGH SCORES - "+m.title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(statsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.err != nil:
		body = emptyStyle.Render("Could not load scores:\n" + m.err.Error())
	case len(m.runs) == 0:
		body = emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}
	b.WriteString(centerText(boxStyle.Render(body), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "no runs"
	}
	return fmt.Sprintf("%d runs  |  best %d  |  avg %.0f  |  %d ticks played",
		m.stats.Runs, m.stats.BestRun, m.stats.AvgScore, m.stats.TotalTicks)
}

// centerText pads every line of s to center it within width.
func centerText(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
