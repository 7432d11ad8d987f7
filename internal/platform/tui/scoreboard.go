package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	boardRuns       = 100 // runs loaded per variant
	statsPanelWidth = 24
	statsPanelMinW  = 72 // below this the stats panel moves under the tabs
)

// Medal thresholds, highest first.
var medals = []struct {
	min  int
	name string
}{
	{40, "platinum"},
	{30, "gold"},
	{20, "silver"},
	{10, "bronze"},
}

// medalFor names the medal a run earns, or "" below bronze.
func medalFor(score int) string {
	for _, m := range medals {
		if score >= m.min {
			return m.name
		}
	}
	return ""
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("16")).Background(lipgloss.Color("76")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("34")).Padding(0, 1)
	boardDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardEmptyNote = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// boardKeys are the scoreboard bindings.
type boardKeys struct {
	Scroll  key.Binding
	Variant key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Variant, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Variant: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab/←/→", "variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the recorded runs of one variant at a time.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	current  int

	runs      []storage.ScoreEntry
	stats     *storage.GameStats
	highScore int

	table table.Model
	help  help.Model
	keys  boardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the board on the first registered variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		help:     help.New(),
		keys:     newBoardKeys(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinW
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 14
	if m.wide() {
		// Panel borders, padding and the other columns take the rest.
		dateW = clampInt(m.width-statsPanelWidth-39, 12, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Pipes", Width: 6},
			{Title: "Medal", Width: 9},
			{Title: "Played", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("34")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("220"))
	t.SetStyles(s)
	return t
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// reload reads the selected variant's runs, stats and kept high score.
// Read failures leave an empty board.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.highScore = nil, nil, 0
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if runs, err := m.store.TopScores(id, boardRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
		m.highScore = bestScore(m.store, id)
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			medalFor(r.Score),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shift moves the variant selection by delta, wrapping around.
func (m *ScoreboardModel) shift(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Variant):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.shift(-1)
			default:
				m.shift(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("S C O R E B O A R D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.viewTabs(), m.width))
	b.WriteString("\n\n")

	runs := boardPanelStyle.Render(m.viewRuns())
	if m.wide() {
		stats := boardPanelStyle.Width(statsPanelWidth).Render(m.viewStats())
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, runs, " ", stats), m.width))
	} else {
		b.WriteString(centerText(boardDimStyle.Render(m.statsLine()), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(runs, m.width))
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) viewTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(v.Title)
		} else {
			tabs[i] = boardTabStyle.Render(v.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) viewRuns() string {
	if len(m.runs) == 0 {
		return boardEmptyNote.Render("No rounds recorded yet.\nClear a pipe to get on the board!")
	}
	return m.table.View()
}

func (m ScoreboardModel) viewStats() string {
	rows := [][2]string{{"Best", strconv.Itoa(m.highScore)}}
	if medal := medalFor(m.highScore); medal != "" {
		rows = append(rows, [2]string{"Medal", medal})
	}
	if m.stats != nil && m.stats.GamesCount > 0 {
		rows = append(rows,
			[2]string{"Rounds", strconv.Itoa(m.stats.GamesCount)},
			[2]string{"Average", fmt.Sprintf("%.1f", m.stats.AvgScore)},
			[2]string{"Pipes", strconv.FormatInt(m.stats.TotalScore, 10)},
			[2]string{"Last", m.stats.LastPlayed.Format("Jan 02 15:04")},
		)
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(boardDimStyle.Render(fmt.Sprintf("%-8s", r[0])))
		b.WriteString(" " + r[1])
	}
	return b.String()
}

// statsLine is the one-line summary shown on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return fmt.Sprintf("Best %d", m.highScore)
	}
	return fmt.Sprintf("Best %d | Rounds %d | Avg %.1f",
		m.highScore, m.stats.GamesCount, m.stats.AvgScore)
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the board in its own program. It reports whether the
// user wants to return to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
