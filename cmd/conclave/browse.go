package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-conclave/pkg/pipeline"
)

type keyMap struct {
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
	Up    key.Binding
	Down  key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "members"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Enter, k.Back, k.Quit}}
}

// browser lists communities and, on enter, the members of the selected one
type browser struct {
	result      *pipeline.Result
	communities table.Model
	members     table.Model
	showMembers bool
	selected    int
	help        help.Model
	keys        keyMap
}

func styledTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func newBrowser(result *pipeline.Result) browser {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Size", Width: 6},
		{Title: "Density", Width: 8},
		{Title: "Internal", Width: 9},
		{Title: "Countries", Width: 9},
		{Title: "Avg age", Width: 8},
		{Title: "CB", Width: 4},
	}

	rows := make([]table.Row, 0, len(result.Stats))
	for _, s := range result.Stats.Rows() {
		rows = append(rows, table.Row{
			fmt.Sprint(s.ID),
			fmt.Sprint(s.Size),
			formatMetric(s.Density),
			formatMetric(s.InternalRatio),
			fmt.Sprint(s.Countries),
			fmt.Sprintf("%.1f", s.AvgAge),
			fmt.Sprint(s.CBCount),
		})
	}

	return browser{
		result:      result,
		communities: styledTable(columns, rows),
		help:        help.New(),
		keys:        keys,
	}
}

func (b browser) memberTable(id int) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Country", Width: 16},
		{Title: "Continent", Width: 14},
		{Title: "Order", Width: 6},
		{Title: "Age", Width: 4},
		{Title: "Weight", Width: 7},
	}

	g := b.result.Graph
	var rows []table.Row
	for _, i := range b.result.Detection.Partition.Members()[id] {
		n := g.Node(i)
		rows = append(rows, table.Row{
			n.Cardinal.Name,
			n.Cardinal.Country,
			n.Cardinal.Continent,
			n.Cardinal.Order,
			fmt.Sprint(n.Cardinal.Age),
			fmt.Sprint(n.Weight),
		})
	}
	return styledTable(columns, rows)
}

func (b browser) Init() tea.Cmd {
	return nil
}

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit

		case key.Matches(msg, b.keys.Enter):
			if !b.showMembers && len(b.result.Stats) > 0 {
				b.selected = b.communities.Cursor()
				b.members = b.memberTable(b.selected)
				b.showMembers = true
				return b, nil
			}

		case key.Matches(msg, b.keys.Back):
			if b.showMembers {
				b.showMembers = false
				return b, nil
			}
		}
	}

	if b.showMembers {
		b.members, cmd = b.members.Update(msg)
	} else {
		b.communities, cmd = b.communities.Update(msg)
	}
	return b, cmd
}

func (b browser) View() string {
	var s strings.Builder

	if b.showMembers {
		s.WriteString(titleStyle.Render(fmt.Sprintf("Community %d", b.selected)))
		s.WriteString("\n")
		s.WriteString(b.members.View())
	} else {
		s.WriteString(titleStyle.Render(fmt.Sprintf("%d communities, modularity %s",
			b.result.Detection.Partition.Count(), formatMetric(b.result.Detection.Modularity))))
		s.WriteString("\n")
		s.WriteString(b.communities.View())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(b.help.ShortHelpView(b.keys.ShortHelp())))
	return s.String()
}
