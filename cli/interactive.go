package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"waypointd/cereal"
)

type mainState int

const (
	showMenu mainState = iota
	showWatch
	showRoutes
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list   list.Model
	state  mainState
	watch  watchModel
	routes routesModel
	sub    *cereal.Subscriber[cereal.Trajectory]
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Watch", desc: "Watch the live trajectory output from waypointd", state: showWatch},
		item{title: "Routes", desc: "Pick the route waypointd loads on startup", state: showRoutes},
	}

	listDelegate := list.NewDefaultDelegate()
	sub := cereal.NewSubscriber("trajectory", cereal.TrajectoryReader, true)
	m := uiModel{list: list.New(items, listDelegate, 0, 0), sub: &sub, routes: getRoutesModel()}
	m.list.Title = "Waypointd Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.routes, _ = m.routes.Update(msg, &m)
	case TickMsg:
		m.watch, _ = m.watch.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showWatch:
		m.watch, cmd = m.watch.Update(msg, &m)
	case showRoutes:
		m.routes, cmd = m.routes.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showWatch:
		return m.watch.View()
	case showRoutes:
		return m.routes.View()
	}
	return docStyle.Render(m.list.View())
}

func interactive() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
