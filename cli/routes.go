package cli

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"waypointd/params"
)

type routeItem struct {
	name string
}

func (i routeItem) Title() string       { return i.name }
func (i routeItem) Description() string { return "Set as the active route" }
func (i routeItem) FilterValue() string { return i.name }

type routesModel struct {
	list   list.Model
	status string
}

func (m routesModel) Update(msg tea.Msg, mm *uiModel) (routesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			mm.state = showMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.list.FilterState() != list.Filtering {
			if it, ok := m.list.SelectedItem().(routeItem); ok {
				params.EnsureParamDirectories()
				if err := params.PutParam(params.ACTIVE_ROUTE, []byte(it.name)); err != nil {
					m.status = "could not set active route"
				} else {
					m.status = "active route: " + it.name
				}
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m routesModel) View() string {
	view := m.list.View()
	if m.status != "" {
		view += "\n" + m.status
	}
	return docStyle.Render(view)
}

func getRoutesModel() routesModel {
	items := []list.Item{}
	if store, err := openStore(); err == nil {
		if names, err := store.Names(); err == nil {
			for _, name := range names {
				items = append(items, routeItem{name: name})
			}
		}
		store.Close()
	}

	listDelegate := list.NewDefaultDelegate()
	m := routesModel{list: list.New(items, listDelegate, 0, 0)}
	m.list.Title = "Stored Routes"
	return m
}
