package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"waypointd/cereal"
)

type watchModel struct {
	trajectory cereal.Trajectory
	valid      bool
}

func (m watchModel) Update(msg tea.Msg, mm *uiModel) (watchModel, tea.Cmd) {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.trajectory = out
	}

	return m, nil
}

func (m watchModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for trajectory...\n")
	}
	speeds, err := m.trajectory.Speeds()
	if err != nil || speeds.Len() == 0 {
		return docStyle.Render("empty trajectory\n")
	}
	return docStyle.Render(fmt.Sprintf(
		"closest index: %d\nstop index: %d\npoints: %d\nfirst speed: %f\nlast speed: %f",
		m.trajectory.ClosestIndex(),
		m.trajectory.StopIndex(),
		speeds.Len(),
		speeds.At(0),
		speeds.At(speeds.Len()-1),
	) + "\n")
}
