// Package tui is the live terminal view: it steps a scene at a fixed frame
// rate and graphs the overlapping-pair count as it evolves.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zeunio/reactphysics3d/internal/scene"
	"github.com/zeunio/reactphysics3d/internal/viz"
)

const historyCapacity = 600

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	scene   *scene.Scene
	dt      float64
	fps     int
	history []float64
	step    int
	width   int
	paused  bool
}

func NewModel(s *scene.Scene, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		scene:   s,
		dt:      dt,
		fps:     fps,
		history: make([]float64, 0, historyCapacity),
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case TickMsg:
		if !m.paused {
			m.scene.Step(m.dt)
			m.step++
			m.history = append(m.history, float64(m.scene.Pairs().PairCount()))
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	stats := m.scene.Pairs().Stats()

	header := titleStyle.Render(fmt.Sprintf(
		"broadsim live  step %d  pairs %d  table %d  chain %d",
		m.step, stats.PairCount, stats.TableSize, stats.LongestChain,
	))

	graphWidth := m.width - 12
	if graphWidth < 20 {
		graphWidth = 20
	}

	view := header + "\n"
	if len(m.history) > 1 {
		view += viz.PlotCounts(m.history, graphWidth, 12) + "\n"
	}
	view += viz.RenderChains(stats)
	view += helpStyle.Render("space pause · q quit")
	return view
}

// Run steps the scene live until the user quits.
func Run(s *scene.Scene, dt float64, fps int) error {
	p := tea.NewProgram(NewModel(s, dt, fps))
	_, err := p.Run()
	return err
}
