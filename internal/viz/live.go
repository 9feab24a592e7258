package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/MaxUCSD/ddm-simulator/internal/ddm"
)

const (
	graphWidth  = 70
	graphHeight = 12
	// window of trailing samples shown in the trace
	traceWindow = 240
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	decidedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the incremental mode: each tick advances the trial by a
// small batch of steps and re-renders the partial trajectory. The user
// supplies the stop signal; the boundary supplies the other one.
type Model struct {
	sim     *ddm.Simulator
	trial   *ddm.Trial
	batch   int
	fps     int
	running bool
}

func NewModel(sim *ddm.Simulator, batch, fps int) Model {
	if batch <= 0 {
		batch = ddm.DefaultBatch
	}
	if fps <= 0 {
		fps = 30
	}
	return Model{
		sim:     sim,
		trial:   sim.NewTrial(),
		batch:   batch,
		fps:     fps,
		running: true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.trial.Decided {
				m.running = !m.running
			}
		case "r":
			m.trial = m.sim.NewTrial()
			m.running = true
		}
	case TickMsg:
		if m.running && !m.trial.Decided {
			m.sim.StepN(m.trial, m.batch)
			if m.trial.Decided {
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) status() string {
	switch {
	case m.trial.Decided:
		return decidedStyle.Render(fmt.Sprintf("DECIDED %s @ %.2fs", strings.ToUpper(m.trial.Boundary.String()), m.trial.DecisionTime))
	case m.running:
		return runningStyle.Render("RUNNING")
	default:
		return pausedStyle.Render("PAUSED")
	}
}

func (m Model) View() string {
	p := m.sim.Params()

	var s strings.Builder
	s.WriteString(headerStyle.Render("DRIFT DIFFUSION") + "\n")
	s.WriteString(m.status() + "\n")

	trace := m.trial.Evidences
	if len(trace) > traceWindow {
		trace = trace[len(trace)-traceWindow:]
	}
	if len(trace) > 1 {
		chart := asciigraph.Plot(trace,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("evidence"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.trial.Time)) + "\n")
	s.WriteString(labelStyle.Render("Evidence") + valueStyle.Render(fmt.Sprintf("%+.4f", m.trial.Evidence)) + "\n")
	s.WriteString(labelStyle.Render("Boundaries") + valueStyle.Render(fmt.Sprintf("±%.2f", p.Threshold)) + "\n")
	s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%.2f", p.DriftRate)) + "\n")
	s.WriteString(labelStyle.Render("Noise") + valueStyle.Render(fmt.Sprintf("%.2f", p.NoiseScale)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.trial.Steps())) + "\n")

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit"))
	return s.String()
}
