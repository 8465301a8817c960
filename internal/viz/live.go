package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/hashicorp/go-hclog"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/trail"
)

const (
	canvasCols      = 80
	canvasRows      = 24
	historyCapacity = 120
	sidePanelWidth  = 45
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(sidePanelWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model steps a simulation once per tick and renders it.
type Model struct {
	sim      *sim.Simulation
	world    config.WindowConfig
	name     string
	canvas   *Canvas
	fps      int
	running  bool
	showHelp bool
	alive    *trail.Ring[float64]
	log      hclog.Logger
}

// NewModel wraps s. world gives the coordinate extent projected onto the
// canvas; fps <= 0 falls back to world.FPS, then to 60.
func NewModel(s *sim.Simulation, name string, world config.WindowConfig, fps int, log hclog.Logger) Model {
	if fps <= 0 {
		fps = world.FPS
	}
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	m := Model{
		sim:     s,
		world:   world,
		name:    name,
		canvas:  NewCanvas(canvasCols, canvasRows),
		fps:     fps,
		running: true,
		alive:   trail.NewRing[float64](historyCapacity),
		log:     log.Named("viz"),
	}
	m.record()
	return m
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
		case "q", "ctrl+c", "esc":
			m.log.Info("terminal view closed", "frames", m.sim.Frame())
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			if !m.running {
				m.step()
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		cols := msg.Width - sidePanelWidth - 8
		rows := msg.Height - 4
		if cols > 10 && rows > 5 {
			m.canvas = NewCanvas(cols, rows)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.sim.Step()
	m.record()
}

func (m *Model) record() {
	m.alive.Push(float64(m.sim.Stats().Alive()))
}

// Running reports whether ticks advance the simulation.
func (m Model) Running() bool { return m.running }

// project maps window coordinates onto canvas dots.
func (m *Model) project(p dynamo.Vec2) (int, int) {
	cw, ch := m.canvas.DotSize()
	x := p.X / float64(m.world.Width) * float64(cw)
	y := p.Y / float64(m.world.Height) * float64(ch)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (m *Model) scale(r float64) int {
	cw, _ := m.canvas.DotSize()
	return int(math.Round(r / float64(m.world.Width) * float64(cw)))
}

func (m *Model) draw() {
	m.canvas.Clear()
	capture := m.sim.Rules().Capture
	for _, src := range m.sim.Sources() {
		cx, cy := m.project(src.Center())
		m.canvas.DrawCircle(cx, cy, m.scale(src.Radius()), true)
		if capture {
			m.canvas.DrawCircle(cx, cy, m.scale(src.CaptureRadius()), false)
		}
	}
	for _, p := range m.sim.Particles() {
		if !p.Alive() {
			continue
		}
		if tr := p.Trail(); tr != nil && tr.Len() > 1 {
			px, py := m.project(tr.At(0))
			tr.Do(func(_ int, v dynamo.Vec2) {
				x, y := m.project(v)
				m.canvas.DrawLine(px, py, x, y)
				px, py = x, y
			})
		}
		x, y := m.project(p.Center())
		m.canvas.Set(x, y)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if hist := m.alive.Slice(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Alive"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	st := m.sim.Stats()
	rules := m.sim.Rules()
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Frame())) + "\n")
	s.WriteString(labelStyle.Render("Free") + valueStyle.Render(fmt.Sprintf("%d", st.Free)) + "\n")
	s.WriteString(labelStyle.Render("Circling") + valueStyle.Render(fmt.Sprintf("%d", st.Circling)) + "\n")
	s.WriteString(labelStyle.Render("Dead") + valueStyle.Render(fmt.Sprintf("%d", st.Dead)) + "\n")
	s.WriteString(labelStyle.Render("Sources") + valueStyle.Render(fmt.Sprintf("%d", len(m.sim.Sources()))) + "\n")
	s.WriteString(labelStyle.Render("Integrator") + valueStyle.Render(rules.Integrator.Name()) + "\n")
	s.WriteString(labelStyle.Render("Capture") + valueStyle.Render(fmt.Sprintf("%t", rules.Capture)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause S:Step Q:Quit ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  S        - Single step (paused)     ║
║  Esc/Q    - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the terminal view on the alternate screen and blocks until
// the user quits.
func Run(s *sim.Simulation, name string, world config.WindowConfig, fps int, log hclog.Logger) error {
	m := NewModel(s, name, world, fps, log)
	m.log.Info("terminal view open", "fps", m.fps)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal view: %w", err)
	}
	return nil
}
