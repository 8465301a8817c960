package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hashicorp/go-hclog"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/sim"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColSource  = rl.NewColor(255, 255, 255, 255)
	ColRing    = rl.NewColor(255, 255, 255, 90)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

// trailAlpha is the fixed opacity of every trail segment.
const trailAlpha = 90

type App struct {
	Sim    *sim.Simulation
	Window config.WindowConfig
	ShowUI bool
	log    hclog.Logger
}

func NewApp(s *sim.Simulation, win config.WindowConfig, log hclog.Logger) *App {
	return &App{
		Sim:    s,
		Window: win,
		ShowUI: true,
		log:    log.Named("gui"),
	}
}

// initWindow opens the window and caps the frame rate. Escape stays the
// raylib exit key, so WindowShouldClose covers both the close button and
// Escape.
func initWindow(win config.WindowConfig) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	rl.SetTargetFPS(int32(win.FPS))
	rl.SetExitKey(rl.KeyEscape)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(s *sim.Simulation, win config.WindowConfig, log hclog.Logger) {
	initWindow(win)
	defer rl.CloseWindow()

	app := NewApp(s, win, log)
	app.log.Info("window open", "width", win.Width, "height", win.Height, "fps", win.FPS)
	app.RunLoop()
	app.log.Info("window closed", "frames", s.Frame())
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.Sim.Step()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawTrails()
	a.drawSources()
	a.drawParticles()
	if a.ShowUI {
		a.drawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	st := a.Sim.Stats()
	h := int32(a.Window.Height)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 20, h-30, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("frame %d  free %d  circling %d  dead %d",
		a.Sim.Frame(), st.Free, st.Circling, st.Dead), 20, 20, 16, ColText)
}
