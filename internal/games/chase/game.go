package chase

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/core"
)

// Game wraps a Session with the controls around it: pause while playing,
// restart or terminate once the session has ended, and the frame rate the
// platform should tick at.
type Game struct {
	layout  Layout
	opts    SessionOptions
	session *Session
	runtime core.RuntimeConfig

	paused     bool
	terminated bool
	rounds     int
}

// New validates layout by building the first session.
func New(layout Layout, opts SessionOptions) (*Game, error) {
	g := &Game{
		layout:  layout,
		opts:    opts,
		runtime: core.DefaultConfig(),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Reset discards the current session and starts a new one sized for cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.terminated = false
	if err := g.restart(); err != nil {
		// The layout already produced a session in New.
		g.logger().Error("restart failed", "err", err)
	}
}

// Resize updates the terminal size used for rendering.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

func (g *Game) restart() error {
	s, err := NewSession(g.layout, g.opts)
	if err != nil {
		return err
	}
	g.session = s
	g.paused = false
	g.rounds++
	return nil
}

func (g *Game) logger() *log.Logger {
	return g.session.logger
}

// Step processes one frame of input. While playing it advances the session by
// one tick; on the end screen it only looks for restart or terminate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.terminated {
		return g.result(0)
	}

	if g.session.State() != StatePlaying {
		switch {
		case in.Has(core.ActionTerminate):
			g.terminated = true
		case in.Has(core.ActionRestart):
			if err := g.restart(); err != nil {
				g.logger().Error("restart failed", "err", err)
			}
		}
		return g.result(0)
	}

	// Key edges are applied even while paused so held keys stay balanced.
	for _, k := range in.Keys {
		if k.Pressed {
			g.session.Press(k.Dir)
		} else {
			g.session.Release(k.Dir)
		}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(0)
	}

	rep := g.session.Step()
	return g.result(rep.Collected)
}

func (g *Game) result(collected int) core.StepResult {
	return core.StepResult{
		State:     g.State(),
		Collected: collected,
		TickRate:  g.TickRate(),
	}
}

// TickRate returns the frame rate for the current state: the simulation rate
// while playing, the faster polling rate on the end screen.
func (g *Game) TickRate() int {
	if g.session.State() == StatePlaying {
		return g.layout.TickRate
	}
	return g.layout.EndTickRate
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:      g.session.Score(),
		Total:      g.session.Total(),
		GameOver:   st != StatePlaying,
		Won:        st == StateWon,
		Paused:     g.paused,
		Terminated: g.terminated,
	}
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.session
}

// Layout returns the layout sessions are built from.
func (g *Game) Layout() Layout {
	return g.layout
}

// Rounds returns how many sessions have been started.
func (g *Game) Rounds() int {
	return g.rounds
}

// Render draws the HUD, the board and any overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	bw, bh := BoardSize(g.layout, g.session.Maze())
	if dst.Width() < bw || dst.Height() < bh+hudHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", bw, bh+hudHeight))
		return
	}

	ox := (dst.Width() - bw) / 2
	g.drawHUD(dst, ox, bw)
	DrawBoard(dst, g.session, g.layout, ox, hudHeight)

	switch {
	case g.session.State() == StateWon:
		g.drawEnd(dst, "Congratulations, you won!", core.ColorBrightYellow)
	case g.session.State() == StateLost:
		g.drawEnd(dst, "Game Over", core.ColorBrightRed)
	case g.paused:
		drawPanel(dst, []panelLine{
			{"PAUSED", core.ColorBrightWhite},
			{"Press P to resume", core.ColorGray},
			{"Press ESC for the menu", core.ColorGray},
		})
	}
}

func (g *Game) drawHUD(dst *core.Screen, ox, bw int) {
	dst.DrawTextColored(ox, 0, fmt.Sprintf("Score: %d/%d", g.session.Score(), g.session.Total()), core.ColorBrightWhite)
	if name := g.session.Username(); name != "" {
		dst.DrawTextColored(ox+bw-len([]rune(name)), 0, name, core.ColorCyan)
	}
}

func (g *Game) drawEnd(dst *core.Screen, title string, c core.Color) {
	drawPanel(dst, []panelLine{
		{title, c},
		{fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightWhite},
		{"", core.ColorDefault},
		{"To play again, press ENTER.", core.ColorDefault},
		{"To quit, press ESCAPE.", core.ColorDefault},
	})
}
