// Package window provides a desktop frontend built on Ebitengine. It draws
// the scene at its native pixel size and feeds the real mouse cursor to
// the game.
package window

import (
	"context"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/scene"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// app adapts a breakout.Game to ebiten.Game.
type app struct {
	ctx    context.Context
	game   *breakout.Game
	events *core.EventQueue

	width, height float64
	cursorX       int
	cursorY       int
	text          map[string]*ebiten.Image
}

func newApp(ctx context.Context, game *breakout.Game) *app {
	w, h := game.Surface().Size()
	return &app{
		ctx:     ctx,
		game:    game,
		events:  core.NewEventQueue(),
		width:   w,
		height:  h,
		cursorX: -1,
		cursorY: -1,
		text:    make(map[string]*ebiten.Image),
	}
}

// Update reads the mouse and runs one simulation step.
func (a *app) Update() error {
	if a.ctx.Err() != nil || a.game.Done() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	px := core.Clamp(float64(x), 0, a.width)
	py := core.Clamp(float64(y), 0, a.height)
	if x != a.cursorX || y != a.cursorY {
		a.cursorX, a.cursorY = x, y
		a.events.Push(core.Move(px, py))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.events.Push(core.Click(px, py))
	}

	a.game.Step(a.events)
	if a.game.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the scene bottom to top.
func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, s := range a.game.Surface().Shapes() {
		b := s.Bounds
		clr := s.Color.RGBA()

		switch s.Kind {
		case scene.KindBrick, scene.KindPaddle:
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
		case scene.KindBall:
			c := b.Center()
			vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(b.W/2), clr, true)
		case scene.KindLaserBeam:
			vector.StrokeLine(screen, float32(b.X), float32(b.Y), float32(b.X), float32(b.Bottom()), 1, clr, false)
		case scene.KindLabel:
			a.drawLabel(screen, s)
		}
	}
}

// drawLabel renders text with the debug font, scaled to the label's size
// and tinted with its color.
func (a *app) drawLabel(screen *ebiten.Image, s *scene.Shape) {
	img, ok := a.text[s.Text]
	if !ok {
		img = ebiten.NewImage(max(utf8.RuneCountInString(s.Text), 1)*glyphW, glyphH)
		ebitenutil.DebugPrint(img, s.Text)
		a.text[s.Text] = img
	}

	scale := LabelScale(s.FontSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(s.Bounds.X, s.Bounds.Y)
	op.ColorScale.ScaleWithColor(s.Color.RGBA())
	screen.DrawImage(img, op)
}

// Layout keeps the game's logical size regardless of the window size.
func (a *app) Layout(_, _ int) (int, int) {
	return int(a.width), int(a.height)
}

// LabelScale converts a point size to a whole-number scale of the debug font.
func LabelScale(fontSize float64) float64 {
	return max(1, math.Round(fontSize/glyphH))
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return "window"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "desktop window with mouse input (Ebitengine)"
}

// Run opens the window and blocks until the game closes, the window is
// closed or ctx is cancelled.
func (Frontend) Run(ctx context.Context, game *breakout.Game, cfg core.RuntimeConfig) error {
	w, h := game.Surface().Size()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate())

	if err := ebiten.RunGame(newApp(ctx, game)); err != nil {
		return &breakout.RenderError{Op: "window", Err: err}
	}
	return nil
}

func init() {
	registry.Register("window", func() registry.Frontend {
		return Frontend{}
	})
}
