package breakout

import (
	"math/rand/v2"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scene"
)

// labelWidthFactor approximates the advance width of one glyph relative to
// the font size.
const labelWidthFactor = 0.55

// Surface is the rendering collaborator the game draws into and hit-tests.
// scene.Scene is the standard implementation.
type Surface interface {
	Size() (width, height float64)
	Add(s *scene.Shape)
	Remove(s *scene.Shape) bool
	ObjectAt(x, y float64) *scene.Shape
	Shapes() []*scene.Shape
}

// Ball is the bouncing ball. X and Y locate the top-left corner of its
// bounding box.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	shape  *scene.Shape
}

// Diameter returns the ball's width and height.
func (b *Ball) Diameter() float64 {
	return b.Radius * 2
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Diameter(), b.Diameter())
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
	b.sync()
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

func (b *Ball) sync() {
	b.shape.Bounds = b.Bounds()
}

// Paddle is the player's paddle.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	shape         *scene.Shape
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

func (p *Paddle) sync() {
	p.shape.Bounds = p.Bounds()
}

// Brick is one cell of the brick grid.
type Brick struct {
	Index    int
	Row, Col int
	Bounds   core.Rect
	Color    core.Color
	Alive    bool
	shape    *scene.Shape
}

// Scoreboard holds the counters shown in the HUD.
type Scoreboard struct {
	Score           int
	Lives           int
	BricksRemaining int
	BricksDestroyed int
	InitialBricks   int
	InitialLives    int
}

// World owns every piece of mutable game state and keeps the scene shapes
// in sync with it.
type World struct {
	cfg     config.BreakoutConfig
	surface Surface

	Width, Height float64
	Modes         Modes
	Ball          *Ball
	Paddle        *Paddle
	Bricks        []*Brick
	Board         Scoreboard

	scoreValue *scene.Shape
	livesValue *scene.Shape
	banner     *scene.Shape
}

// NewWorld lays out bricks, ball, paddle and HUD labels on the surface,
// in that order, so labels sit on top for hit-testing.
func NewWorld(cfg config.BreakoutConfig, modes Modes, surface Surface, rng *rand.Rand) *World {
	w := &World{
		cfg:     cfg,
		surface: surface,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Modes:   modes,
		Board: Scoreboard{
			Lives:           cfg.Gameplay.Lives,
			BricksRemaining: cfg.BrickCount(),
			InitialBricks:   cfg.BrickCount(),
			InitialLives:    cfg.Gameplay.Lives,
		},
	}

	w.initBricks()
	w.initBall(rng)
	w.initPaddle()
	w.scoreValue = w.initCounter("Score: ", w.cfg.HUD.ScoreX, 0)
	w.livesValue = w.initCounter("Lives: ", w.cfg.HUD.LivesX, w.Board.Lives)
	return w
}

// initBricks builds the grid column by column.
func (w *World) initBricks() {
	b := w.cfg.Bricks
	colors := w.cfg.BrickColors()
	w.Bricks = make([]*Brick, 0, w.cfg.BrickCount())

	for col := range b.Cols {
		for row := range b.Rows {
			bounds := core.NewRect(
				2*b.Spacing+float64(col)*(b.Width+b.Spacing),
				float64(row+b.RowOffset)*(b.Height+b.Spacing),
				b.Width,
				b.Height,
			)
			brick := &Brick{
				Index:  len(w.Bricks),
				Row:    row,
				Col:    col,
				Bounds: bounds,
				Color:  colors[row%len(colors)],
				Alive:  true,
			}
			brick.shape = &scene.Shape{
				Kind:   scene.KindBrick,
				Bounds: bounds,
				Color:  brick.Color,
				Filled: true,
				Ref:    brick.Index,
			}
			w.Bricks = append(w.Bricks, brick)
			w.surface.Add(brick.shape)
		}
	}
}

// initBall centers the ball and picks its launch velocity.
func (w *World) initBall(rng *rand.Rand) {
	vx, vy := InitialVelocity(w.Modes, w.cfg.Ball, rng)
	w.Ball = &Ball{
		VX:     vx,
		VY:     vy,
		Radius: w.cfg.Ball.Radius,
		shape: &scene.Shape{
			Kind:   scene.KindBall,
			Color:  core.ColorDefault,
			Filled: true,
			Ref:    -1,
		},
	}
	w.ResetBall()
	w.surface.Add(w.Ball.shape)
}

// initPaddle centers the paddle near the bottom of the window.
func (w *World) initPaddle() {
	p := w.cfg.Paddle
	w.Paddle = &Paddle{
		X:      w.Width/2 - p.Width/2,
		Y:      w.Height - p.Height - p.BottomMargin,
		Width:  p.Width,
		Height: p.Height,
		shape: &scene.Shape{
			Kind:   scene.KindPaddle,
			Color:  core.ColorDefault,
			Filled: true,
			Ref:    -1,
		},
	}
	w.Paddle.sync()
	w.surface.Add(w.Paddle.shape)
}

// initCounter adds a caption label and a value label, returning the latter.
func (w *World) initCounter(caption string, x float64, value int) *scene.Shape {
	hud := w.cfg.HUD
	w.surface.Add(newLabel(caption, x, hud.BaselineY, hud.FontSize))
	valueLabel := newLabel(strconv.Itoa(value), x+hud.ValueOffset, hud.BaselineY, hud.FontSize)
	w.surface.Add(valueLabel)
	return valueLabel
}

// newLabel creates a text shape whose baseline starts at (x, baseline).
func newLabel(text string, x, baseline, size float64) *scene.Shape {
	return &scene.Shape{
		Kind:     scene.KindLabel,
		Bounds:   labelBounds(text, x, baseline, size),
		Color:    core.ColorDefault,
		Text:     text,
		FontSize: size,
		Ref:      -1,
	}
}

func labelBounds(text string, x, baseline, size float64) core.Rect {
	width := float64(utf8.RuneCountInString(text)) * size * labelWidthFactor
	return core.NewRect(x, baseline-size*0.8, width, size)
}

func setLabelText(label *scene.Shape, text string) {
	baseline := label.Bounds.Y + label.FontSize*0.8
	label.Text = text
	label.Bounds = labelBounds(text, label.Bounds.X, baseline, label.FontSize)
}

// BrickFor maps a hit shape back to its brick, or nil if the shape is not
// a live brick.
func (w *World) BrickFor(s *scene.Shape) *Brick {
	if s == nil || s.Kind != scene.KindBrick || s.Ref < 0 || s.Ref >= len(w.Bricks) {
		return nil
	}
	b := w.Bricks[s.Ref]
	if !b.Alive {
		return nil
	}
	return b
}

// SetPaddleX moves the paddle horizontally, keeping it inside the window
// when clamping is enabled.
func (w *World) SetPaddleX(x float64) {
	if w.cfg.Paddle.ClampToWindow {
		x = core.Clamp(x, 0, max(0, w.Width-w.Paddle.Width))
	}
	w.Paddle.X = x
	w.Paddle.sync()
}

// ShrinkPaddle narrows the paddle by the configured step, never below the
// configured floor. Position and height are kept.
func (w *World) ShrinkPaddle() {
	w.Paddle.Width = max(w.Paddle.Width-w.cfg.Paddle.Shrink, w.cfg.Paddle.MinWidth)
	w.Paddle.sync()
}

// DestroyBrick removes a live brick and updates the scoreboard.
// It reports whether that was the last brick.
func (w *World) DestroyBrick(b *Brick) bool {
	if b == nil || !b.Alive {
		return false
	}

	b.Alive = false
	w.surface.Remove(b.shape)
	w.Board.Score++
	w.Board.BricksRemaining--
	w.Board.BricksDestroyed++
	setLabelText(w.scoreValue, strconv.Itoa(w.Board.Score))

	if w.Board.BricksRemaining > 0 {
		return false
	}
	if w.cfg.Gameplay.GodModeOnWin {
		w.Modes.God = true
	}
	return true
}

// LoseLife takes one life and returns how many are left.
func (w *World) LoseLife() int {
	if w.Board.Lives > 0 {
		w.Board.Lives--
	}
	setLabelText(w.livesValue, strconv.Itoa(w.Board.Lives))
	return w.Board.Lives
}

// ResetBall puts the ball back in the middle of the window. Velocity is kept.
func (w *World) ResetBall() {
	w.Ball.X = w.Width/2 - w.Ball.Radius
	w.Ball.Y = w.Height/2 - w.Ball.Radius
	w.Ball.sync()
}

// PastPaddle reports whether the ball's bottom edge reached the window bottom.
func (w *World) PastPaddle() bool {
	return w.Ball.Y+w.Ball.Diameter() >= w.Height
}

// ShowBanner adds a large message centered horizontally with its baseline
// at y. Any earlier banner is replaced.
func (w *World) ShowBanner(text string, y float64) {
	if w.banner != nil {
		w.surface.Remove(w.banner)
	}
	size := w.cfg.HUD.BannerFontSize
	width := labelBounds(text, 0, y, size).W
	w.banner = newLabel(text, w.Width/2-width/2, y, size)
	w.surface.Add(w.banner)
}

// Banner returns the current banner text, or "".
func (w *World) Banner() string {
	if w.banner == nil {
		return ""
	}
	return w.banner.Text
}

// ScoreLabel returns the text of the score value label.
func (w *World) ScoreLabel() string {
	return w.scoreValue.Text
}

// LivesLabel returns the text of the lives value label.
func (w *World) LivesLabel() string {
	return w.livesValue.Text
}

// Surface returns the rendering surface the world draws into.
func (w *World) Surface() Surface {
	return w.surface
}
