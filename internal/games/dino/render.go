package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody  = '█'
	RunnerHead  = '◆'
	RunnerLeg1  = '╱'
	RunnerLeg2  = '╲'
	CactusChar  = '▓'
	BirdBody    = '▬'
	WingUpChar  = '^'
	WingDown    = 'v'
	GroundChar  = '═'
	DotChar     = '.'
	CloudChar   = '░'
	BarFull     = '█'
	BarEmpty    = '·'
	jumpBarRows = 5
)

// projection maps field units onto screen cells.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen, cfg *config.DinoConfig) projection {
	return projection{
		sx: float64(dst.Width()) / cfg.Field.Width,
		sy: float64(dst.Height()) / cfg.Field.Height,
	}
}

// cells returns the screen cell span covered by r; never smaller than 1x1.
func (p projection) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * p.sx))
	y = int(math.Floor(r.Y * p.sy))
	w = max(1, int(math.Ceil(r.Right()*p.sx))-x)
	h = max(1, int(math.Ceil(r.Bottom()*p.sy))-y)
	return x, y, w, h
}

// Render draws the most recent frame.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.last, &g.cfg)
}

// RenderFrame draws a frame without consulting any game state beyond it.
func RenderFrame(dst *core.Screen, f FrameState, cfg *config.DinoConfig) {
	dst.Clear()
	p := newProjection(dst, cfg)

	for _, c := range f.Clouds {
		x, y, w, h := p.cells(core.NewRect(c.X, c.Y, c.Width, c.Height))
		dst.DrawRect(x, y, w, max(1, h-1), CloudChar, core.ColorCloud)
	}

	floorY := int(math.Floor(cfg.Runner.FloorY() * p.sy))
	dst.DrawHLine(0, floorY, dst.Width(), GroundChar, core.ColorGround)
	for _, d := range f.Dots {
		x, y, _, _ := p.cells(core.NewRect(d.X, d.Y, d.Size, d.Size))
		if y <= floorY {
			y = floorY + 1
		}
		dst.SetColored(x, y, DotChar, core.ColorGroundDot)
	}

	for _, o := range f.Obstacles {
		switch ob := o.(type) {
		case *GroundObstacle:
			drawCactus(dst, p, ob)
		case *AerialObstacle:
			drawBird(dst, p, ob)
		}
	}

	drawRunner(dst, p, f)
	drawHUD(dst, f)

	if f.GameOver() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", f.Score))
	}
}

func drawCactus(dst *core.Screen, p projection, c *GroundObstacle) {
	x, y, w, h := p.cells(c.Rect())
	dst.DrawRect(x, y, w, h, CactusChar, core.ColorCactus)
}

func drawBird(dst *core.Screen, p projection, b *AerialObstacle) {
	x, y, w, _ := p.cells(b.Rect())
	dst.DrawHLine(x, y, w, BirdBody, core.ColorBird)
	dst.SetColored(x, y, '<', core.ColorBird)

	wingX := x + w/2
	if b.WingUp {
		dst.SetColored(wingX, y-1, WingUpChar, core.ColorBird)
	} else {
		dst.SetColored(wingX, y+1, WingDown, core.ColorBird)
	}
}

func drawRunner(dst *core.Screen, p projection, f FrameState) {
	r := f.Runner
	x, y, w, h := p.cells(r.Rect())

	if r.IsDucking {
		// Flat sprite with the head out front
		dst.DrawRect(x, y, w, h, RunnerBody, core.ColorRunner)
		dst.SetColored(x+w, y, RunnerHead, core.ColorRunner)
		return
	}

	dst.DrawRect(x, y, w, max(1, h-1), RunnerBody, core.ColorRunner)
	dst.SetColored(x+w-1, y, RunnerHead, core.ColorRunner)

	legY := y + h - 1
	switch {
	case r.IsJumping:
		dst.SetColored(x, legY, RunnerLeg1, core.ColorRunner)
		dst.SetColored(x+1, legY, RunnerLeg2, core.ColorRunner)
	case (f.Frame/5)%2 == 0:
		dst.SetColored(x, legY, RunnerLeg1, core.ColorRunner)
		dst.SetColored(x+w-1, legY, RunnerLeg2, core.ColorRunner)
	default:
		dst.SetColored(x+1, legY, RunnerLeg1, core.ColorRunner)
		dst.SetColored(x+w-1, legY, RunnerLeg2, core.ColorRunner)
	}
}

func drawHUD(dst *core.Screen, f FrameState) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", f.Score), core.ColorHUD)

	right := fmt.Sprintf(" HI %d  Spd %.1f ", f.HighScore, f.Speed)
	dst.DrawTextColored(dst.Width()-len(right)-2, 0, right, core.ColorHighScore)

	// Jump force bar, filled bottom-up
	filled := int(math.Round(f.Runner.JumpForce * jumpBarRows))
	for i := 0; i < jumpBarRows; i++ {
		ch := BarEmpty
		if jumpBarRows-i <= filled {
			ch = BarFull
		}
		dst.SetColored(1, 2+i, ch, core.ColorJumpBar)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorGameOver)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
