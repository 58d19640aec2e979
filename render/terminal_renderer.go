// Package render draws a top-down terminal view of the boards and a HUD
// World +X maps to columns, world +Z to rows going up the screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-skate/engine"
	"github.com/lixenwraith/vi-skate/trick"
	"github.com/lixenwraith/vi-skate/vmath"
)

const (
	hudRows        = 4
	chargeBarWidth = 20
	groundSpacing  = 2.0 // world units between ground dots
)

// headingGlyphs are indexed by heading octant, 0 = +Z (up the screen)
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Frame is everything drawn in one frame
type Frame struct {
	Focus  mgl64.Vec3 // world point at the view center
	Camera *mgl64.Vec3
	Boards []engine.BoardData
	Paused bool
	Muted  bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	scaleX float64 // columns per world unit
	scaleZ float64 // rows per world unit
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, scaleX, scaleZ float64) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		width:  w,
		height: h,
		scaleX: scaleX,
		scaleZ: scaleZ,
	}
}

// Resize updates the cached screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	r.drawGround(f.Focus, defaultStyle)
	if f.Camera != nil {
		r.drawMarker(f.Focus, *f.Camera, '◎', defaultStyle.Foreground(RgbCamera))
	}
	for _, b := range f.Boards {
		r.drawBoard(f.Focus, b, defaultStyle)
	}

	if len(f.Boards) > 0 {
		r.drawHUD(f.Boards[0], defaultStyle)
	}
	r.drawStatusBar(f, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// project maps a world point to a screen cell relative to focus at the view center
func (r *TerminalRenderer) project(focus, p mgl64.Vec3) (x, y int, ok bool) {
	cx := r.width / 2
	cy := hudRows + (r.height-hudRows-1)/2
	x = cx + int(math.Round((p[0]-focus[0])*r.scaleX))
	y = cy - int(math.Round((p[2]-focus[2])*r.scaleZ))
	ok = x >= 0 && x < r.width && y >= hudRows && y < r.height-1
	return x, y, ok
}

// drawGround draws a dot grid fixed in world space so motion is visible
func (r *TerminalRenderer) drawGround(focus mgl64.Vec3, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbGround)
	halfW := float64(r.width) / (2 * r.scaleX)
	halfH := float64(r.height) / (2 * r.scaleZ)

	x0 := math.Floor((focus[0]-halfW)/groundSpacing) * groundSpacing
	z0 := math.Floor((focus[2]-halfH)/groundSpacing) * groundSpacing
	for wx := x0; wx <= focus[0]+halfW; wx += groundSpacing {
		for wz := z0; wz <= focus[2]+halfH; wz += groundSpacing {
			if x, y, ok := r.project(focus, mgl64.Vec3{wx, 0, wz}); ok {
				r.screen.SetContent(x, y, '·', nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawMarker(focus, p mgl64.Vec3, ch rune, style tcell.Style) {
	if x, y, ok := r.project(focus, p); ok {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// drawBoard draws the heading arrow; airborne boards also leave a shadow one row below
func (r *TerminalRenderer) drawBoard(focus mgl64.Vec3, b engine.BoardData, defaultStyle tcell.Style) {
	pos := b.Body.Position()
	x, y, ok := r.project(focus, pos)
	if !ok {
		return
	}

	phase := b.Trick.Phase()
	if phase == trick.PhaseInAir && y+1 < r.height-1 {
		r.screen.SetContent(x, y+1, '▁', nil, defaultStyle.Foreground(RgbShadow))
	}

	style := defaultStyle.Foreground(phaseColor(phase)).Bold(true)
	if vmath.Tilt(b.Body.Orientation()) < 0 {
		style = style.Reverse(true) // upside down
	}
	r.screen.SetContent(x, y, HeadingGlyph(b.Body.Forward()), nil, style)
}

// drawHUD draws the focused board's phase, motion, charge and last trick
func (r *TerminalRenderer) drawHUD(b engine.BoardData, defaultStyle tcell.Style) {
	hud := defaultStyle.Foreground(RgbHUD)
	dim := defaultStyle.Foreground(RgbHUDDim)
	st := b.Trick.State()
	m := b.Metrics

	line0 := fmt.Sprintf("%s  %-8s speed %5.2f  height %5.2f  air %4.2fs  lean %+5.1f",
		b.Name, st.Phase, b.Body.LinearVelocity().Len(), b.Body.Position().Y(), st.AirTime, b.Deck.Lean())
	r.drawText(0, 0, line0, defaultStyle.Foreground(phaseColor(st.Phase)))

	r.drawText(0, 1, "charge ", dim)
	r.drawText(7, 1, ChargeBar(m.Charge.Load(), chargeBarWidth), defaultStyle.Foreground(RgbChargeBar))
	r.drawText(8+chargeBarWidth+1, 1, fmt.Sprintf("yaw %+6.1f  flip %+6.1f", st.AccumulatedYaw, st.AccumulatedFlip), dim)

	last := st.LastResult
	lastStyle := defaultStyle.Foreground(RgbTrickLanded)
	lastText := m.LastTrick.Load()
	if lastText == "" {
		lastText = "-"
	} else if !last.Landed {
		lastStyle = defaultStyle.Foreground(RgbTrickBailed)
	}
	r.drawText(0, 2, "last ", dim)
	r.drawText(5, 2, lastText, lastStyle)

	counters := fmt.Sprintf("pops %d  catches %d  bails %d  ground %d",
		m.Pops.Load(), m.Catches.Load(), m.Bails.Load(), m.GroundResets.Load())
	r.drawText(0, 3, counters, hud)
}

func (r *TerminalRenderer) drawStatusBar(f Frame, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbHUDDim)
	text := "w push  a/d steer  arrows trick  r reset  p pause  m mute  q quit"
	var flags []string
	if f.Paused {
		flags = append(flags, "PAUSED")
	}
	if f.Muted {
		flags = append(flags, "MUTED")
	}
	if len(flags) > 0 {
		text = "[" + strings.Join(flags, " ") + "]  " + text
	}
	r.drawText(0, r.height-1, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// HeadingGlyph returns the arrow closest to the horizontal heading of forward
func HeadingGlyph(forward mgl64.Vec3) rune {
	deg := vmath.HeadingDeg(forward)
	octant := int(math.Round(deg/45)) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}

// ChargeBar renders a fraction in [0,1] as a fixed-width bar
func ChargeBar(fraction float64, width int) string {
	filled := int(math.Round(vmath.Clamp01(fraction) * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func phaseColor(p trick.Phase) tcell.Color {
	switch p {
	case trick.PhaseCharging:
		return RgbBoardCharging
	case trick.PhaseInAir:
		return RgbBoardInAir
	}
	return RgbBoardIdle
}
