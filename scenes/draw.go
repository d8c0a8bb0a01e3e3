package scenes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/fonts"
	"github.com/automoto/octagon/hud"
	"github.com/automoto/octagon/match"
	"github.com/automoto/octagon/shared/arenadata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// view maps arena x/z onto the screen, top down with -z up.
type view struct {
	cx, cy float64
	scale  float64
}

func newView(arena *arenadata.Arena) view {
	scale := cfg.C.PixelsPerUnit
	top := cfg.HUD.HealthBarMargin*2 + cfg.HUD.HealthBarHeight + 16
	fit := math.Min(float64(cfg.C.Width)/arena.Width, (float64(cfg.C.Height)-top)/arena.Depth)
	if fit < scale {
		scale = fit
	}
	return view{
		cx:    float64(cfg.C.Width) / 2,
		cy:    top + (float64(cfg.C.Height)-top)/2,
		scale: scale,
	}
}

func (v view) point(x, z float64) (float32, float32) {
	return float32(v.cx + x*v.scale), float32(v.cy + z*v.scale)
}

func drawArena(screen *ebiten.Image, v view, arena *arenadata.Arena) {
	x, y := v.point(-arena.Width/2, -arena.Depth/2)
	vector.DrawFilledRect(screen, x, y,
		float32(arena.Width*v.scale), float32(arena.Depth*v.scale),
		cfg.HUD.FloorColor, false)

	for _, w := range arena.Walls {
		x, y := v.point(w.MinX, w.MinZ)
		vector.DrawFilledRect(screen, x, y,
			float32((w.MaxX-w.MinX)*v.scale), float32((w.MaxZ-w.MinZ)*v.scale),
			cfg.HUD.WallColor, false)
	}
}

func fighterColor(id components.ActorID) color.RGBA {
	if id == components.Player {
		return cfg.HUD.PlayerColor
	}
	return cfg.HUD.OpponentColor
}

// drawFighter draws the body as a circle leaning with the torso joint and
// the arm as a line that extends with the shoulder and elbow joints.
func drawFighter(screen *ebiten.Image, v view, a match.ActorSnapshot) {
	fx, fz := math.Sin(a.Yaw), math.Cos(a.Yaw)
	r := cfg.Fighter.Radius

	lean := a.Joints[cfg.JointTorso] * 0.5 * r
	bx, bz := a.Position.X()+fx*lean, a.Position.Z()+fz*lean
	// Airborne fighters are drawn larger.
	radius := r * (1 + a.Position.Y()*0.2)

	sx, sy := v.point(bx, bz)
	vector.DrawFilledCircle(screen, sx, sy, float32(radius*v.scale), fighterColor(a.ID), true)

	raise := math.Max(0, -a.Joints[cfg.JointShoulder]) / 1.6
	bend := math.Max(0, -a.Joints[cfg.JointElbow]) / 0.4
	arm := r * (0.6 + 1.4*raise - 0.3*bend)
	// Shoulder sits off to the right of the facing direction.
	ox, oz := bx-fz*r*0.6, bz+fx*r*0.6
	x0, y0 := v.point(ox, oz)
	x1, y1 := v.point(ox+fx*arm, oz+fz*arm)
	armColor := cfg.White
	if a.HitLanded {
		armColor = cfg.BrightOrange
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, 3, armColor, true)

	label := a.State
	if !strings.HasPrefix(label, "idle") {
		label = fmt.Sprintf("%s %d", label, a.StateTicks)
	}
	tx, ty := v.point(a.Position.X(), a.Position.Z()+r+0.4)
	text.Draw(screen, label, fonts.Small.Get(), int(tx)-20, int(ty), cfg.White)
}

func drawHUD(screen *ebiten.Image, snap match.Snapshot, bars [2]*hud.HealthBar, arena string, round int) {
	m := cfg.HUD.HealthBarMargin
	w := cfg.HUD.HealthBarWidth
	h := cfg.HUD.HealthBarHeight

	positions := [2]float64{m, float64(cfg.C.Width) - m - w}
	for _, a := range snap.Actors {
		x := positions[a.ID]
		vector.DrawFilledRect(screen, float32(x), float32(m), float32(w), float32(h),
			cfg.HUD.HealthBarBgColor, false)

		shown := bars[a.ID].Shown()
		fill := float32(w * shown)
		fx := float32(x)
		if a.ID == components.Opponent {
			// Opponent bar drains toward the screen edge.
			fx = float32(x+w) - fill
		}
		vector.DrawFilledRect(screen, fx, float32(m), fill, float32(h), fighterColor(a.ID), false)

		label := fmt.Sprintf("%s %d/%d", a.Label, a.Health, a.MaxHealth)
		text.Draw(screen, label, fonts.Bold.Get(), int(x), int(m+h+16), cfg.White)
	}

	status := fmt.Sprintf("%s  round %d  %.1fs", arena, round+1, snap.Elapsed)
	bounds := text.BoundString(fonts.Small.Get(), status)
	text.Draw(screen, status, fonts.Small.Get(), (cfg.C.Width-bounds.Dx())/2, int(m+h), cfg.White)
}

func drawResult(screen *ebiten.Image, snap match.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), cfg.BlackOverlay, false)

	title := "DRAW"
	if snap.HasWinner {
		title = "PLAYER WINS"
		if snap.Winner == components.Opponent {
			title = "AI WINS"
		}
	}
	drawCentered(screen, title, fonts.Title, cfg.C.Height/2)
	drawCentered(screen, "R to restart, N for the next arena", fonts.Regular, cfg.C.Height/2+30)
}

func drawCentered(screen *ebiten.Image, s string, f fonts.FontName, y int) {
	bounds := text.BoundString(f.Get(), s)
	text.Draw(screen, s, f.Get(), (cfg.C.Width-bounds.Dx())/2, y, cfg.White)
}
