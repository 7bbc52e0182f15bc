package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	platformColor = color.RGBA{R: 150, G: 120, B: 80, A: 255}
	hazardColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	finishColor   = color.RGBA{R: 240, G: 220, B: 60, A: 255}
	barBackColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

func fillObject(screen *ebiten.Image, e *donburi.Entry, c color.Color) {
	obj := components.Object.Get(e)
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}

// drawLevel draws the static and moving level geometry.
func drawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) { fillObject(screen, e, wallColor) })
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) { fillObject(screen, e, platformColor) })
	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) { fillObject(screen, e, platformColor) })
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		c := hazardColor
		if !components.Hazard.Get(e).Lethal() {
			c = cfg.Orange
		}
		fillObject(screen, e, c)
	})
	tags.FinishLine.Each(ecs.World, func(e *donburi.Entry) { fillObject(screen, e, finishColor) })
}

// newActorRenderer draws every actor with the frame its state machine selects.
func newActorRenderer(p animations.Provider) ecs.RendererWithArg[ebiten.Image] {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		components.Actor.Each(ecs.World, func(e *donburi.Entry) {
			actor := components.Actor.Get(e)
			obj := components.Object.Get(e)

			img, ok := animations.Handle(p, actor.Archetype, actor.State, actor.Frame(), actor.Facing).(*ebiten.Image)
			if !ok || img == nil {
				return
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(obj.X, obj.Y)
			if actor.Invulnerable() && (actor.Player.InvulnTimer/4)%2 == 0 {
				op.ColorScale.ScaleAlpha(0.4)
			}
			screen.DrawImage(img, op)

			if actor.State == cfg.Attacking {
				drawSwing(screen, actor, obj)
			}
			if actor.Kind == cfg.KindEnemy && actor.Alive() && actor.Health < actor.MaxHealth {
				drawHealthBar(screen, obj.X, obj.Y-8, obj.W, actor.HealthFraction())
			}
		})
	}
}

// drawSwing outlines the attack box, filled on the damage frame.
func drawSwing(screen *ebiten.Image, actor *components.ActorData, obj *components.ObjectData) {
	cx, cy := obj.Center()
	x := math.Min(cx, cx+actor.Facing.Sign()*actor.Attack.RangeX)
	y := cy - actor.Attack.RangeY
	w, h := float32(actor.Attack.RangeX), float32(2*actor.Attack.RangeY)

	if actor.AtDamageFrame() {
		vector.FillRect(screen, float32(x), float32(y), w, h, color.RGBA{R: 255, G: 255, B: 255, A: 90}, false)
		return
	}
	vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, cfg.White, false)
}

func drawHealthBar(screen *ebiten.Image, x, y, w, fraction float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 4, barBackColor, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*fraction), 4, cfg.Green, false)
}

// drawDebug outlines every collision object and labels actors with their
// state, frame and timers.
func drawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		obj := components.Object.Get(e)
		label := fmt.Sprintf("%s f%d t%d", actor.State, actor.Frame(), actor.StateTimer)
		if actor.Enemy != nil {
			label += fmt.Sprintf(" cd%d", actor.Enemy.AttackCooldown)
			vector.StrokeLine(screen, float32(actor.Enemy.PatrolLeft), float32(obj.Y+obj.H+2),
				float32(actor.Enemy.PatrolRight), float32(obj.Y+obj.H+2), 1, cfg.Purple, false)
		}
		ebitenutil.DebugPrintAt(screen, label, int(obj.X), int(obj.Y)-24)
	})
}

// drawHUD shows lives, health and the run outcome.
func drawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		actor := components.Actor.Get(playerEntry)
		lives := components.Lives.Get(playerEntry)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LIVES %d/%d  HP %d/%d", lives.Lives, lives.MaxLives, actor.Health, actor.MaxHealth), 16, 8)
		drawHealthBar(screen, 16, 26, 160, actor.HealthFraction())
	}

	runEntry, ok := components.RunState.First(ecs.World)
	if !ok {
		return
	}
	run := components.RunState.Get(runEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	switch {
	case run.Over:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", w/2-90, h/2)
	case run.LevelFinished:
		ebitenutil.DebugPrintAt(screen, "LEVEL COMPLETE - press Enter to continue", w/2-120, h/2)
	case run.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-18, h/2)
	}
}
