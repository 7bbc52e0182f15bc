package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/brawler/assets/animations"
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// rectProvider serves placeholder frames: a tinted box per archetype whose
// shade pulses with the frame index and which marks the facing side.
type rectProvider struct {
	clips  animations.StaticProvider
	bodies map[string]body
	cache  map[string]*ebiten.Image
}

type body struct {
	w, h int
	tint color.RGBA
}

var _ animations.Provider = (*rectProvider)(nil)

func newRectProvider() *rectProvider {
	p := &rectProvider{
		clips:  animations.StaticProvider(cfg.CharacterAnimations),
		bodies: make(map[string]body),
		cache:  make(map[string]*ebiten.Image),
	}
	p.bodies[cfg.Player.SpriteSheetKey] = body{cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, cfg.Player.TintColor}
	for _, t := range cfg.Enemy.Types {
		p.bodies[t.SpriteSheetKey] = body{t.CollisionWidth, t.CollisionHeight, t.TintColor}
	}
	return p
}

func (p *rectProvider) Frames(archetype string, state cfg.StateID) int {
	return p.clips.Frames(archetype, state)
}

func (p *rectProvider) Frame(archetype string, state cfg.StateID, index int, facing cfg.Facing) any {
	key := fmt.Sprintf("%s/%s/%d/%s", archetype, state, index, facing)
	if img, ok := p.cache[key]; ok {
		return img
	}

	b, ok := p.bodies[archetype]
	if !ok || b.w <= 0 || b.h <= 0 {
		return nil
	}

	img := ebiten.NewImage(b.w, b.h)
	img.Fill(shade(b.tint, state, index, p.Frames(archetype, state)))

	// Eye strip on the facing side.
	eyeX := float32(b.w) - 10
	if facing == cfg.FacingLeft {
		eyeX = 4
	}
	vector.FillRect(img, eyeX, float32(b.h)/5, 6, 4, cfg.White, false)

	p.cache[key] = img
	return img
}

// shade darkens the tint across a clip so frame changes are visible.
func shade(c color.RGBA, state cfg.StateID, index, frames int) color.RGBA {
	if frames <= 1 {
		return c
	}
	f := 1 - 0.35*float64(index)/float64(frames-1)
	switch state {
	case cfg.TakingDamage:
		return color.RGBA{R: 255, G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: 255}
	case cfg.Dead:
		f *= 0.5
	}
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}
