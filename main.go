package main

import (
	"log"
	"path/filepath"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Game struct {
	scene    *scenes.ArenaScene
	settings config.HostSettings
	watcher  *config.Watcher
}

func NewGame(settings config.HostSettings, watcher *config.Watcher) *Game {
	sfx := assets.NewAudioLoader(audio.NewContext(assets.SampleRate))
	sfx.PreloadAll()

	return &Game{
		scene:    scenes.NewArenaScene(settings, sfx),
		settings: settings,
		watcher:  watcher,
	}
}

func (g *Game) Update() error {
	g.pollArchetypes()
	g.scene.Update()
	return nil
}

// pollArchetypes applies an edited archetype file and restarts the level so
// every actor is rebuilt from the new values. A bad edit keeps the old ones.
func (g *Game) pollArchetypes() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if filepath.Clean(path) != filepath.Clean(g.settings.Archetypes) {
			return
		}
		if err := applyArchetypes(g.settings.Archetypes); err != nil {
			log.Printf("Warning: keeping previous archetypes: %v", err)
			return
		}
		log.Printf("reloaded archetypes from %s", path)
		g.scene.Restart()
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Warning: archetype watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func applyArchetypes(path string) error {
	overrides, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	overrides.Apply()
	return nil
}

func main() {
	var settings config.HostSettings
	if err := config.ParseEnv(&settings); err != nil {
		log.Fatal(err)
	}

	var watcher *config.Watcher
	if settings.Archetypes != "" {
		if err := applyArchetypes(settings.Archetypes); err != nil {
			log.Fatal(err)
		}
		w, err := config.NewWatcher(filepath.Dir(settings.Archetypes))
		if err != nil {
			log.Printf("Warning: archetype hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetTPS(settings.TickRate)
	ebiten.SetWindowSize(int(float64(config.C.Width)*settings.Scale), int(float64(config.C.Height)*settings.Scale))
	ebiten.SetWindowTitle("brawler")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(settings, watcher)); err != nil {
		log.Fatal(err)
	}
}
