package scenes

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/shared/leveldata"
	"github.com/automoto/brawler/systems"
	"github.com/automoto/brawler/systems/factory"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer plays the cues the simulation queues.
type SoundPlayer interface {
	Play(id cfg.SoundID, volume float64)
}

// sfxVolume is the playback volume for every cue.
const sfxVolume = 0.6

// ArenaScene runs the simulation on one level at a time and steps through
// the level list as each one is finished.
type ArenaScene struct {
	ecs        *ecs.ECS
	settings   cfg.HostSettings
	sfx        SoundPlayer
	provider   *rectProvider
	levels     []*leveldata.Level
	levelIndex int
	debug      bool
	once       sync.Once
}

// NewArenaScene creates the gameplay scene. sfx may be nil to run silent.
func NewArenaScene(settings cfg.HostSettings, sfx SoundPlayer) *ArenaScene {
	return &ArenaScene{
		settings: settings,
		sfx:      sfx,
		debug:    settings.Debug,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if justPressed(actionDebug) {
		as.debug = !as.debug
	}
	if justPressed(actionRestart) {
		as.Restart()
		return
	}

	run := systems.GetOrCreateRunState(as.ecs)
	if run.LevelFinished && justPressed(actionConfirm) {
		as.levelIndex = (as.levelIndex + 1) % len(as.levels)
		as.Restart()
		return
	}
	if justPressed(actionPause) && !run.Over && !run.LevelFinished {
		run.Paused = !run.Paused
	}

	if playerEntry, ok := tags.Player.First(as.ecs.World); ok {
		readPlayerInput(components.PlayerInput.Get(playerEntry))
	}

	as.ecs.Update()

	for _, id := range systems.DrainSFX(as.ecs.World) {
		if as.sfx != nil {
			as.sfx.Play(id, sfxVolume)
		}
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Restart rebuilds the current level from scratch with the configuration
// in effect now.
func (as *ArenaScene) Restart() {
	if as.levels == nil {
		return
	}
	as.provider = newRectProvider()
	as.buildWorld()
}

func (as *ArenaScene) configure() {
	as.levels, as.levelIndex = loadLevels(as.settings.Level)
	as.provider = newRectProvider()
	as.buildWorld()
}

func (as *ArenaScene) buildWorld() {
	e := systems.NewSimulation(donburi.NewWorld())

	e.AddRenderer(cfg.Default, drawLevel)
	e.AddRenderer(cfg.Default, newActorRenderer(as.provider))
	e.AddRenderer(cfg.Default, func(e *ecs.ECS, screen *ebiten.Image) {
		if as.debug {
			drawDebug(e, screen)
		}
	})
	e.AddRenderer(cfg.Default, drawHUD)

	level := as.levels[as.levelIndex]
	if _, err := factory.CreateLevel(e, as.provider, level); err != nil {
		panic(fmt.Errorf("build level %s: %w", level.Name, err))
	}
	log.Printf("level %s loaded: %d enemies", level.Name, len(level.Enemies))

	as.ecs = e
}

// loadLevels returns the embedded levels plus the starting index for path.
// A path that names no embedded level is loaded from disk and played first.
func loadLevels(path string) ([]*leveldata.Level, int) {
	levels := assets.MustLoadLevels()
	stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
	for i, l := range levels {
		if l.Name == stem {
			return levels, i
		}
	}

	level, err := leveldata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		log.Printf("level %s unavailable, using %s: %v", path, levels[0].Name, err)
		return levels, 0
	}
	return append([]*leveldata.Level{level}, levels...), 0
}
