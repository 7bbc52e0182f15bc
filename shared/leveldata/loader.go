package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/brawler/config"
	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names.
const (
	layerWalls           = "Walls"
	groupWalls           = "Walls"
	groupPlatforms       = "Platforms"
	groupPlayerSpawn     = "PlayerSpawn"
	groupEnemies         = "Enemies"
	groupHazards         = "Hazards"
	groupFinish          = "Finish"
	groupMovingPlatforms = "MovingPlatforms"
)

var (
	ErrNoPlayerSpawn = errors.New("level has no player spawn")
	ErrInvalidBounds = errors.New("left boundary exceeds right boundary")
	ErrBadProperty   = errors.New("malformed numeric property")
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS. The result has been validated.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		TileSize:  levelMap.TileWidth,
	}

	parseWallTiles(levelMap, level)
	if err := parseObjects(levelMap, level); err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}

	// Left-to-right keeps spawn order stable across edits in Tiled.
	sort.SliceStable(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].X < level.Enemies[j].X
	})

	if err := Validate(level); err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	return level, nil
}

func parseObjects(levelMap *tiled.Map, level *Level) error {
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case groupWalls:
				level.Solids = append(level.Solids, rectOf(o))
			case groupPlatforms:
				level.Platforms = append(level.Platforms, rectOf(o))
			case groupPlayerSpawn:
				if !level.HasPlayerSpawn {
					level.PlayerSpawn = feetOf(o)
					level.HasPlayerSpawn = true
				}
			case groupEnemies:
				spawn, err := enemyOf(o)
				if err != nil {
					return err
				}
				level.Enemies = append(level.Enemies, spawn)
			case groupHazards:
				damage, err := floatProperty(o, "damage", 0)
				if err != nil {
					return err
				}
				level.Hazards = append(level.Hazards, HazardZone{
					Rect:   rectOf(o),
					Kind:   o.Type,
					Damage: int(damage),
				})
			case groupFinish:
				level.Finish = append(level.Finish, rectOf(o))
			case groupMovingPlatforms:
				p, err := movingPlatformOf(o)
				if err != nil {
					return err
				}
				level.MovingPlatforms = append(level.MovingPlatforms, p)
			}
		}
	}
	return nil
}

// Validate rejects levels the simulation cannot run.
func Validate(level *Level) error {
	if !level.HasPlayerSpawn {
		return ErrNoPlayerSpawn
	}
	for i, e := range level.Enemies {
		if e.PatrolLeft > e.PatrolRight {
			return fmt.Errorf("enemy %d at x=%.0f: %w", i, e.X, ErrInvalidBounds)
		}
	}
	for i, p := range level.MovingPlatforms {
		if p.BoundaryLeft > p.BoundaryRight-p.W {
			return fmt.Errorf("moving platform %d at x=%.0f: %w", i, p.X, ErrInvalidBounds)
		}
	}
	return nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func parseWallTiles(levelMap *tiled.Map, level *Level) {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != layerWalls {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				level.Solids = append(level.Solids, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		return
	}
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// feetOf reads a spawn object: point objects are used as-is, sized objects
// are anchored at their bottom center.
func feetOf(o *tiled.Object) Point {
	return Point{X: o.X + o.Width/2, Y: o.Y + o.Height}
}

func enemyOf(o *tiled.Object) (EnemySpawn, error) {
	feet := feetOf(o)
	spawn := EnemySpawn{
		Point: feet,
		Type:  o.Properties.GetString("type"),
	}
	if spawn.Type == "" {
		spawn.Type = o.Type
	}

	var err error
	if spawn.PatrolLeft, err = floatProperty(o, "left_boundary", feet.X-config.Enemy.DefaultPatrolDistance); err != nil {
		return spawn, err
	}
	if spawn.PatrolRight, err = floatProperty(o, "right_boundary", feet.X+config.Enemy.DefaultPatrolDistance); err != nil {
		return spawn, err
	}
	return spawn, nil
}

func movingPlatformOf(o *tiled.Object) (MovingPlatformSpawn, error) {
	p := MovingPlatformSpawn{Rect: rectOf(o)}

	var err error
	if p.BoundaryLeft, err = floatProperty(o, "boundary_left", o.X); err != nil {
		return p, err
	}
	if p.BoundaryRight, err = floatProperty(o, "boundary_right", o.X+o.Width); err != nil {
		return p, err
	}
	if p.Speed, err = floatProperty(o, "speed", 1); err != nil {
		return p, err
	}
	return p, nil
}

// floatProperty reads a numeric custom property, returning def when it is
// absent. A value that does not parse is an authoring error.
func floatProperty(o *tiled.Object, name string, def float64) (float64, error) {
	for _, p := range o.Properties {
		if p.Name != name {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
		if err != nil {
			return 0, fmt.Errorf("object %d property %s=%q: %w", o.ID, name, p.Value, ErrBadProperty)
		}
		return v, nil
	}
	return def, nil
}
