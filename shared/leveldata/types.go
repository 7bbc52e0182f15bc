// Package leveldata provides TMX level parsing for the arena host and tests.
// Levels are plain data: nothing here creates entities, collision objects or
// images. Defaults such as the enemy patrol width come from config.
package leveldata

// Rect is an axis-aligned region in level pixels, top-left anchored.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in level pixels. Spawn points are the feet of the
// actor: horizontally centered, on the ground.
type Point struct {
	X, Y float64
}

// EnemySpawn places one enemy and the center-x range it patrols.
type EnemySpawn struct {
	Point
	Type        string
	PatrolLeft  float64
	PatrolRight float64
}

// HazardZone is a damaging region. Damage 0 kills on contact.
type HazardZone struct {
	Rect
	Kind   string
	Damage int
}

// MovingPlatformSpawn is a one-way platform that shuttles between
// BoundaryLeft and BoundaryRight.
type MovingPlatformSpawn struct {
	Rect
	BoundaryLeft  float64
	BoundaryRight float64
	Speed         float64
}

// Level holds everything the simulation needs from one TMX map.
type Level struct {
	Name      string
	MapWidth  int
	MapHeight int
	TileSize  int

	Solids          []Rect
	Platforms       []Rect
	PlayerSpawn     Point
	HasPlayerSpawn  bool
	Enemies         []EnemySpawn
	Hazards         []HazardZone
	Finish          []Rect
	MovingPlatforms []MovingPlatformSpawn
}
