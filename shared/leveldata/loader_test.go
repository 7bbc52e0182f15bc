package leveldata

import (
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="20">
 <tileset firstgid="1" name="walls" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="walls.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="Walls" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,0,1
</data>
 </layer>
`

const spawnGroup = ` <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="40" y="64">
   <point/>
  </object>
 </objectgroup>
`

func tmx(groups ...string) *fstest.MapFile {
	body := tmxHeader
	for _, g := range groups {
		body += g
	}
	return &fstest.MapFile{Data: []byte(body + "</map>\n")}
}

func TestLoad(t *testing.T) {
	enemies := ` <objectgroup id="3" name="Enemies">
  <object id="2" type="Mushroom" x="100" y="64">
   <point/>
  </object>
  <object id="3" type="Mushroom" x="60" y="64">
   <properties>
    <property name="left_boundary" type="float" value="40"/>
    <property name="right_boundary" type="float" value="90"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
`
	rest := ` <objectgroup id="4" name="Hazards">
  <object id="4" type="spikes" x="64" y="80" width="32" height="16"/>
  <object id="5" type="thorns" x="0" y="48" width="16" height="16">
   <properties>
    <property name="damage" type="int" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="MovingPlatforms">
  <object id="6" x="16" y="32" width="32" height="8">
   <properties>
    <property name="boundary_left" type="float" value="0"/>
    <property name="boundary_right" type="float" value="128"/>
    <property name="speed" type="float" value="2.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="6" name="Platforms">
  <object id="7" x="32" y="40" width="64" height="8"/>
 </objectgroup>
 <objectgroup id="7" name="Walls">
  <object id="8" x="96" y="0" width="32" height="64"/>
 </objectgroup>
 <objectgroup id="8" name="Finish">
  <object id="9" x="112" y="32" width="16" height="32"/>
 </objectgroup>
`
	fsys := fstest.MapFS{"levels/tiny.tmx": tmx(spawnGroup, enemies, rest)}

	level, err := Load(fsys, "levels/tiny.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tiny", level.Name)
	assert.Equal(t, 128, level.MapWidth)
	assert.Equal(t, 96, level.MapHeight)
	assert.Equal(t, 32, level.TileSize)

	// Three filled tiles plus one wall object.
	require.Len(t, level.Solids, 4)
	assert.Equal(t, Rect{X: 0, Y: 64, W: 32, H: 32}, level.Solids[0])
	assert.Equal(t, Rect{X: 96, Y: 64, W: 32, H: 32}, level.Solids[2])
	assert.Equal(t, Rect{X: 96, Y: 0, W: 32, H: 64}, level.Solids[3])

	require.True(t, level.HasPlayerSpawn)
	assert.Equal(t, Point{X: 40, Y: 64}, level.PlayerSpawn)

	require.Len(t, level.Enemies, 2)
	assert.Equal(t, 60.0, level.Enemies[0].X, "enemies are ordered left to right")
	assert.Equal(t, 40.0, level.Enemies[0].PatrolLeft)
	assert.Equal(t, 90.0, level.Enemies[0].PatrolRight)
	assert.Equal(t, "Mushroom", level.Enemies[1].Type)
	assert.Equal(t, 100-config.Enemy.DefaultPatrolDistance, level.Enemies[1].PatrolLeft)
	assert.Equal(t, 100+config.Enemy.DefaultPatrolDistance, level.Enemies[1].PatrolRight)

	require.Len(t, level.Hazards, 2)
	assert.Equal(t, "spikes", level.Hazards[0].Kind)
	assert.Zero(t, level.Hazards[0].Damage)
	assert.Equal(t, 2, level.Hazards[1].Damage)

	require.Len(t, level.MovingPlatforms, 1)
	mp := level.MovingPlatforms[0]
	assert.Equal(t, 0.0, mp.BoundaryLeft)
	assert.Equal(t, 128.0, mp.BoundaryRight)
	assert.Equal(t, 2.5, mp.Speed)

	assert.Len(t, level.Platforms, 1)
	assert.Len(t, level.Finish, 1)
}

func TestLoadRejectsBadLevels(t *testing.T) {
	inverted := ` <objectgroup id="3" name="Enemies">
  <object id="2" type="Mushroom" x="60" y="64">
   <properties>
    <property name="left_boundary" type="float" value="90"/>
    <property name="right_boundary" type="float" value="40"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
`
	narrowTrack := ` <objectgroup id="3" name="MovingPlatforms">
  <object id="2" x="16" y="32" width="64" height="8">
   <properties>
    <property name="boundary_left" type="float" value="0"/>
    <property name="boundary_right" type="float" value="40"/>
   </properties>
  </object>
 </objectgroup>
`
	badBoundary := ` <objectgroup id="3" name="Enemies">
  <object id="2" type="Mushroom" x="60" y="64">
   <properties>
    <property name="left_boundary" value="abc"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
`
	badSpeed := ` <objectgroup id="3" name="MovingPlatforms">
  <object id="2" x="16" y="32" width="32" height="8">
   <properties>
    <property name="boundary_right" type="float" value="128"/>
    <property name="speed" value="fast"/>
   </properties>
  </object>
 </objectgroup>
`
	cases := []struct {
		name string
		file *fstest.MapFile
		want error
	}{
		{"no_spawn", tmx(), ErrNoPlayerSpawn},
		{"inverted_patrol", tmx(spawnGroup, inverted), ErrInvalidBounds},
		{"track_narrower_than_platform", tmx(spawnGroup, narrowTrack), ErrInvalidBounds},
		{"malformed_boundary", tmx(spawnGroup, badBoundary), ErrBadProperty},
		{"malformed_speed", tmx(spawnGroup, badSpeed), ErrBadProperty},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(fstest.MapFS{"bad.tmx": c.file}, "bad.tmx")
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(fstest.MapFS{}, "nope.tmx")
		assert.Error(t, err)
	})
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      tmx(spawnGroup),
		"levels/a.tmx":      tmx(spawnGroup),
		"levels/README.txt": &fstest.MapFile{Data: []byte("not a level")},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)

	fsys["levels/c.tmx"] = tmx()
	_, _, err = LoadAll(fsys, "levels")
	assert.True(t, errors.Is(err, ErrNoPlayerSpawn))
}

func TestValidate(t *testing.T) {
	level := &Level{HasPlayerSpawn: true}
	for i := 0; i < 3; i++ {
		level.Enemies = append(level.Enemies, EnemySpawn{
			Point:       Point{X: float64(i * 100)},
			PatrolLeft:  float64(i * 100),
			PatrolRight: float64(i*100 + 50),
		})
	}
	require.NoError(t, Validate(level))

	level.Enemies[1].PatrolLeft = 500
	err := Validate(level)
	require.True(t, errors.Is(err, ErrInvalidBounds))
	assert.Contains(t, err.Error(), fmt.Sprintf("enemy %d", 1))
}
