package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	var levels []string
	require.NotPanics(t, func() {
		for _, l := range MustLoadLevels() {
			levels = append(levels, l.Name)
		}
	})
	assert.Equal(t, []string{"arena", "ledges"}, levels)
}

func TestArenaLayout(t *testing.T) {
	level, err := LoadLevel(LevelsDir + "/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 1280, level.MapWidth)
	assert.Equal(t, 704, level.MapHeight)
	require.Len(t, level.Enemies, 2)
	assert.Equal(t, 500.0, level.Enemies[0].PatrolLeft)
	assert.Equal(t, 700.0, level.Enemies[0].PatrolRight)
	assert.NotEmpty(t, level.Finish)
	assert.NotEmpty(t, level.Hazards)
}

func TestEveryCueHasATone(t *testing.T) {
	for id, tn := range tones {
		pcm := synthesize(tn, SampleRate)
		assert.Len(t, pcm, int(tn.seconds*SampleRate)*4, "sound %d", id)
	}
}
