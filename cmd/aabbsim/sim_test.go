package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/setanarut/aabb"
	"github.com/setanarut/aabb/tilemap"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSim(t *testing.T) (*sim, *tilemap.Level) {
	t.Helper()
	level, err := loadLevel("")
	require.NoError(t, err)
	s := newSim(aabb.DefaultConfig(), aabb.NoopLogger(), 4)
	require.NoError(t, s.load(level))
	return s, level
}

func TestSimStaysInsideLevel(t *testing.T) {
	s, level := newTestSim(t)
	bounds := level.Bounds()
	landed := false
	for i := range 600 {
		s.step(i, 1.0/60, vec.Vec2{Y: -30})
		box := s.player.Bounds()
		require.True(t, bounds.Contains(box), "step %d: %v left the level", i, box)
		_, stuck := s.space.QueryFirst(box, playerFilter.Collision)
		require.False(t, stuck, "step %d: %v overlaps ground", i, box)
		landed = landed || s.grounded
	}
	assert.True(t, landed)
}

func TestSimTurnsAround(t *testing.T) {
	s, _ := newTestSim(t)
	turned := false
	for i := range 600 {
		s.step(i, 1.0/60, vec.Vec2{Y: -30})
		if s.dir < 0 {
			turned = true
			break
		}
	}
	assert.True(t, turned)
}

func TestSimReload(t *testing.T) {
	s, _ := newTestSim(t)
	for i := range 30 {
		s.step(i, 1.0/60, vec.Vec2{Y: -30})
	}

	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: small
spawn: "@"
legend:
  "#": {category: 2, solid: true}
rows:
  - ".@."
  - "###"
`), 0o644))
	s.reload(path)

	assert.Len(t, s.tiles, 1)
	assert.Equal(t, 2, s.space.Len())
	pos := s.player.Position()
	assert.InDelta(t, 1.5, pos.X, 1e-9)
	assert.InDelta(t, 1.0, pos.Y, 1e-9)
	assert.Equal(t, 0, s.space.ContactCount())

	// a broken file keeps the current level
	require.NoError(t, os.WriteFile(path, []byte("rows: [\"?\"]\n"), 0o644))
	s.reload(path)
	assert.Len(t, s.tiles, 1)
}
