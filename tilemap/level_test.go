package tilemap_test

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

const testLevel = `
name: test
tile_size: 2
origin: {x: 0, y: 0}
spawn: "@"
legend:
  "#": {name: ground, category: 2, solid: true}
  "~": {name: water, category: 4}
rows:
  - "......"
  - ".@..~."
  - "##..##"
  - "######"
`

func mustParse(t *testing.T, src string) *tilemap.Level {
	t.Helper()
	l, err := tilemap.Parse([]byte(src))
	require.NoError(t, err)
	return l
}

func TestParse(t *testing.T) {
	l := mustParse(t, testLevel)
	assert.Equal(t, "test", l.Name)
	assert.Equal(t, 2.0, l.TileSize)
	assert.Equal(t, 6, l.Width())
	assert.Equal(t, 4, l.Height())
	assert.Equal(t, aabb.NewAABB(0, 0, 12, 8), l.Bounds())
	assert.Equal(t, '~', l.At(4, 1))
	assert.Equal(t, ' ', l.At(10, 1))
	assert.Equal(t, aabb.Filter{Category: 2}, l.Legend["#"].Filter())

	spawn, ok := l.Spawn()
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 3, Y: 4}, spawn)
}

func TestRects(t *testing.T) {
	l := mustParse(t, testLevel)
	rects := l.Rects()
	require.Len(t, rects, 4)

	assert.Equal(t, '~', rects[0].Rune)
	assert.Equal(t, aabb.NewAABB(8, 4, 10, 6), rects[0].Box)

	assert.Equal(t, aabb.NewAABB(0, 0, 4, 4), rects[1].Box)
	assert.Equal(t, [4]int{0, 2, 2, 2}, [4]int{rects[1].Col, rects[1].Row, rects[1].W, rects[1].H})
	assert.Equal(t, aabb.NewAABB(8, 0, 12, 4), rects[2].Box)
	assert.Equal(t, aabb.NewAABB(4, 0, 8, 2), rects[3].Box)
	for _, r := range rects[1:] {
		assert.Equal(t, "ground", r.Tile.Name)
	}
}

func TestRectsMerging(t *testing.T) {
	tests := []struct {
		name  string
		rows  string
		count int
	}{
		{"block", `["##", "##"]`, 1},
		{"l shape", `["#..", "###"]`, 2},
		{"different runes stay apart", `["#=#"]`, 3},
		{"triggers are never merged", `["~~~"]`, 3},
		{"ragged rows", `["####", "##"]`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustParse(t, `
legend:
  "#": {solid: true, category: 1}
  "=": {solid: true, category: 1}
  "~": {category: 2}
rows: `+tt.rows)
			rects := l.Rects()
			assert.Len(t, rects, tt.count)

			// every tile is covered exactly once
			covered := map[[2]int]int{}
			for _, r := range rects {
				for y := r.Row; y < r.Row+r.H; y++ {
					for x := r.Col; x < r.Col+r.W; x++ {
						covered[[2]int{x, y}]++
						assert.Equal(t, r.Rune, l.At(x, y))
					}
				}
			}
			for pos, n := range covered {
				assert.Equal(t, 1, n, "tile %v", pos)
			}
			for y := range l.Height() {
				for x := range l.Width() {
					r := l.At(x, y)
					if r != ' ' && r != '.' {
						assert.Contains(t, covered, [2]int{x, y})
					}
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := tilemap.Parse([]byte("rows: [\"#x\"]\nlegend: {\"#\": {solid: true}}\n"))
	assert.ErrorIs(t, err, tilemap.ErrUnknownTile)

	_, err = tilemap.Parse([]byte("legend: {\"ab\": {solid: true}}\n"))
	assert.ErrorIs(t, err, tilemap.ErrBadLegend)

	_, err = tilemap.Parse([]byte("tile_size: -1\n"))
	assert.ErrorIs(t, err, tilemap.ErrBadTileSize)

	_, err = tilemap.Parse([]byte("rows: {oops\n"))
	assert.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	l := mustParse(t, `rows: [". ."]`)
	assert.Equal(t, 1.0, l.TileSize)
	_, ok := l.Spawn()
	assert.False(t, ok, "no spawn rune configured")
	assert.Empty(t, l.Rects())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testLevel), 0o644))

	l, err := tilemap.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", l.Name)

	_, err = tilemap.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: [\"?\"]\n"), 0o644))
	_, err = tilemap.Load(bad)
	assert.ErrorIs(t, err, tilemap.ErrUnknownTile)
	assert.Contains(t, err.Error(), "tilemap: unmarshal")
}
