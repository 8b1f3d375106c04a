// Package tilemap loads rectangular tile levels from YAML and registers their
// colliders in an aabb.Space.
//
// A level is a list of text rows, top row first. Each rune is looked up in the
// legend; space and '.' are always empty. The map's bottom-left corner sits at
// Origin and one tile is TileSize world units wide, with Y pointing up.
package tilemap

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/setanarut/aabb"
	"github.com/setanarut/vec"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownTile = errors.New("unknown tile")
	ErrBadLegend   = errors.New("legend keys must be a single rune")
	ErrBadTileSize = errors.New("tile_size must be positive")
)

// Tile describes one legend entry.
type Tile struct {
	Name      string    `yaml:"name"`
	Category  aabb.Mask `yaml:"category"`
	Collision aabb.Mask `yaml:"collision"`
	Trigger   aabb.Mask `yaml:"trigger"`
	// Solid tiles are merged with their neighbours into larger boxes.
	// Other tiles get one collider each.
	Solid bool `yaml:"solid"`
}

// Filter returns the collider masks of the tile.
func (t Tile) Filter() aabb.Filter {
	return aabb.Filter{Category: t.Category, Collision: t.Collision, Trigger: t.Trigger}
}

type Level struct {
	Name     string          `yaml:"name"`
	TileSize float64         `yaml:"tile_size"`
	Origin   vec.Vec2        `yaml:"origin"`
	Rows     []string        `yaml:"rows"`
	Legend   map[string]Tile `yaml:"legend"`
	// SpawnRune marks where the player starts. The spawn tile itself is empty.
	SpawnRune string `yaml:"spawn"`

	legend map[rune]Tile
	grid   [][]rune
	width  int
}

// Rect is a run of equal tiles covering columns [Col, Col+W) and rows
// [Row, Row+H), counted from the top-left of the map.
type Rect struct {
	Box  aabb.AABB
	Tile Tile
	Rune rune

	Col, Row, W, H int
}

// Parse decodes and validates a YAML level.
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if err := l.init(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses a level file.
func Load(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("tilemap: load %s: %w", filename, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tilemap: unmarshal %s: %w", filename, err)
	}
	return l, nil
}

func (l *Level) init() error {
	if l.TileSize == 0 {
		l.TileSize = 1
	}
	if l.TileSize < 0 {
		return ErrBadTileSize
	}

	l.legend = make(map[rune]Tile, len(l.Legend))
	for key, tile := range l.Legend {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return fmt.Errorf("%w: %q", ErrBadLegend, key)
		}
		l.legend[r] = tile
	}
	spawn := l.spawnRune()

	l.grid = make([][]rune, len(l.Rows))
	l.width = 0
	for row, line := range l.Rows {
		runes := []rune(line)
		for col, r := range runes {
			if isEmpty(r) || r == spawn {
				continue
			}
			if _, ok := l.legend[r]; !ok {
				return fmt.Errorf("%w %q at row %d col %d", ErrUnknownTile, r, row, col)
			}
		}
		l.grid[row] = runes
		l.width = max(l.width, len(runes))
	}
	return nil
}

func isEmpty(r rune) bool {
	return r == ' ' || r == '.'
}

func (l *Level) spawnRune() rune {
	if l.SpawnRune == "" {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.SpawnRune)
	return r
}

// Width returns the number of columns of the widest row.
func (l *Level) Width() int {
	return l.width
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return len(l.grid)
}

// At returns the rune at col, row. Cells past the end of a short row are
// empty.
func (l *Level) At(col, row int) rune {
	if row < 0 || row >= len(l.grid) || col < 0 || col >= len(l.grid[row]) {
		return ' '
	}
	return l.grid[row][col]
}

// Bounds returns the world rectangle covered by the map.
func (l *Level) Bounds() aabb.AABB {
	return l.cellBox(0, 0, l.width, len(l.grid))
}

// cellBox converts a block of tiles to world space.
func (l *Level) cellBox(col, row, w, h int) aabb.AABB {
	left := l.Origin.X + float64(col)*l.TileSize
	bottom := l.Origin.Y + float64(len(l.grid)-row-h)*l.TileSize
	return aabb.NewAABB(left, bottom, left+float64(w)*l.TileSize, bottom+float64(h)*l.TileSize)
}

// Spawn returns the bottom centre of the first spawn tile, scanning rows
// from the top.
func (l *Level) Spawn() (vec.Vec2, bool) {
	spawn := l.spawnRune()
	if spawn == utf8.RuneError {
		return vec.Vec2{}, false
	}
	for row := range l.grid {
		for col, r := range l.grid[row] {
			if r == spawn {
				box := l.cellBox(col, row, 1, 1)
				return vec.Vec2{X: box.Center().X, Y: box.Bottom()}, true
			}
		}
	}
	return vec.Vec2{}, false
}

// Rects lists the colliders the level needs. Solid tiles are grown greedily
// into rectangles, first along the row and then downwards, only merging
// tiles with the same rune. Every other legend tile is its own rectangle.
func (l *Level) Rects() []Rect {
	var rects []Rect
	w, h := l.width, len(l.grid)
	processed := make([]bool, w*h)
	spawn := l.spawnRune()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if processed[idx] {
				continue
			}
			processed[idx] = true
			r := l.At(x, y)
			if isEmpty(r) || r == spawn {
				continue
			}
			tile := l.legend[r]
			if !tile.Solid {
				rects = append(rects, Rect{Box: l.cellBox(x, y, 1, 1), Tile: tile, Rune: r, Col: x, Row: y, W: 1, H: 1})
				continue
			}

			rw := 1
			for x+rw < w && !processed[y*w+x+rw] && l.At(x+rw, y) == r {
				rw++
			}
			rh := 1
		heightLoop:
			for y+rh < h {
				for xi := x; xi < x+rw; xi++ {
					if processed[(y+rh)*w+xi] || l.At(xi, y+rh) != r {
						break heightLoop
					}
				}
				rh++
			}

			for yy := y; yy < y+rh; yy++ {
				for xx := x; xx < x+rw; xx++ {
					processed[yy*w+xx] = true
				}
			}
			rects = append(rects, Rect{Box: l.cellBox(x, y, rw, rh), Tile: tile, Rune: r, Col: x, Row: y, W: rw, H: rh})
		}
	}
	return rects
}
