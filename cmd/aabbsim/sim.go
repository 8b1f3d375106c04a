package main

import (
	"errors"
	"log/slog"

	"github.com/setanarut/aabb"
	"github.com/setanarut/aabb/tilemap"
	"github.com/setanarut/vec"
)

const jumpSpeed = 12

var (
	playerShape  = aabb.NewAABB(-0.4, 0, 0.4, 0.9)
	playerFilter = aabb.Filter{
		Category:  aabb.Category(0),
		Collision: aabb.Category(1),
		Trigger:   aabb.Category(2),
	}
)

// sim walks a player back and forth across a level, jumping whenever it
// turns around on the ground.
type sim struct {
	logger *slog.Logger
	space  *aabb.Space[string]
	player *aabb.Body[string]
	tiles  []int

	speed    float64
	dir      float64
	grounded bool
}

func newSim(cfg aabb.Config, logger *slog.Logger, speed float64) *sim {
	return &sim{
		logger: logger,
		space:  aabb.NewSpace[string](cfg),
		speed:  speed,
		dir:    1,
	}
}

// load replaces the level colliders and puts the player on the spawn point.
func (s *sim) load(level *tilemap.Level) error {
	tilemap.Clear(s.space, s.tiles)
	s.tiles = tilemap.Build(s.space, level, func(r tilemap.Rect) string {
		if r.Tile.Name != "" {
			return r.Tile.Name
		}
		return string(r.Rune)
	})
	if n := len(level.Rects()); len(s.tiles) < n {
		s.logger.Warn("level truncated", "built", len(s.tiles), "want", n)
	}

	spawn, ok := level.Spawn()
	if !ok {
		spawn = level.Bounds().Center()
	}
	if s.player == nil {
		s.player = aabb.NewBody(s.space, playerShape, spawn, playerFilter, "player")
		if s.player == nil {
			return errors.New("aabbsim: no free slot for the player")
		}
	} else {
		s.player.SetPosition(spawn)
		s.player.Velocity = vec.Vec2{}
	}
	s.grounded = false

	s.logger.Info("level loaded", "name", level.Name, "colliders", len(s.tiles), "spawn", spawn)
	return nil
}

func (s *sim) reload(filename string) {
	level, err := tilemap.Load(filename)
	if err != nil {
		s.logger.Error("reload", "error", err)
		return
	}
	if err := s.load(level); err != nil {
		s.logger.Error("reload", "error", err)
	}
}

func (s *sim) step(i int, dt float64, gravity vec.Vec2) {
	s.player.Velocity.X = s.dir * s.speed
	c := s.player.Step(dt, gravity)
	if c.Hit() {
		s.logger.Debug("hit", "step", i, "collision", c, "bounds", s.player.Bounds())
	}

	if c.HitHorizontal() {
		s.dir = -s.dir
		if s.player.Grounded() {
			s.player.Velocity.Y = jumpSpeed
		}
	}

	if g := s.player.Grounded(); g != s.grounded {
		s.grounded = g
		s.logger.Info("grounded", "step", i, "grounded", g, "position", s.player.Position())
	}

	for ev := range s.player.Triggers() {
		if ev.Type == aabb.TriggerStay {
			continue
		}
		s.logger.Info("trigger", "step", i, "event", ev.Type, "tile", s.space.Data(ev.Trigger), "id", ev.Trigger)
	}
}
