package aabb_test

import (
	"slices"
	"testing"

	"github.com/setanarut/aabb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var playerFilter = aabb.Filter{Category: catPlayer, Collision: catSolid, Trigger: catTrigger}

func TestBodyPosition(t *testing.T) {
	s := newSpace(t)
	b := aabb.NewBody(s, aabb.NewAABB(-0.5, 0, 0.5, 2), vecOf(3, 4), playerFilter, "hero")
	require.NotNil(t, b)

	assert.Equal(t, aabb.NewAABB(2.5, 4, 3.5, 6), b.Bounds())
	assert.Equal(t, vecOf(3, 4), b.Position())
	assert.Equal(t, aabb.NewAABB(-0.5, 0, 0.5, 2), b.Local())
	assert.Equal(t, "hero", s.Data(b.ID()))

	b.SetPosition(vecOf(-1, 0))
	assert.Equal(t, aabb.NewAABB(-1.5, 0, -0.5, 2), b.Bounds())
	assert.Equal(t, vecOf(-1, 0), b.Position())
}

func TestBodyStepLands(t *testing.T) {
	s := newSpace(t)
	addSolid(s, aabb.NewAABB(-10, -1, 10, 0))
	b := aabb.NewBody(s, aabb.NewAABB(0, 0, 1, 1), vecOf(0, 3), playerFilter, "hero")
	gravity := vecOf(0, -20)

	for range 120 {
		b.Step(1.0/60, gravity)
		if b.Grounded() {
			break
		}
	}
	require.True(t, b.Grounded())
	assert.Equal(t, 0.0, b.Bounds().Bottom())
	assert.Equal(t, 0.0, b.Velocity.Y, "vertical velocity is zeroed on landing")

	// resting bodies stay grounded under gravity
	for range 10 {
		c := b.Step(1.0/60, gravity)
		assert.True(t, c.HitBottom)
	}
	assert.Equal(t, 0.0, b.Bounds().Bottom())
}

func TestBodyStepWall(t *testing.T) {
	s := newSpace(t)
	addSolid(s, aabb.NewAABB(2, -5, 3, 5))
	b := aabb.NewBody(s, aabb.NewAABB(0, 0, 1, 1), vecOf(0, 0), playerFilter, "hero")
	b.Velocity = vecOf(120, 0)

	c := b.Step(1.0/60, vecOf(0, 0))
	assert.True(t, c.HitRight)
	assert.Equal(t, 0.0, b.Velocity.X)
	assert.Equal(t, 2.0, b.Bounds().Right())
	assert.False(t, b.Grounded())
}

func TestBodyTriggersAndRemove(t *testing.T) {
	s := newSpace(t)
	coin := addTrigger(s, aabb.NewAABB(0, 0, 1, 1), "coin")
	b := aabb.NewBody(s, aabb.NewAABB(0, 0, 1, 1), vecOf(0.5, 0), playerFilter, "hero")

	assert.Equal(t, []aabb.TriggerEvent{{Type: aabb.TriggerEnter, Trigger: coin}}, slices.Collect(b.Triggers()))

	id := b.ID()
	b.Remove()
	assert.Equal(t, aabb.NoID, b.ID())
	assert.False(t, s.Contains(id))
	assert.Equal(t, 0, s.ContactCount())
}

func TestNewBodyFullLenientSpace(t *testing.T) {
	cfg := aabb.DefaultConfig()
	cfg.SlotCount = 32
	cfg.Lenient = true
	s := aabb.NewSpace[string](cfg)
	for range 32 {
		addSolid(s, aabb.NewAABB(0, 0, 1, 1))
	}
	assert.Nil(t, aabb.NewBody(s, aabb.NewAABB(0, 0, 1, 1), vecOf(0, 0), playerFilter, "hero"))
}
