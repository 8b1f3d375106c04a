package aabb

import (
	"fmt"
	"iter"

	"github.com/setanarut/vec"
)

// Body is a kinematic character helper that owns one collider. Its collider
// is a rectangle in body-local coordinates placed at the body position, so
// the world box is Local translated by Position.
type Body[T any] struct {
	// Velocity is integrated by Step, in units per second.
	Velocity vec.Vec2

	space    *Space[T]
	id       int
	local    AABB
	grounded bool
}

// NewBody registers a collider for local placed at pos and returns the body
// owning it.
func NewBody[T any](space *Space[T], local AABB, pos vec.Vec2, filter Filter, data T) *Body[T] {
	id := space.AddColliderFilter(local.Translate(pos), filter, data)
	if id == NoID {
		return nil
	}
	return &Body[T]{space: space, id: id, local: local}
}

// String returns body id as string
func (b *Body[T]) String() string {
	return fmt.Sprint("Body ", b.id, " ", b.space.Bounds(b.id))
}

// ID returns the collider slot owned by the body.
func (b *Body[T]) ID() int {
	return b.id
}

// Local returns the collider rectangle in body coordinates.
func (b *Body[T]) Local() AABB {
	return b.local
}

// Bounds returns the collider rectangle in world coordinates.
func (b *Body[T]) Bounds() AABB {
	return b.space.Bounds(b.id)
}

// Position returns the body origin in world coordinates.
func (b *Body[T]) Position() vec.Vec2 {
	return b.space.Bounds(b.id).P0.Sub(b.local.P0)
}

// SetPosition teleports the body without collision checks.
func (b *Body[T]) SetPosition(pos vec.Vec2) {
	b.space.SetBounds(b.id, b.local.Translate(pos))
}

// Grounded reports whether the last Move or Step stopped on the bottom edge.
func (b *Body[T]) Grounded() bool {
	return b.grounded
}

// Move slides the body by offset and returns the edges that were hit.
func (b *Body[T]) Move(offset vec.Vec2) Collision {
	c := b.space.Move(b.id, offset)
	b.grounded = c.HitBottom
	return c
}

// Step applies gravity to Velocity over dt, moves by Velocity*dt and zeroes
// the velocity component along any axis that was stopped.
func (b *Body[T]) Step(dt float64, gravity vec.Vec2) Collision {
	b.Velocity = b.Velocity.Add(gravity.Scale(dt))
	c := b.Move(b.Velocity.Scale(dt))
	if c.HitVertical() {
		b.Velocity.Y = 0
	}
	if c.HitHorizontal() {
		b.Velocity.X = 0
	}
	return c
}

// Triggers runs QueryTriggers for the body's collider.
func (b *Body[T]) Triggers() iter.Seq[TriggerEvent] {
	return b.space.QueryTriggers(b.id)
}

// Remove releases the collider. The body must not be used afterwards.
func (b *Body[T]) Remove() {
	b.space.RemoveCollider(b.id)
	b.id = NoID
}
