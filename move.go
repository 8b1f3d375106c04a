package aabb

import (
	"github.com/setanarut/aabb/bitset"
	"github.com/setanarut/vec"
)

// Collision records which edges of a mover were stopped during Move.
type Collision struct {
	HitTop    bool
	HitBottom bool
	HitLeft   bool
	HitRight  bool
}

// HitVertical reports a stop on the top or bottom edge.
func (c Collision) HitVertical() bool { return c.HitTop || c.HitBottom }

// HitHorizontal reports a stop on the left or right edge.
func (c Collision) HitHorizontal() bool { return c.HitLeft || c.HitRight }

// Hit reports a stop on any edge.
func (c Collision) Hit() bool { return c.HitVertical() || c.HitHorizontal() }

// Move translates collider id by offset, going as far as it can without
// overlapping a collider whose category is in id's collision mask.
//
// The motion is split per axis: Y is resolved completely, then X, which lets
// a mover slide along walls and settle snugly into corners. All candidates
// come from a single broad phase over the swept box. A zero Y offset is
// resolved as downward motion so a resting body is re-grounded every call.
func (s *Space[T]) Move(id int, offset vec.Vec2) Collision {
	s.assertUnlocked("Move")
	s.assertLive("Move", id)

	var result Collision

	// unhash so we don't self-collide, and because the box is about to change
	s.unhash(id)

	mover := &s.slots[id]
	s.broadPhase(mover.box.Sweep(offset))
	lister := bitset.NewLister(s.candidates)
	size := mover.box.Size()

	if offset.Y > 0 {
		// moving up
		mover.box.P1.Y += offset.Y
		for slot, ok := lister.Next(); ok; slot, ok = lister.Next() {
			if mover.collides(&s.slots[slot]) {
				mover.box.P1.Y = s.slots[slot].box.P0.Y
				result.HitTop = true
			}
		}
		mover.box.P0.Y = mover.box.P1.Y - size.Y
	} else {
		// moving down
		mover.box.P0.Y += offset.Y
		for slot, ok := lister.Next(); ok; slot, ok = lister.Next() {
			if mover.collides(&s.slots[slot]) {
				mover.box.P0.Y = s.slots[slot].box.P1.Y
				result.HitBottom = true
			}
		}
		mover.box.P1.Y = mover.box.P0.Y + size.Y
	}

	lister.Reset()

	if offset.X > 0 {
		// moving right
		mover.box.P1.X += offset.X
		for slot, ok := lister.Next(); ok; slot, ok = lister.Next() {
			if mover.collides(&s.slots[slot]) {
				mover.box.P1.X = s.slots[slot].box.P0.X
				result.HitRight = true
			}
		}
		mover.box.P0.X = mover.box.P1.X - size.X
	} else {
		// moving left
		mover.box.P0.X += offset.X
		for slot, ok := lister.Next(); ok; slot, ok = lister.Next() {
			if mover.collides(&s.slots[slot]) {
				mover.box.P0.X = s.slots[slot].box.P1.X
				result.HitLeft = true
			}
		}
		mover.box.P1.X = mover.box.P0.X + size.X
	}

	s.hash(id)
	return result
}
