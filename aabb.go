// Package aabb is a small 2D collision engine for axis-aligned bounding boxes.
//
// It covers the mechanics platformers need without a rigid-body solver:
// kinematic "move and slide" against solid colliders, category/collision/trigger
// masks, and persistent trigger overlaps reported as enter/stay/exit events.
// Colliders live in fixed-capacity slots and are located through a spatial
// hash whose buckets are bit sets of slot ids.
//
// Y grows upward. An AABB's P0 is its (left, bottom) corner and P1 its
// (right, top) corner.
package aabb

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

// AABB is an axis-aligned 2D bounding box. P0 is the min corner and P1 the max
// corner; P0.X <= P1.X and P0.Y <= P1.Y is assumed but not enforced.
type AABB struct {
	P0, P1 vec.Vec2
}

// NewAABB is convenience constructor for AABB structs.
func NewAABB(l, b, r, t float64) AABB {
	return AABB{
		P0: vec.Vec2{X: l, Y: b},
		P1: vec.Vec2{X: r, Y: t},
	}
}

// NewAABBForExtents constructs an AABB centered on a point with the given extents (half sizes).
func NewAABBForExtents(c vec.Vec2, hw, hh float64) AABB {
	return NewAABB(c.X-hw, c.Y-hh, c.X+hw, c.Y+hh)
}

func (bb AABB) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", bb.P0.X, bb.P0.Y, bb.P1.X, bb.P1.Y)
}

func (bb AABB) Left() float64   { return bb.P0.X }
func (bb AABB) Right() float64  { return bb.P1.X }
func (bb AABB) Bottom() float64 { return bb.P0.Y }
func (bb AABB) Top() float64    { return bb.P1.Y }

// Width returns P1.X - P0.X.
func (bb AABB) Width() float64 { return bb.P1.X - bb.P0.X }

// Height returns P1.Y - P0.Y.
func (bb AABB) Height() float64 { return bb.P1.Y - bb.P0.Y }

// Size returns the box dimensions.
func (bb AABB) Size() vec.Vec2 {
	return bb.P1.Sub(bb.P0)
}

// Center returns the center of the box.
func (bb AABB) Center() vec.Vec2 {
	return bb.P0.Add(bb.P1).Scale(0.5)
}

// Translate returns the box moved by offset.
func (bb AABB) Translate(offset vec.Vec2) AABB {
	return AABB{
		P0: bb.P0.Add(offset),
		P1: bb.P1.Add(offset),
	}
}

// Overlaps reports whether the interiors of bb and other intersect. Boxes
// that only share an edge or a corner do not overlap.
func (bb AABB) Overlaps(other AABB) bool {
	return bb.P0.X < other.P1.X && bb.P1.X > other.P0.X &&
		bb.P0.Y < other.P1.Y && bb.P1.Y > other.P0.Y
}

// Contains returns true if other lies completely within bb.
func (bb AABB) Contains(other AABB) bool {
	return bb.P0.X <= other.P0.X && bb.P1.X >= other.P1.X &&
		bb.P0.Y <= other.P0.Y && bb.P1.Y >= other.P1.Y
}

// Merge returns a bounding box that holds both bounding boxes.
func (bb AABB) Merge(other AABB) AABB {
	return NewAABB(
		math.Min(bb.P0.X, other.P0.X),
		math.Min(bb.P0.Y, other.P0.Y),
		math.Max(bb.P1.X, other.P1.X),
		math.Max(bb.P1.Y, other.P1.Y),
	)
}

// Sweep returns the box stretched toward offset on each axis: the union of
// bb and bb.Translate(offset).
func (bb AABB) Sweep(offset vec.Vec2) AABB {
	if offset.X < 0 {
		bb.P0.X += offset.X
	} else {
		bb.P1.X += offset.X
	}
	if offset.Y < 0 {
		bb.P0.Y += offset.Y
	} else {
		bb.P1.Y += offset.Y
	}
	return bb
}
