package aabb_test

import (
	"testing"

	"github.com/setanarut/aabb"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
)

type recordingDrawer struct {
	flags    uint
	boxes    []aabb.AABB
	colored  []int
	segments [][2]vec.Vec2
}

func (d *recordingDrawer) DrawBox(box aabb.AABB, outline, fill aabb.FColor, data any) {
	d.boxes = append(d.boxes, box)
}

func (d *recordingDrawer) DrawSegment(a, b vec.Vec2, fill aabb.FColor, data any) {
	d.segments = append(d.segments, [2]vec.Vec2{a, b})
}

func (d *recordingDrawer) Flags() uint               { return d.flags }
func (d *recordingDrawer) OutlineColor() aabb.FColor { return aabb.FColor{A: 1} }
func (d *recordingDrawer) ContactColor() aabb.FColor { return aabb.FColor{R: 1, A: 1} }
func (d *recordingDrawer) Data() any                 { return nil }

func (d *recordingDrawer) BoxColor(id int, filter aabb.Filter, data any) aabb.FColor {
	d.colored = append(d.colored, id)
	return aabb.FColor{G: 1, A: 1}
}

func TestDrawSpace(t *testing.T) {
	s := newSpace(t)
	addSolid(s, aabb.NewAABB(-5, -1, 5, 0))
	addTrigger(s, aabb.NewAABB(2, 0, 4, 2), "zone")
	player := addPlayer(s, aabb.NewAABB(1, 0, 3, 2))
	events(s, player)

	d := &recordingDrawer{flags: aabb.DrawColliders | aabb.DrawContacts}
	aabb.DrawSpace(s, d)

	assert.Equal(t, []int{0, 1, 2}, d.colored)
	assert.Equal(t, []aabb.AABB{
		aabb.NewAABB(-5, -1, 5, 0),
		aabb.NewAABB(2, 0, 4, 2),
		aabb.NewAABB(1, 0, 3, 2),
	}, d.boxes)
	assert.Equal(t, [][2]vec.Vec2{{vecOf(2, 1), vecOf(3, 1)}}, d.segments)
}

func TestDrawSpaceFlags(t *testing.T) {
	s := newSpace(t)
	addSolid(s, aabb.NewAABB(0, 0, 1, 1))

	d := &recordingDrawer{}
	aabb.DrawSpace(s, d)
	assert.Empty(t, d.boxes)
	assert.Empty(t, d.segments)

	d.flags = aabb.DrawContacts
	aabb.DrawSpace(s, d)
	assert.Empty(t, d.boxes)
}
