package aabb

import "github.com/setanarut/vec"

// Draw flags
const (
	DrawColliders = 1 << 0
	DrawContacts  = 1 << 1
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer receives debug geometry from DrawSpace. Implement it on top of
// whatever renderer the game uses.
type Drawer interface {
	DrawBox(box AABB, outline, fill FColor, data any)
	DrawSegment(a, b vec.Vec2, fill FColor, data any)

	Flags() uint
	OutlineColor() FColor
	// BoxColor picks the fill color for collider id with the given masks.
	BoxColor(id int, filter Filter, data any) FColor
	ContactColor() FColor
	Data() any
}

// DrawSpace draws every live collider and, when DrawContacts is set, a segment
// between the centers of each collider/trigger pair with an open contact.
func DrawSpace[T any](space *Space[T], drawer Drawer) {
	data := drawer.Data()
	flags := drawer.Flags()

	if flags&DrawColliders != 0 {
		outline := drawer.OutlineColor()
		for id := range space.Colliders() {
			c := &space.slots[id]
			drawer.DrawBox(c.box, outline, drawer.BoxColor(id, c.filter, data), data)
		}
	}

	if flags&DrawContacts != 0 {
		color := drawer.ContactColor()
		for i := 0; i < space.nContacts; i++ {
			con := space.contacts[i]
			a := space.slots[con.collider].box.Center()
			b := space.slots[con.trigger].box.Center()
			drawer.DrawSegment(a, b, color, data)
		}
	}
}
