package aabb

// NoID is returned in place of a slot id when no collider could be created.
const NoID = -1

// collider is the record stored in each slot.
type collider[T any] struct {
	box    AABB
	filter Filter
	data   T
}

func (c *collider[T]) collides(other *collider[T]) bool {
	return c.filter.Collides(other.filter) && c.box.Overlaps(other.box)
}

func (c *collider[T]) triggers(other *collider[T]) bool {
	return c.filter.Triggers(other.filter) && c.box.Overlaps(other.box)
}
