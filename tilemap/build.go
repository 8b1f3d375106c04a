package tilemap

import "github.com/setanarut/aabb"

// Build registers a collider for every rectangle of level and returns their
// ids in Rects order. data supplies the payload for each rectangle and may be
// nil, in which case colliders carry the zero T.
//
// Build stops at the first collider the space refuses, which only happens
// for a lenient space that ran out of slots; the ids added so far are
// returned.
func Build[T any](space *aabb.Space[T], level *Level, data func(Rect) T) []int {
	rects := level.Rects()
	ids := make([]int, 0, len(rects))
	for _, r := range rects {
		var payload T
		if data != nil {
			payload = data(r)
		}
		id := space.AddColliderFilter(r.Box, r.Tile.Filter(), payload)
		if id == aabb.NoID {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// Clear removes the colliders returned by Build.
func Clear[T any](space *aabb.Space[T], ids []int) {
	for _, id := range ids {
		if space.Contains(id) {
			space.RemoveCollider(id)
		}
	}
}
