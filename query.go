package aabb

import (
	"iter"

	"github.com/setanarut/aabb/bitset"
)

// QueryColliders yields the ids of colliders whose box overlaps box and whose
// category intersects mask, in ascending id order. The space is locked while
// the sequence runs.
func (s *Space[T]) QueryColliders(box AABB, mask Mask) iter.Seq[int] {
	return func(yield func(int) bool) {
		s.assertUnlocked("QueryColliders")
		s.lock()
		defer s.unlock()

		s.broadPhase(box)
		lister := bitset.NewLister(s.candidates)
		for slot, ok := lister.Next(); ok; slot, ok = lister.Next() {
			c := &s.slots[slot]
			if c.filter.Category&mask != 0 && c.box.Overlaps(box) {
				if !yield(slot) {
					return
				}
			}
		}
	}
}

// QueryFirst returns the lowest id that QueryColliders would yield.
func (s *Space[T]) QueryFirst(box AABB, mask Mask) (int, bool) {
	for id := range s.QueryColliders(box, mask) {
		return id, true
	}
	return NoID, false
}
