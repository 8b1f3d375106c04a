package aabb

import "math"

// Spatial hashing. Logical grid cells are 1x1 squares on an unbounded plane;
// they are folded onto the finite bucket array with a 32-bit FNV-1a style
// hash. A bucket is itself a set of slots, so cells that collide in the hash
// simply share a bucket and the narrow phase filters the extra candidates.

const (
	fnvOffset uint32 = 0x811c9dc5
	fnvPrime  uint32 = 0x01000193
)

// bucketIndex maps the cell (x, y) to a bucket. The hash is order sensitive:
// (x, y) and (y, x) usually land in different buckets.
func bucketIndex(x, y, n int) int {
	h := (fnvOffset ^ uint32(int32(x))) * fnvPrime
	h = (h ^ uint32(int32(y))) * fnvPrime
	r := int32(h) % int32(n)
	if r < 0 {
		r += int32(n)
	}
	return int(r)
}

// cellRange returns the inclusive span of grid cells covered by box. Corners
// are rounded to the nearest integer (ties to even) instead of floored, so
// boxes aligned with grid lines do not straddle a cell boundary because of
// floating-point noise.
func cellRange(box AABB) (minX, minY, maxX, maxY int) {
	return int(math.RoundToEven(box.P0.X)),
		int(math.RoundToEven(box.P0.Y)),
		int(math.RoundToEven(box.P1.X)),
		int(math.RoundToEven(box.P1.Y))
}

// hash marks id in every bucket its box covers.
func (s *Space[T]) hash(id int) {
	minX, minY, maxX, maxY := cellRange(s.slots[id].box)
	n := len(s.buckets)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			s.buckets[bucketIndex(x, y, n)].Mark(id)
		}
	}
}

// unhash clears id from every bucket its current box covers. It must run
// before the box changes.
func (s *Space[T]) unhash(id int) {
	minX, minY, maxX, maxY := cellRange(s.slots[id].box)
	n := len(s.buckets)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			s.buckets[bucketIndex(x, y, n)].Clear(id)
		}
	}
}

// broadPhase unions every bucket covered by region into s.candidates. The
// result is a superset of the colliders overlapping region.
func (s *Space[T]) broadPhase(region AABB) {
	minX, minY, maxX, maxY := cellRange(region)
	n := len(s.buckets)
	s.candidates.ClearAll()
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			s.candidates.Union(s.buckets[bucketIndex(x, y, n)])
		}
	}
}
