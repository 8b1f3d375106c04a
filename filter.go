package aabb

// Mask is a 32-bit category bitmask.
type Mask uint32

const (
	// NoCategories matches nothing.
	NoCategories Mask = 0
	// AllCategories matches every category.
	AllCategories Mask = ^Mask(0)
)

// Category returns the mask for a single category number in [0, 32).
func Category(n uint) Mask {
	return 1 << n
}

// Filter groups the three masks of a collider.
type Filter struct {
	// Category is a bitmask of the categories this collider belongs to.
	Category Mask `yaml:"category"`
	// Collision is a bitmask of the categories that stop this collider in Move.
	Collision Mask `yaml:"collision"`
	// Trigger is a bitmask of the categories this collider reports trigger events against.
	Trigger Mask `yaml:"trigger"`
}

// FilterSolid is a static collider in the given category that is never moved
// and reports nothing.
func FilterSolid(category Mask) Filter {
	return Filter{Category: category}
}

// Collides reports whether a collider with this filter is stopped by other.
// Only the mover's collision mask and the other's category are consulted.
func (f Filter) Collides(other Filter) bool {
	return f.Collision&other.Category != 0
}

// Triggers reports whether a collider with this filter fires trigger events
// against other.
func (f Filter) Triggers(other Filter) bool {
	return f.Trigger&other.Category != 0
}
