package aabb

import (
	"iter"
	"log/slog"

	"github.com/setanarut/aabb/bitset"
)

// Space owns every collider, the spatial hash and the open trigger contacts.
// T is the type of the payload attached to each collider.
//
// A Space is single-threaded: it is driven by one game loop and no call may
// overlap another on the same Space. Create it once per simulation and pass
// it to whatever needs it.
type Space[T any] struct {
	logger  *slog.Logger
	lenient bool

	// structure-of-arrays backing store, block-allocated up front
	freeSlots  *bitset.BitSet
	candidates *bitset.BitSet
	slots      []collider[T]
	buckets    []*bitset.BitSet

	contacts       []contact
	nContacts      int
	contactScratch *bitset.BitSet
	oldToNew       []int
	newToOld       []int

	locked bool
}

// NewSpace allocates a Space sized by cfg. It panics with a *ContractError
// wrapping ErrInvalidCapacity when cfg cannot be honored.
func NewSpace[T any](cfg Config) *Space[T] {
	if err := cfg.Validate(); err != nil {
		panic(&ContractError{Op: "NewSpace", ID: NoID, Err: err})
	}
	cfg = cfg.normalized()

	s := &Space[T]{
		logger:         cfg.Logger,
		lenient:        cfg.Lenient,
		freeSlots:      bitset.New(cfg.SlotCount),
		candidates:     bitset.New(cfg.SlotCount),
		slots:          make([]collider[T], cfg.SlotCount),
		buckets:        make([]*bitset.BitSet, cfg.BucketCount),
		contacts:       make([]contact, cfg.ContactCount),
		contactScratch: bitset.New(cfg.ContactCount),
		oldToNew:       make([]int, cfg.ContactCount),
		newToOld:       make([]int, cfg.ContactCount),
	}
	s.freeSlots.MarkAll()
	for i := range s.buckets {
		s.buckets[i] = bitset.New(cfg.SlotCount)
	}
	s.logger.Debug("space created",
		"slots", cfg.SlotCount,
		"buckets", cfg.BucketCount,
		"contacts", cfg.ContactCount,
		"lenient", cfg.Lenient,
	)
	return s
}

// Cap returns the number of collider slots.
func (s *Space[T]) Cap() int {
	return len(s.slots)
}

// Len returns the number of live colliders.
func (s *Space[T]) Len() int {
	return len(s.slots) - s.freeSlots.Count()
}

// Contains reports whether id names a live collider.
func (s *Space[T]) Contains(id int) bool {
	return id >= 0 && id < len(s.slots) && !s.freeSlots.Test(id)
}

// IsLocked reports whether a query sequence is currently running.
func (s *Space[T]) IsLocked() bool {
	return s.locked
}

// AddCollider registers a collider in the lowest free slot and returns its id.
// The id is valid until RemoveCollider and will be reused afterwards.
//
// With every slot taken it panics with ErrNoFreeSlot, or returns NoID when
// the space is lenient.
func (s *Space[T]) AddCollider(box AABB, categoryMask, collisionMask, triggerMask Mask, data T) int {
	return s.AddColliderFilter(box, Filter{
		Category:  categoryMask,
		Collision: collisionMask,
		Trigger:   triggerMask,
	}, data)
}

// AddColliderFilter is AddCollider with the masks grouped in a Filter.
func (s *Space[T]) AddColliderFilter(box AABB, filter Filter, data T) int {
	s.assertUnlocked("AddCollider")
	id, ok := s.freeSlots.ClearFirst()
	if !ok {
		s.violate("AddCollider", NoID, ErrNoFreeSlot)
		return NoID
	}
	s.slots[id] = collider[T]{box: box, filter: filter, data: data}
	s.hash(id)
	s.logger.Debug("collider added", "id", id, "box", box)
	return id
}

// RemoveCollider frees the slot of id. Contacts in which id takes part are
// dropped without events and the collider leaves the spatial hash.
func (s *Space[T]) RemoveCollider(id int) {
	s.assertUnlocked("RemoveCollider")
	s.assertLive("RemoveCollider", id)

	s.purgeContacts(id)
	s.unhash(id)
	var zero collider[T]
	s.slots[id] = zero
	s.freeSlots.Mark(id)
	s.logger.Debug("collider removed", "id", id)
}

// Bounds returns the box of id.
func (s *Space[T]) Bounds(id int) AABB {
	s.assertLive("Bounds", id)
	return s.slots[id].box
}

// SetBounds replaces the box of id, rehashing it under the new box.
func (s *Space[T]) SetBounds(id int, box AABB) {
	s.assertUnlocked("SetBounds")
	s.assertLive("SetBounds", id)
	s.unhash(id)
	s.slots[id].box = box
	s.hash(id)
}

// Filter returns the masks of id.
func (s *Space[T]) Filter(id int) Filter {
	s.assertLive("Filter", id)
	return s.slots[id].filter
}

// SetFilter replaces all masks of id.
func (s *Space[T]) SetFilter(id int, filter Filter) {
	s.assertLive("SetFilter", id)
	s.slots[id].filter = filter
}

func (s *Space[T]) CategoryMask(id int) Mask {
	s.assertLive("CategoryMask", id)
	return s.slots[id].filter.Category
}

func (s *Space[T]) SetCategoryMask(id int, mask Mask) {
	s.assertLive("SetCategoryMask", id)
	s.slots[id].filter.Category = mask
}

func (s *Space[T]) CollisionMask(id int) Mask {
	s.assertLive("CollisionMask", id)
	return s.slots[id].filter.Collision
}

func (s *Space[T]) SetCollisionMask(id int, mask Mask) {
	s.assertLive("SetCollisionMask", id)
	s.slots[id].filter.Collision = mask
}

func (s *Space[T]) TriggerMask(id int) Mask {
	s.assertLive("TriggerMask", id)
	return s.slots[id].filter.Trigger
}

func (s *Space[T]) SetTriggerMask(id int, mask Mask) {
	s.assertLive("SetTriggerMask", id)
	s.slots[id].filter.Trigger = mask
}

// Data returns the payload of id.
func (s *Space[T]) Data(id int) T {
	s.assertLive("Data", id)
	return s.slots[id].data
}

// SetData replaces the payload of id.
func (s *Space[T]) SetData(id int, data T) {
	s.assertLive("SetData", id)
	s.slots[id].data = data
}

// Colliders returns the ids of all live colliders in ascending order. The
// occupied set is captured when iteration starts, so the caller may remove
// colliders while ranging over it.
func (s *Space[T]) Colliders() iter.Seq[int] {
	return func(yield func(int) bool) {
		occupied := s.freeSlots.Clone()
		occupied.Negate()
		for id := range occupied.All() {
			if !yield(id) {
				return
			}
		}
	}
}

// Stats is a snapshot of space occupancy.
type Stats struct {
	Colliders     int
	Contacts      int
	ActiveBuckets int
}

// Stats returns current occupancy counts.
func (s *Space[T]) Stats() Stats {
	st := Stats{
		Colliders: s.Len(),
		Contacts:  s.nContacts,
	}
	for _, b := range s.buckets {
		if !b.Empty() {
			st.ActiveBuckets++
		}
	}
	return st
}

func (s *Space[T]) lock() {
	s.locked = true
}

func (s *Space[T]) unlock() {
	s.locked = false
}

func (s *Space[T]) assertUnlocked(op string) {
	if s.locked {
		panic(&ContractError{Op: op, ID: NoID, Err: ErrLocked})
	}
}

func (s *Space[T]) assertLive(op string, id int) {
	if !s.Contains(id) {
		panic(&ContractError{Op: op, ID: id, Err: ErrStaleID})
	}
}

// violate reports a capacity violation: a panic, or an error record when the
// space is lenient.
func (s *Space[T]) violate(op string, id int, err error) {
	cerr := &ContractError{Op: op, ID: id, Err: err}
	if !s.lenient {
		panic(cerr)
	}
	s.logger.Error("contract violation", "op", op, "id", id, "error", err)
}
