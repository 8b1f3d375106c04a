package aabb

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFreeSlot is raised when AddCollider finds every slot in use.
	ErrNoFreeSlot = errors.New("no free collider slot")
	// ErrContactCapacity is raised when trigger tracking needs more contacts than configured.
	ErrContactCapacity = errors.New("contact capacity exceeded")
	// ErrInvalidCapacity is raised for a slot or contact count above the bit set limit.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrStaleID is raised when an id does not name a live collider.
	ErrStaleID = errors.New("stale or out of range collider id")
	// ErrLocked is raised when the space is mutated or queried while a query sequence is running.
	ErrLocked = errors.New("space is locked")
)

// ContractError describes a misuse of the engine. It is delivered through
// panic; recover it and use errors.Is against the sentinel errors above to
// tell violations apart.
type ContractError struct {
	Op  string
	ID  int
	Err error
}

func (e *ContractError) Error() string {
	if e.ID == NoID {
		return fmt.Sprintf("aabb: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("aabb: %s id %d: %v", e.Op, e.ID, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }
