package aabb

import (
	"iter"

	"github.com/setanarut/aabb/bitset"
)

// TriggerEventType tells how a trigger relationship changed.
type TriggerEventType uint8

const (
	// TriggerEnter means the overlap started since the last query.
	TriggerEnter TriggerEventType = iota
	// TriggerStay means the overlap was already open and still holds.
	TriggerStay
	// TriggerExit means the overlap recorded by the last query has ended.
	TriggerExit
)

func (t TriggerEventType) String() string {
	switch t {
	case TriggerEnter:
		return "enter"
	case TriggerStay:
		return "stay"
	case TriggerExit:
		return "exit"
	default:
		return "unknown"
	}
}

// TriggerEvent reports one trigger relationship of the queried collider.
type TriggerEvent struct {
	Type    TriggerEventType
	Trigger int
}

// QueryTriggers diffs the triggers id overlaps now against those recorded by
// the previous QueryTriggers call for id, yielding Enter and Stay events for
// current overlaps and Exit events for relationships that ended.
//
// Ranging over the result updates the recorded contacts as it goes, so each
// returned sequence should be consumed once. Breaking out early keeps the
// updates already made and skips the rest, including pending exits. The space
// is locked while the sequence runs.
func (s *Space[T]) QueryTriggers(id int) iter.Seq[TriggerEvent] {
	return func(yield func(TriggerEvent) bool) {
		s.assertUnlocked("QueryTriggers")
		s.assertLive("QueryTriggers", id)
		s.lock()
		defer s.unlock()

		// identify the contacts recorded for id last time
		s.contactScratch.ClearAll()
		for i := 0; i < s.nContacts; i++ {
			if s.contacts[i].collider == id {
				s.contactScratch.Mark(i)
			}
		}

		// iterate through actual overlaps
		s.broadPhase(s.slots[id].box)
		lister := bitset.NewLister(s.candidates)
		for slot, ok := lister.Next(); ok; slot, ok = lister.Next() {
			if slot == id || !s.slots[id].triggers(&s.slots[slot]) {
				continue
			}
			if i, found := s.findContact(slot); found {
				s.contactScratch.Clear(i)
				if !yield(TriggerEvent{Type: TriggerStay, Trigger: slot}) {
					return
				}
				continue
			}
			if !s.pushContact(id, slot) {
				s.violate("QueryTriggers", id, ErrContactCapacity)
				continue
			}
			s.logger.Debug("trigger enter", "id", id, "trigger", slot)
			if !yield(TriggerEvent{Type: TriggerEnter, Trigger: slot}) {
				return
			}
		}

		// whatever is left in the scratch set has ended
		for i := 0; i < s.nContacts; i++ {
			s.oldToNew[i] = i
			s.newToOld[i] = i
		}
		for old, ok := s.contactScratch.ClearFirst(); ok; old, ok = s.contactScratch.ClearFirst() {
			actual := s.oldToNew[old]
			trigger := s.contacts[actual].trigger
			s.nContacts--
			if actual < s.nContacts {
				s.contacts[actual] = s.contacts[s.nContacts]
				moved := s.newToOld[s.nContacts]
				s.oldToNew[moved] = actual
				s.newToOld[actual] = moved
			}
			s.logger.Debug("trigger exit", "id", id, "trigger", trigger)
			if !yield(TriggerEvent{Type: TriggerExit, Trigger: trigger}) {
				return
			}
		}
	}
}

// findContact looks among the contacts marked in contactScratch for one
// whose trigger is the given slot.
func (s *Space[T]) findContact(trigger int) (int, bool) {
	lister := bitset.NewLister(s.contactScratch)
	for i, ok := lister.Next(); ok; i, ok = lister.Next() {
		if s.contacts[i].trigger == trigger {
			return i, true
		}
	}
	return 0, false
}
