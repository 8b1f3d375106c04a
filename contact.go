package aabb

import "iter"

// contact is an open trigger relationship: collider overlapped trigger the
// last time QueryTriggers ran for collider.
type contact struct {
	collider int
	trigger  int
}

// ContactCount returns the number of open trigger contacts.
func (s *Space[T]) ContactCount() int {
	return s.nContacts
}

// Contacts returns the triggers currently recorded as overlapped by id.
func (s *Space[T]) Contacts(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < s.nContacts; i++ {
			if s.contacts[i].collider == id && !yield(s.contacts[i].trigger) {
				return
			}
		}
	}
}

// pushContact appends a contact, reporting false when capacity is exhausted.
func (s *Space[T]) pushContact(collider, trigger int) bool {
	if s.nContacts >= len(s.contacts) {
		return false
	}
	s.contacts[s.nContacts] = contact{collider: collider, trigger: trigger}
	s.nContacts++
	return true
}

// purgeContacts drops every contact naming id on either side, compacting by
// moving the last live contact into each hole.
func (s *Space[T]) purgeContacts(id int) {
	for i := s.nContacts - 1; i >= 0; i-- {
		c := s.contacts[i]
		if c.collider == id || c.trigger == id {
			s.nContacts--
			s.contacts[i] = s.contacts[s.nContacts]
		}
	}
}
