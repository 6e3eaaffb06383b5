// Package genealogy derives family relations from an in-memory snapshot of
// the person collection. Every function is pure and total: missing inputs
// yield nil or empty results, never errors. Results follow snapshot order.
package genealogy

import "familytree/internal/domain/entity"

// Snapshot is an immutable, ordered view of the person collection.
type Snapshot struct {
	people []*entity.Person
	byID   map[string]*entity.Person
}

// NewSnapshot indexes people. Later duplicates of an ID are ignored.
func NewSnapshot(people []*entity.Person) *Snapshot {
	s := &Snapshot{
		people: make([]*entity.Person, 0, len(people)),
		byID:   make(map[string]*entity.Person, len(people)),
	}
	for _, p := range people {
		if p == nil {
			continue
		}
		if _, dup := s.byID[p.ID]; dup {
			continue
		}
		s.people = append(s.people, p)
		s.byID[p.ID] = p
	}

	return s
}

// People returns the records in snapshot order.
func (s *Snapshot) People() []*entity.Person {
	if s == nil {
		return nil
	}

	return s.people
}

// Len returns the number of records.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}

	return len(s.people)
}

// Filter returns a new snapshot holding the records accepted by keep.
func (s *Snapshot) Filter(keep func(*entity.Person) bool) *Snapshot {
	kept := make([]*entity.Person, 0, s.Len())
	for _, p := range s.People() {
		if keep(p) {
			kept = append(kept, p)
		}
	}

	return NewSnapshot(kept)
}

// Approved returns the approved records only, the view public callers derive over.
func (s *Snapshot) Approved() *Snapshot {
	return s.Filter((*entity.Person).IsApproved)
}

func (s *Snapshot) collect(match func(*entity.Person) bool) []*entity.Person {
	var out []*entity.Person
	for _, p := range s.People() {
		if match(p) {
			out = append(out, p)
		}
	}

	return out
}
