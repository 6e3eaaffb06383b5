package genealogy

import (
	"strings"

	"familytree/internal/domain/entity"
)

// Parents holds the resolved parents of a person.
type Parents struct {
	Father *entity.Person
	Mother *entity.Person
}

// Grandparents holds the resolved grandparents of a person.
type Grandparents struct {
	PaternalGrandfather *entity.Person
	PaternalGrandmother *entity.Person
	MaternalGrandfather *entity.Person
	MaternalGrandmother *entity.Person
}

// InLaws holds the resolved parents of a person's spouse.
type InLaws struct {
	FatherInLaw *entity.Person
	MotherInLaw *entity.Person
}

// FindByID looks up a record by ID.
func (s *Snapshot) FindByID(id string) *entity.Person {
	if s == nil || id == "" {
		return nil
	}

	return s.byID[id]
}

// FindByName resolves a cached relation name (name and surname concatenated)
// to an approved record, ignoring case.
func (s *Snapshot) FindByName(name string) *entity.Person {
	if name == "" {
		return nil
	}
	for _, p := range s.People() {
		if p.IsApproved() && strings.EqualFold(p.DisplayName(), name) {
			return p
		}
	}

	return nil
}

// Resolve returns the record a relation points at: by ID when linked, by
// name when unlinked.
func (s *Snapshot) Resolve(rel entity.Relation) *entity.Person {
	switch rel.Kind {
	case entity.RelationLinked:
		return s.FindByID(rel.ID)
	case entity.RelationUnlinked:
		return s.FindByName(rel.Name)
	default:
		return nil
	}
}

// FindChildren returns every record whose father or mother is parent.
func (s *Snapshot) FindChildren(parent *entity.Person) []*entity.Person {
	if parent == nil || parent.ID == "" {
		return nil
	}

	return s.collect(func(p *entity.Person) bool {
		return p.Father.LinkedID() == parent.ID || p.Mother.LinkedID() == parent.ID
	})
}

// FindSiblings returns every other record sharing the father or the mother
// with person. Half-siblings count.
func (s *Snapshot) FindSiblings(person *entity.Person) []*entity.Person {
	if person == nil {
		return nil
	}
	fatherID := person.Father.LinkedID()
	motherID := person.Mother.LinkedID()
	if fatherID == "" && motherID == "" {
		return nil
	}

	return s.collect(func(p *entity.Person) bool {
		if p.ID == person.ID {
			return false
		}

		return (fatherID != "" && p.Father.LinkedID() == fatherID) ||
			(motherID != "" && p.Mother.LinkedID() == motherID)
	})
}

// FindParents resolves the linked father and mother of person.
func (s *Snapshot) FindParents(person *entity.Person) Parents {
	if person == nil {
		return Parents{}
	}

	return Parents{
		Father: s.FindByID(person.Father.LinkedID()),
		Mother: s.FindByID(person.Mother.LinkedID()),
	}
}

// FindGrandparents resolves the parents of each resolved parent of person.
func (s *Snapshot) FindGrandparents(person *entity.Person) Grandparents {
	parents := s.FindParents(person)
	paternal := s.FindParents(parents.Father)
	maternal := s.FindParents(parents.Mother)

	return Grandparents{
		PaternalGrandfather: paternal.Father,
		PaternalGrandmother: paternal.Mother,
		MaternalGrandfather: maternal.Father,
		MaternalGrandmother: maternal.Mother,
	}
}

// FindSpouse resolves the linked spouse of person.
func (s *Snapshot) FindSpouse(person *entity.Person) *entity.Person {
	if person == nil {
		return nil
	}

	return s.FindByID(person.Spouse.LinkedID())
}

// FindInLaws resolves the parents of person's spouse.
func (s *Snapshot) FindInLaws(person *entity.Person) InLaws {
	parents := s.FindParents(s.FindSpouse(person))

	return InLaws{FatherInLaw: parents.Father, MotherInLaw: parents.Mother}
}
