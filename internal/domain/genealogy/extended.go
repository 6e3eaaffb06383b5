package genealogy

import "familytree/internal/domain/entity"

// PaternalUncles returns the male children of the paternal grandparents,
// excluding person and person's parents.
func (s *Snapshot) PaternalUncles(person *entity.Person) []*entity.Person {
	gp := s.FindGrandparents(person)

	return s.parentSiblings(person, gp.PaternalGrandfather, gp.PaternalGrandmother, entity.GenderMale)
}

// PaternalAunts returns the female children of the paternal grandparents,
// excluding person and person's parents.
func (s *Snapshot) PaternalAunts(person *entity.Person) []*entity.Person {
	gp := s.FindGrandparents(person)

	return s.parentSiblings(person, gp.PaternalGrandfather, gp.PaternalGrandmother, entity.GenderFemale)
}

// MaternalUncles returns the male children of the maternal grandparents,
// excluding person and person's parents.
func (s *Snapshot) MaternalUncles(person *entity.Person) []*entity.Person {
	gp := s.FindGrandparents(person)

	return s.parentSiblings(person, gp.MaternalGrandfather, gp.MaternalGrandmother, entity.GenderMale)
}

// MaternalAunts returns the female children of the maternal grandparents,
// excluding person and person's parents.
func (s *Snapshot) MaternalAunts(person *entity.Person) []*entity.Person {
	gp := s.FindGrandparents(person)

	return s.parentSiblings(person, gp.MaternalGrandfather, gp.MaternalGrandmother, entity.GenderFemale)
}

// parentSiblings unions the children of both grandparents in snapshot order.
func (s *Snapshot) parentSiblings(person, grandfather, grandmother *entity.Person, gender entity.Gender) []*entity.Person {
	if person == nil || (grandfather == nil && grandmother == nil) {
		return nil
	}
	excluded := map[string]struct{}{person.ID: {}}
	if id := person.Father.LinkedID(); id != "" {
		excluded[id] = struct{}{}
	}
	if id := person.Mother.LinkedID(); id != "" {
		excluded[id] = struct{}{}
	}
	isChildOf := func(p *entity.Person, gp *entity.Person) bool {
		return gp != nil && (p.Father.LinkedID() == gp.ID || p.Mother.LinkedID() == gp.ID)
	}

	return s.collect(func(p *entity.Person) bool {
		if _, skip := excluded[p.ID]; skip || p.Gender != gender {
			return false
		}

		return isChildOf(p, grandfather) || isChildOf(p, grandmother)
	})
}
