package genealogy

import "familytree/internal/domain/entity"

// Unlinked returns the records missing a parent link, or married without a
// spouse link.
func (s *Snapshot) Unlinked() []*entity.Person {
	return s.collect(func(p *entity.Person) bool {
		if !p.Father.IsLinked() || !p.Mother.IsLinked() {
			return true
		}

		return p.MaritalStatus == entity.MaritalMarried && !p.Spouse.IsLinked()
	})
}

// Candidates returns the approved records that may be linked into the slot
// of person: male for father, female for mother, unmarried and of the
// opposite gender for spouse. person itself is never a candidate.
func (s *Snapshot) Candidates(person *entity.Person, slot entity.RelationSlot) []*entity.Person {
	if person == nil || !slot.IsValid() {
		return nil
	}
	want := slot.RequiredGender(person.Gender)

	return s.collect(func(p *entity.Person) bool {
		if p.ID == person.ID || !p.IsApproved() || p.Gender != want {
			return false
		}
		if slot == entity.SlotSpouse {
			return !p.Spouse.IsLinked()
		}

		return true
	})
}

// CommunityPool returns the approved records other than person, the pool
// offered to the suggestion oracle.
func (s *Snapshot) CommunityPool(person *entity.Person) []*entity.Person {
	return s.collect(func(p *entity.Person) bool {
		return p.IsApproved() && (person == nil || p.ID != person.ID)
	})
}
