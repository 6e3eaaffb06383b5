package genealogy

import "familytree/internal/domain/entity"

// FamilyView is the reconstituted family of one person.
type FamilyView struct {
	Person         *entity.Person
	Parents        Parents
	Grandparents   Grandparents
	Spouse         *entity.Person
	InLaws         InLaws
	Children       []*entity.Person
	Siblings       []*entity.Person
	PaternalUncles []*entity.Person
	PaternalAunts  []*entity.Person
	MaternalUncles []*entity.Person
	MaternalAunts  []*entity.Person
	// Unlinked lists relation slots that only carry a claimed name.
	Unlinked map[entity.RelationSlot]string
}

// BuildFamilyView derives every relation of the person with the given ID.
// It returns nil when the ID is not in the snapshot.
func (s *Snapshot) BuildFamilyView(id string) *FamilyView {
	person := s.FindByID(id)
	if person == nil {
		return nil
	}

	view := &FamilyView{
		Person:         person,
		Parents:        s.FindParents(person),
		Grandparents:   s.FindGrandparents(person),
		Spouse:         s.FindSpouse(person),
		InLaws:         s.FindInLaws(person),
		Children:       s.FindChildren(person),
		Siblings:       s.FindSiblings(person),
		PaternalUncles: s.PaternalUncles(person),
		PaternalAunts:  s.PaternalAunts(person),
		MaternalUncles: s.MaternalUncles(person),
		MaternalAunts:  s.MaternalAunts(person),
		Unlinked:       map[entity.RelationSlot]string{},
	}
	for _, slot := range []entity.RelationSlot{entity.SlotFather, entity.SlotMother, entity.SlotSpouse} {
		if rel := person.Slot(slot); rel.Kind == entity.RelationUnlinked {
			view.Unlinked[slot] = rel.Name
		}
	}

	return view
}
