package genealogy

import (
	"fmt"

	"familytree/internal/domain/entity"
)

// ViolationKind names a broken graph invariant.
type ViolationKind string

const (
	ViolationSpouseAsymmetric ViolationKind = "spouse_asymmetric"
	ViolationSpouseNotMarried ViolationKind = "spouse_not_married"
	ViolationSpouseSameGender ViolationKind = "spouse_same_gender"
	ViolationSingleWithSpouse ViolationKind = "single_with_spouse"
	ViolationParentGender     ViolationKind = "parent_gender"
	ViolationDanglingLink     ViolationKind = "dangling_link"
	ViolationDeletedNoStamp   ViolationKind = "deleted_without_timestamp"
)

// Violation is one broken invariant found on a record.
type Violation struct {
	PersonID string
	Kind     ViolationKind
	Detail   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.PersonID, v.Kind, v.Detail)
}

// CheckIntegrity reports every record that breaks a graph invariant.
func (s *Snapshot) CheckIntegrity() []Violation {
	var out []Violation
	add := func(p *entity.Person, kind ViolationKind, format string, args ...any) {
		out = append(out, Violation{PersonID: p.ID, Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	for _, p := range s.People() {
		if p.Status == entity.StatusDeleted && p.DeletedAt == nil {
			add(p, ViolationDeletedNoStamp, "status deleted")
		}
		for _, slot := range []entity.RelationSlot{entity.SlotFather, entity.SlotMother} {
			id := p.Slot(slot).LinkedID()
			if id == "" {
				continue
			}
			parent := s.FindByID(id)
			if parent == nil {
				add(p, ViolationDanglingLink, "%s %s", slot, id)

				continue
			}
			if parent.Gender != slot.RequiredGender(p.Gender) {
				add(p, ViolationParentGender, "%s %s is %s", slot, id, parent.Gender)
			}
		}

		spouseID := p.Spouse.LinkedID()
		if spouseID == "" {
			continue
		}
		if p.MaritalStatus == entity.MaritalSingle {
			add(p, ViolationSingleWithSpouse, "spouse %s", spouseID)
		}
		spouse := s.FindByID(spouseID)
		if spouse == nil {
			add(p, ViolationDanglingLink, "spouse %s", spouseID)

			continue
		}
		if spouse.Spouse.LinkedID() != p.ID {
			add(p, ViolationSpouseAsymmetric, "spouse %s points at %q", spouseID, spouse.Spouse.LinkedID())
		}
		if spouse.MaritalStatus != entity.MaritalMarried || p.MaritalStatus != entity.MaritalMarried {
			add(p, ViolationSpouseNotMarried, "spouse %s", spouseID)
		}
		if spouse.Gender == p.Gender {
			add(p, ViolationSpouseSameGender, "spouse %s", spouseID)
		}
	}

	return out
}
