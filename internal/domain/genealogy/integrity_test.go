package genealogy

import (
	"testing"
	"time"

	"familytree/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func kinds(violations []Violation) []ViolationKind {
	out := make([]ViolationKind, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Kind)
	}

	return out
}

func TestSnapshot_CheckIntegrity_CleanFixture(t *testing.T) {
	s := familyFixture()

	assert.Empty(t, s.CheckIntegrity())
}

func TestSnapshot_CheckIntegrity_Violations(t *testing.T) {
	husband := newPerson("H", "H", entity.GenderMale, "", "")
	wife := newPerson("W", "W", entity.GenderFemale, "", "")
	husband.Spouse = entity.Linked("W", "WPATEL")
	husband.MaritalStatus = entity.MaritalMarried

	child := newPerson("C", "C", entity.GenderMale, "W", "GHOST")
	deleted := newPerson("D", "D", entity.GenderMale, "", "")
	deleted.Status = entity.StatusDeleted

	s := NewSnapshot([]*entity.Person{husband, wife, child, deleted})
	got := kinds(s.CheckIntegrity())

	assert.ElementsMatch(t, []ViolationKind{
		ViolationSpouseAsymmetric,
		ViolationSpouseNotMarried,
		ViolationParentGender,
		ViolationDanglingLink,
		ViolationDeletedNoStamp,
	}, got)

	now := time.Now()
	deleted.DeletedAt = &now
	wife.Spouse = entity.Linked("H", "HPATEL")
	wife.MaritalStatus = entity.MaritalMarried
	child.Father = entity.Linked("H", "")
	child.Mother = entity.NoRelation()
	assert.Empty(t, s.CheckIntegrity())
}

func TestSnapshot_CheckIntegrity_SingleWithSpouse(t *testing.T) {
	a := newPerson("A", "A", entity.GenderMale, "", "")
	b := newPerson("B", "B", entity.GenderMale, "", "")
	a.Spouse = entity.Linked("B", "")
	b.Spouse = entity.Linked("A", "")
	b.MaritalStatus = entity.MaritalMarried

	got := kinds(NewSnapshot([]*entity.Person{a, b}).CheckIntegrity())

	assert.Contains(t, got, ViolationSingleWithSpouse)
	assert.Contains(t, got, ViolationSpouseSameGender)
}
