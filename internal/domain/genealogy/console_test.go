package genealogy

import (
	"testing"

	"familytree/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Unlinked(t *testing.T) {
	complete := newPerson("A", "A", entity.GenderMale, "F", "M")
	noMother := newPerson("B", "B", entity.GenderMale, "F", "")
	marriedAlone := newPerson("C", "C", entity.GenderFemale, "F", "M")
	marriedAlone.MaritalStatus = entity.MaritalMarried
	marriedAlone.Spouse = entity.Unlinked("SOMEONE")

	s := NewSnapshot([]*entity.Person{complete, noMother, marriedAlone})
	assert.Equal(t, []string{"B", "C"}, ids(s.Unlinked()))
}

func TestSnapshot_Candidates(t *testing.T) {
	s := familyFixture()
	sister := s.FindByID("SISTER")

	fathers := ids(s.Candidates(sister, entity.SlotFather))
	assert.Contains(t, fathers, "FATHER")
	assert.NotContains(t, fathers, "MOTHER")
	assert.NotContains(t, fathers, "PENDING")

	mothers := ids(s.Candidates(sister, entity.SlotMother))
	assert.Contains(t, mothers, "MOTHER")
	assert.NotContains(t, mothers, "SISTER")
	assert.NotContains(t, mothers, "FATHER")

	spouses := ids(s.Candidates(sister, entity.SlotSpouse))
	assert.Contains(t, spouses, "UNCLE")
	assert.NotContains(t, spouses, "SELF", "already married")
	assert.NotContains(t, spouses, "AUNT", "same gender")

	assert.Empty(t, s.Candidates(sister, entity.RelationSlot("cousin")))
	assert.Empty(t, s.Candidates(nil, entity.SlotFather))
}

func TestSnapshot_CommunityPool(t *testing.T) {
	s := familyFixture()
	pool := ids(s.CommunityPool(s.FindByID("SELF")))

	assert.NotContains(t, pool, "SELF")
	assert.NotContains(t, pool, "PENDING")
	assert.Len(t, pool, s.Len()-2)
}
