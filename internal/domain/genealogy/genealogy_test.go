package genealogy

import (
	"testing"

	"familytree/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerson(id, name string, gender entity.Gender, father, mother string) *entity.Person {
	return &entity.Person{
		ID:            id,
		Name:          name,
		Surname:       "PATEL",
		MaidenName:    "PATEL",
		Family:        "MATA",
		Gender:        gender,
		MaritalStatus: entity.MaritalSingle,
		Father:        entity.Linked(father, ""),
		Mother:        entity.Linked(mother, ""),
		Status:        entity.StatusApproved,
	}
}

func marry(a, b *entity.Person) {
	a.Spouse = entity.Linked(b.ID, b.DisplayName())
	b.Spouse = entity.Linked(a.ID, a.DisplayName())
	a.MaritalStatus = entity.MaritalMarried
	b.MaritalStatus = entity.MaritalMarried
}

// familyFixture builds three generations:
//
//	PGF+PGM -> FATHER, UNCLE, AUNT
//	MGF+MGM -> MOTHER, MUNCLE, MAUNT
//	FATHER+MOTHER -> SELF, SISTER; FATHER+SECOND -> HALF
//	SELF+WIFE; WFATHER+WMOTHER -> WIFE
func familyFixture() *Snapshot {
	pgf := newPerson("PGF", "DEV", entity.GenderMale, "", "")
	pgm := newPerson("PGM", "LATA", entity.GenderFemale, "", "")
	marry(pgf, pgm)
	mgf := newPerson("MGF", "HARI", entity.GenderMale, "", "")
	mgm := newPerson("MGM", "USHA", entity.GenderFemale, "", "")
	marry(mgf, mgm)

	father := newPerson("FATHER", "RAVI", entity.GenderMale, "PGF", "PGM")
	uncle := newPerson("UNCLE", "MOHAN", entity.GenderMale, "PGF", "PGM")
	aunt := newPerson("AUNT", "SITA", entity.GenderFemale, "PGF", "")
	mother := newPerson("MOTHER", "GITA", entity.GenderFemale, "MGF", "MGM")
	mUncle := newPerson("MUNCLE", "AJAY", entity.GenderMale, "", "MGM")
	mAunt := newPerson("MAUNT", "RINA", entity.GenderFemale, "MGF", "MGM")
	marry(father, mother)
	second := newPerson("SECOND", "MAYA", entity.GenderFemale, "", "")

	self := newPerson("SELF", "ARJUN", entity.GenderMale, "FATHER", "MOTHER")
	sister := newPerson("SISTER", "PRIYA", entity.GenderFemale, "FATHER", "MOTHER")
	half := newPerson("HALF", "KIRAN", entity.GenderMale, "FATHER", "SECOND")
	wFather := newPerson("WFATHER", "VIJAY", entity.GenderMale, "", "")
	wMother := newPerson("WMOTHER", "NITA", entity.GenderFemale, "", "")
	wife := newPerson("WIFE", "ANU", entity.GenderFemale, "WFATHER", "WMOTHER")
	marry(self, wife)
	child := newPerson("CHILD", "VED", entity.GenderMale, "SELF", "WIFE")
	pending := newPerson("PENDING", "NEW", entity.GenderMale, "FATHER", "")
	pending.Status = entity.StatusPending

	return NewSnapshot([]*entity.Person{
		pgf, pgm, mgf, mgm, father, uncle, aunt, mother, mUncle, mAunt, second,
		self, sister, half, wFather, wMother, wife, child, pending,
	})
}

func ids(people []*entity.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.ID)
	}

	return out
}

func TestSnapshot_FindByIDAndName(t *testing.T) {
	s := familyFixture()

	assert.Equal(t, "SELF", s.FindByID("SELF").ID)
	assert.Nil(t, s.FindByID("MISSING"))
	assert.Nil(t, s.FindByID(""))

	assert.Equal(t, "SELF", s.FindByName("arjunpatel").ID)
	assert.Nil(t, s.FindByName("NEWPATEL"), "pending records are not resolved by name")
	assert.Nil(t, s.FindByName(""))
}

func TestSnapshot_NilAndEmptyInputsAreTotal(t *testing.T) {
	var s *Snapshot

	assert.Nil(t, s.FindByID("SELF"))
	assert.Empty(t, s.FindChildren(nil))
	assert.Empty(t, s.FindSiblings(nil))
	assert.Equal(t, Parents{}, s.FindParents(nil))
	assert.Equal(t, Grandparents{}, s.FindGrandparents(nil))
	assert.Nil(t, s.BuildFamilyView("SELF"))

	orphan := newPerson("ORPHAN", "SOLO", entity.GenderMale, "", "")
	empty := NewSnapshot([]*entity.Person{orphan})
	assert.Empty(t, empty.FindSiblings(orphan))
	assert.Equal(t, Grandparents{}, empty.FindGrandparents(orphan))
	assert.Empty(t, empty.PaternalUncles(orphan))
}

func TestSnapshot_FindChildren(t *testing.T) {
	s := familyFixture()

	assert.Equal(t, []string{"SELF", "SISTER", "HALF", "PENDING"}, ids(s.FindChildren(s.FindByID("FATHER"))))
	assert.Equal(t, []string{"SELF", "SISTER"}, ids(s.FindChildren(s.FindByID("MOTHER"))))
	assert.Empty(t, s.FindChildren(s.FindByID("CHILD")))
}

func TestSnapshot_FindSiblings(t *testing.T) {
	s := familyFixture()

	assert.Equal(t, []string{"SISTER", "HALF", "PENDING"}, ids(s.FindSiblings(s.FindByID("SELF"))))
	assert.Equal(t, []string{"SELF", "SISTER", "PENDING"}, ids(s.FindSiblings(s.FindByID("HALF"))))
}

func TestSnapshot_SiblingSymmetry(t *testing.T) {
	s := familyFixture()

	for _, a := range s.People() {
		for _, b := range s.FindSiblings(a) {
			assert.Contains(t, ids(s.FindSiblings(b)), a.ID, "%s is a sibling of %s but not vice versa", b.ID, a.ID)
		}
	}
}

func TestSnapshot_GrandparentTransitivity(t *testing.T) {
	s := familyFixture()

	for _, p := range s.People() {
		gp := s.FindGrandparents(p)
		parents := s.FindParents(p)
		assert.Equal(t, s.FindParents(parents.Father).Father, gp.PaternalGrandfather, p.ID)
		assert.Equal(t, s.FindParents(parents.Father).Mother, gp.PaternalGrandmother, p.ID)
		assert.Equal(t, s.FindParents(parents.Mother).Father, gp.MaternalGrandfather, p.ID)
		assert.Equal(t, s.FindParents(parents.Mother).Mother, gp.MaternalGrandmother, p.ID)
	}

	gp := s.FindGrandparents(s.FindByID("SELF"))
	assert.Equal(t, "PGF", gp.PaternalGrandfather.ID)
	assert.Equal(t, "MGM", gp.MaternalGrandmother.ID)
}

func TestSnapshot_SpouseAndInLaws(t *testing.T) {
	s := familyFixture()
	self := s.FindByID("SELF")

	assert.Equal(t, "WIFE", s.FindSpouse(self).ID)
	inLaws := s.FindInLaws(self)
	assert.Equal(t, "WFATHER", inLaws.FatherInLaw.ID)
	assert.Equal(t, "WMOTHER", inLaws.MotherInLaw.ID)
	assert.Equal(t, InLaws{}, s.FindInLaws(s.FindByID("SISTER")))
}

func TestSnapshot_UnclesAndAunts(t *testing.T) {
	s := familyFixture()
	self := s.FindByID("SELF")

	assert.Equal(t, []string{"UNCLE"}, ids(s.PaternalUncles(self)))
	assert.Equal(t, []string{"AUNT"}, ids(s.PaternalAunts(self)))
	assert.Equal(t, []string{"MUNCLE"}, ids(s.MaternalUncles(self)))
	assert.Equal(t, []string{"MAUNT"}, ids(s.MaternalAunts(self)))

	// A parent is never listed as their own child's uncle or aunt.
	assert.NotContains(t, ids(s.PaternalUncles(self)), "FATHER")
	assert.NotContains(t, ids(s.MaternalAunts(self)), "MOTHER")
}

func TestSnapshot_UnclesThroughEitherGrandparent(t *testing.T) {
	pgf := newPerson("PGF", "DEV", entity.GenderMale, "", "")
	pgm := newPerson("PGM", "LATA", entity.GenderFemale, "", "")
	marry(pgf, pgm)
	father := newPerson("FATHER", "RAVI", entity.GenderMale, "PGF", "PGM")
	// Son of the grandmother from an earlier marriage, grandfather unknown.
	halfUncle := newPerson("HALFUNCLE", "SURESH", entity.GenderMale, "", "PGM")
	// Son of the grandfather only.
	fullUncle := newPerson("UNCLE", "MOHAN", entity.GenderMale, "PGF", "")
	self := newPerson("SELF", "ARJUN", entity.GenderMale, "FATHER", "")

	s := NewSnapshot([]*entity.Person{pgf, pgm, father, halfUncle, fullUncle, self})

	assert.Equal(t, []string{"HALFUNCLE", "UNCLE"}, ids(s.PaternalUncles(self)),
		"children of the grandmother count even without the grandfather")
	assert.NotContains(t, ids(s.FindChildren(pgf)), "HALFUNCLE",
		"the grandfather's children alone miss the half uncle")

	t.Run("unrecorded grandfather", func(t *testing.T) {
		noGrandfather := NewSnapshot([]*entity.Person{pgm, father, halfUncle, self})

		assert.Equal(t, []string{"HALFUNCLE"}, ids(noGrandfather.PaternalUncles(self)))
	})
}

func TestSnapshot_BuildFamilyView(t *testing.T) {
	s := familyFixture()

	view := s.BuildFamilyView("SELF")
	require.NotNil(t, view)
	assert.Equal(t, "FATHER", view.Parents.Father.ID)
	assert.Equal(t, "WIFE", view.Spouse.ID)
	assert.Equal(t, []string{"CHILD"}, ids(view.Children))
	assert.Empty(t, view.Unlinked)

	claimed := newPerson("CLAIMED", "OM", entity.GenderMale, "", "")
	claimed.Father = entity.Unlinked("RAMPATEL")
	view = NewSnapshot([]*entity.Person{claimed}).BuildFamilyView("CLAIMED")
	require.NotNil(t, view)
	assert.Equal(t, map[entity.RelationSlot]string{entity.SlotFather: "RAMPATEL"}, view.Unlinked)
}

func TestSnapshot_ApprovedFiltersPending(t *testing.T) {
	s := familyFixture().Approved()

	assert.Nil(t, s.FindByID("PENDING"))
	assert.Equal(t, []string{"SISTER", "HALF"}, ids(s.FindSiblings(s.FindByID("SELF"))))
}

func TestSnapshot_Resolve(t *testing.T) {
	s := familyFixture()

	assert.Equal(t, "FATHER", s.Resolve(entity.Linked("FATHER", "")).ID)
	assert.Equal(t, "FATHER", s.Resolve(entity.Unlinked("RAVIPATEL")).ID)
	assert.Nil(t, s.Resolve(entity.NoRelation()))
}
