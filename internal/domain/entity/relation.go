package entity

// RelationKind tags the state of a relation slot.
type RelationKind int

const (
	// RelationNone means nothing is known about the relative.
	RelationNone RelationKind = iota
	// RelationLinked means the relative has a record and is referenced by ID.
	RelationLinked
	// RelationUnlinked means the relative was named but has no record yet.
	RelationUnlinked
)

// String returns the string representation of the RelationKind.
func (k RelationKind) String() string {
	switch k {
	case RelationLinked:
		return "linked"
	case RelationUnlinked:
		return "unlinked"
	default:
		return "none"
	}
}

// Relation is the value of a father, mother or spouse slot.
// A linked relation may carry the cached display name of the relative.
type Relation struct {
	Kind RelationKind
	ID   string
	Name string
}

// Linked builds a relation that references an existing record.
func Linked(id, displayName string) Relation {
	if id == "" {
		return Unlinked(displayName)
	}

	return Relation{Kind: RelationLinked, ID: id, Name: displayName}
}

// Unlinked builds a relation that only carries a claimed name.
func Unlinked(name string) Relation {
	if name == "" {
		return NoRelation()
	}

	return Relation{Kind: RelationUnlinked, Name: name}
}

// NoRelation builds an empty relation.
func NoRelation() Relation {
	return Relation{}
}

// IsLinked reports whether the relation references a record.
func (r Relation) IsLinked() bool {
	return r.Kind == RelationLinked && r.ID != ""
}

// IsNone reports whether the slot is empty.
func (r Relation) IsNone() bool {
	return r.Kind == RelationNone
}

// LinkedID returns the referenced ID or "" when the relation is not linked.
func (r Relation) LinkedID() string {
	if !r.IsLinked() {
		return ""
	}

	return r.ID
}

// RelationSlot names one of the three relation slots on a person.
type RelationSlot string

const (
	SlotFather RelationSlot = "father"
	SlotMother RelationSlot = "mother"
	SlotSpouse RelationSlot = "spouse"
)

// IsValid checks if the RelationSlot is a known value.
func (s RelationSlot) IsValid() bool {
	switch s {
	case SlotFather, SlotMother, SlotSpouse:
		return true
	default:
		return false
	}
}

// RequiredGender returns the gender a linked relative must have for the slot,
// given the gender of the person owning the slot.
func (s RelationSlot) RequiredGender(owner Gender) Gender {
	switch s {
	case SlotFather:
		return GenderMale
	case SlotMother:
		return GenderFemale
	default:
		return owner.Opposite()
	}
}
