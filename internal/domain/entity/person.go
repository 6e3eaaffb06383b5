// Package entity contains the core business objects of the family tree,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Gender is the recorded gender of a person.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the Gender is a known value.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Opposite returns the other gender. Unknown values stay unknown.
func (g Gender) Opposite() Gender {
	switch g {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	default:
		return g
	}
}

// MaritalStatus is the marital status of a person.
type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

// IsValid checks if the MaritalStatus is a known value.
func (m MaritalStatus) IsValid() bool {
	return m == MaritalSingle || m == MaritalMarried
}

// Status is the moderation status of a person record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeleted  Status = "deleted"
)

// IsValid checks if the Status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeleted:
		return true
	default:
		return false
	}
}

// DefaultProfilePictureURL is stored for imported records that carry no picture.
const DefaultProfilePictureURL = "https://placehold.co/150x150.png"

// Person is a node of the family graph. Father, Mother and Spouse are weak
// references into the same collection.
type Person struct {
	ID                string
	Name              string
	Surname           string
	MaidenName        string
	Family            string
	Gender            Gender
	MaritalStatus     MaritalStatus
	Father            Relation
	Mother            Relation
	Spouse            Relation
	BirthMonth        string
	BirthYear         string
	ProfilePictureURL string
	Description       string
	Status            Status
	DeletedAt         *time.Time
	IsDeceased        bool
	DeathDate         *time.Time
}

// DisplayName is the name cached on relatives that link to this person.
// It concatenates name and surname without a separator.
func (p *Person) DisplayName() string {
	return p.Name + p.Surname
}

// FullName returns the name and surname separated by a space.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// Slot returns the relation stored in the given slot.
func (p *Person) Slot(slot RelationSlot) Relation {
	switch slot {
	case SlotFather:
		return p.Father
	case SlotMother:
		return p.Mother
	case SlotSpouse:
		return p.Spouse
	default:
		return NoRelation()
	}
}

// SetSlot replaces the relation stored in the given slot.
func (p *Person) SetSlot(slot RelationSlot, rel Relation) {
	switch slot {
	case SlotFather:
		p.Father = rel
	case SlotMother:
		p.Mother = rel
	case SlotSpouse:
		p.Spouse = rel
	}
}

// IsApproved reports whether the record is publicly visible.
func (p *Person) IsApproved() bool {
	return p.Status == StatusApproved
}

// Clone returns a deep copy of the person.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	clone := *p
	if p.DeletedAt != nil {
		deletedAt := *p.DeletedAt
		clone.DeletedAt = &deletedAt
	}
	if p.DeathDate != nil {
		deathDate := *p.DeathDate
		clone.DeathDate = &deathDate
	}

	return &clone
}
