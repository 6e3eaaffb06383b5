package usecase

import (
	"context"
	"time"

	"familytree/internal/domain/entity"
)

// CreatePersonInput holds the fields of a new person record.
type CreatePersonInput struct {
	Name              string
	Surname           string
	MaidenName        string
	Family            string
	Gender            entity.Gender
	MaritalStatus     entity.MaritalStatus
	Father            entity.Relation
	Mother            entity.Relation
	Spouse            entity.Relation
	BirthMonth        string
	BirthYear         string
	ProfilePictureURL string
	Description       string
	IsDeceased        bool
	DeathDate         *time.Time
}

// PersonPatch lists the fields to change on a person. Nil fields are left
// untouched. An empty BirthMonth or BirthYear removes the field, and setting
// IsDeceased to false removes the death date.
type PersonPatch struct {
	Name              *string
	Surname           *string
	MaidenName        *string
	Family            *string
	Gender            *entity.Gender
	MaritalStatus     *entity.MaritalStatus
	Father            *entity.Relation
	Mother            *entity.Relation
	Spouse            *entity.Relation
	BirthMonth        *string
	BirthYear         *string
	ProfilePictureURL *string
	Description       *string
	IsDeceased        *bool
	DeathDate         *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p *PersonPatch) IsEmpty() bool {
	return p == nil || *p == PersonPatch{}
}

// Slot returns the patched relation of a slot, or nil when it is untouched.
func (p *PersonPatch) Slot(slot entity.RelationSlot) *entity.Relation {
	switch slot {
	case entity.SlotFather:
		return p.Father
	case entity.SlotMother:
		return p.Mother
	case entity.SlotSpouse:
		return p.Spouse
	default:
		return nil
	}
}

// PersonUsecase is the relationship graph store: the only writer of person
// records and their edges. Every operation commits atomically.
type PersonUsecase interface {
	// CreatePerson mints an ID, stores the person with status and back-links
	// a linked spouse.
	CreatePerson(ctx context.Context, input *CreatePersonInput, status entity.Status) (*entity.Person, error)

	// UpdatePerson applies a patch and repairs spouse links on both sides.
	UpdatePerson(ctx context.Context, id string, patch *PersonPatch) error

	// LinkRelation links the slot of a person to an existing record.
	LinkRelation(ctx context.Context, id string, slot entity.RelationSlot, targetID string) error

	// ClearRelation empties the slot of a person.
	ClearRelation(ctx context.Context, id string, slot entity.RelationSlot) error

	// SoftDelete moves a record to the dustbin.
	SoftDelete(ctx context.Context, id string) error

	// Recover brings a deleted record back as approved.
	Recover(ctx context.Context, id string) error

	// Purge removes a deleted record and every edge pointing at it.
	Purge(ctx context.Context, id string) error

	// SetApproval approves or unapproves a record that is not deleted.
	SetApproval(ctx context.Context, id string, approved bool) error

	// BulkSetApproval approves or unapproves every listed record.
	BulkSetApproval(ctx context.Context, ids []string, approved bool) error

	// BulkSetDeceased sets the deceased flag on every listed record.
	BulkSetDeceased(ctx context.Context, ids []string, isDeceased bool) error

	// ImportBatch stores every record as approved without edge repair and
	// returns the number stored.
	ImportBatch(ctx context.Context, records []*CreatePersonInput) (int, error)
}
