package usecase

import (
	"context"

	"familytree/internal/domain/entity"
	"familytree/internal/domain/genealogy"
	"familytree/internal/domain/service"
)

// ListFilter narrows an admin listing.
type ListFilter struct {
	// Status keeps records in this status only. Empty keeps every status.
	Status entity.Status
	// Unlinked keeps records missing a parent or spouse link.
	Unlinked bool
	// Scope limits the listing to records the actor may see. Nil sees all.
	Scope *entity.ActorScope
}

// DustbinEntry is a deleted record with its retention countdown.
type DustbinEntry struct {
	Person        *entity.Person
	DaysRemaining int
	PurgeEligible bool
}

// FamilyUsecase answers read queries over snapshots of the person collection.
type FamilyUsecase interface {
	// GetPerson returns one record visible to scope.
	GetPerson(ctx context.Context, id string, scope *entity.ActorScope) (*entity.Person, error)

	// List returns the records matching filter in ID order.
	List(ctx context.Context, filter ListFilter) ([]*entity.Person, error)

	// Directory returns the approved records, the public directory.
	Directory(ctx context.Context) ([]*entity.Person, error)

	// Dustbin returns the deleted records visible to scope.
	Dustbin(ctx context.Context, scope *entity.ActorScope) ([]*DustbinEntry, error)

	// PublicFamilyView derives the family of an approved person over
	// approved records only.
	PublicFamilyView(ctx context.Context, id string) (*genealogy.FamilyView, error)

	// AdminFamilyView derives the family of a person visible to scope over
	// every record.
	AdminFamilyView(ctx context.Context, id string, scope *entity.ActorScope) (*genealogy.FamilyView, error)

	// Candidates returns the records that may be linked into the slot of a person.
	Candidates(ctx context.Context, id string, slot entity.RelationSlot, scope *entity.ActorScope) ([]*entity.Person, error)

	// CheckIntegrity reports every broken edge in the collection.
	CheckIntegrity(ctx context.Context) ([]genealogy.Violation, error)
}

// AcceptSuggestionInput is a suggestion chosen by an administrator.
type AcceptSuggestionInput struct {
	CandidateID  string
	Relationship entity.RelationSlot
}

// SuggestionUsecase asks the oracle for relation guesses and applies the
// accepted ones through the graph store.
type SuggestionUsecase interface {
	// Suggest returns the oracle's guesses for a person, restricted to
	// approved candidates that exist.
	Suggest(ctx context.Context, id string, scope *entity.ActorScope) ([]service.Suggestion, error)

	// Accept links the suggested candidate into the suggested slot.
	Accept(ctx context.Context, id string, input *AcceptSuggestionInput, scope *entity.ActorScope) error
}
