// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"familytree/internal/domain/entity"
)

var (
	// ErrPersonNotFound is returned when a person document does not exist.
	ErrPersonNotFound = errors.New("person not found")

	// ErrPersonExists is returned by Create when the ID is already taken.
	ErrPersonExists = errors.New("person already exists")
)

// Document field names. Optional fields are absent from a document when unset.
const (
	FieldID                = "id"
	FieldName              = "name"
	FieldSurname           = "surname"
	FieldMaidenName        = "maidenName"
	FieldFamily            = "family"
	FieldGender            = "gender"
	FieldMaritalStatus     = "maritalStatus"
	FieldFatherID          = "fatherId"
	FieldMotherID          = "motherId"
	FieldSpouseID          = "spouseId"
	FieldFatherName        = "fatherName"
	FieldMotherName        = "motherName"
	FieldSpouseName        = "spouseName"
	FieldBirthMonth        = "birthMonth"
	FieldBirthYear         = "birthYear"
	FieldProfilePictureURL = "profilePictureUrl"
	FieldDescription       = "description"
	FieldStatus            = "status"
	FieldDeletedAt         = "deletedAt"
	FieldIsDeceased        = "isDeceased"
	FieldDeathDate         = "deathDate"
)

// PersonRepository defines the persistence operations on the person collection.
//
// Implementations may defer writes until the surrounding transaction commits,
// so within one transaction every read must happen before the first write.
type PersonRepository interface {
	// FindByID retrieves a single person. Returns ErrPersonNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Person, error)

	// FindAll retrieves every person ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Person, error)

	// FindByField retrieves every person whose field equals value, ordered by ID.
	FindByField(ctx context.Context, field string, value any) ([]*entity.Person, error)

	// CountIDRange counts the documents whose ID lies in [lo, hi).
	CountIDRange(ctx context.Context, lo, hi string) (int, error)

	// Create stores a new person. Returns ErrPersonExists when the ID is taken.
	Create(ctx context.Context, person *entity.Person) error

	// Update applies a field patch. Returns ErrPersonNotFound when absent.
	Update(ctx context.Context, id string, patch Patch) error

	// Delete removes a person. Deleting a missing person is not an error.
	Delete(ctx context.Context, id string) error
}
