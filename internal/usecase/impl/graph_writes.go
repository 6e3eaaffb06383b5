package impl

import (
	"context"
	"strings"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"
	"familytree/internal/usecase"
)

// patchSet collects the updates of one transaction, merged per record and
// applied in first-touch order.
type patchSet struct {
	order   []string
	patches map[string]repository.Patch
}

func newPatchSet() *patchSet {
	return &patchSet{patches: make(map[string]repository.Patch)}
}

func (s *patchSet) add(id string, patch repository.Patch) {
	if existing, ok := s.patches[id]; ok {
		existing.Merge(patch)

		return
	}
	s.order = append(s.order, id)
	s.patches[id] = patch
}

func (s *patchSet) ids() []string {
	return s.order
}

func (s *patchSet) apply(ctx context.Context, repo repository.PersonRepository) error {
	for _, id := range s.order {
		if len(s.patches[id]) == 0 {
			continue
		}
		if err := repo.Update(ctx, id, s.patches[id]); err != nil {
			return translateRepoError(err, id)
		}
	}

	return nil
}

// clearSpousePatch detaches a record from its partner and marks it single.
func clearSpousePatch() repository.Patch {
	return repository.Patch{}.
		SetRelation(entity.SlotSpouse, entity.NoRelation()).
		Set(repository.FieldMaritalStatus, entity.MaritalSingle)
}

// linkSpousePatch points a record at partner and marks it married.
func linkSpousePatch(partner *entity.Person) repository.Patch {
	return repository.Patch{}.
		SetRelation(entity.SlotSpouse, entity.Linked(partner.ID, partner.DisplayName())).
		Set(repository.FieldMaritalStatus, entity.MaritalMarried)
}

// detachable reports whether partner may be reset to single when it stops
// being the spouse of id. A partner already linked to someone else is left
// alone so that link stays symmetric.
func detachable(partner *entity.Person, id string) bool {
	linked := partner.Spouse.LinkedID()

	return linked == "" || linked == id
}

// translateRepoError maps repository sentinels onto the domain error catalogue.
func translateRepoError(err error, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrPersonNotFound):
		return domainerrors.ErrPersonNotFound.WithDetails(id)
	case errors.Is(err, repository.ErrPersonExists):
		return domainerrors.ErrIDCollision.WithDetails(id)
	default:
		return err
	}
}

func findPerson(ctx context.Context, repo repository.PersonRepository, id string) (*entity.Person, error) {
	person, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, id)
	}

	return person, nil
}

// findOptional returns nil without an error when the record does not exist.
func findOptional(ctx context.Context, repo repository.PersonRepository, id string) (*entity.Person, error) {
	if id == "" {
		return nil, nil
	}
	person, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateRepoError(err, id)
	}

	return person, nil
}

// findLinkTarget loads the record to be linked into slot of owner and checks
// the pairing. A missing target is a hard failure.
func findLinkTarget(ctx context.Context, repo repository.PersonRepository, owner *entity.Person, slot entity.RelationSlot, targetID string) (*entity.Person, error) {
	if targetID == owner.ID {
		return nil, domainerrors.ErrInvariantViolation.WithDetails("a person cannot be linked to themselves")
	}
	target, err := findPerson(ctx, repo, targetID)
	if err != nil {
		return nil, err
	}
	if err := checkLink(owner, slot, target); err != nil {
		return nil, err
	}

	return target, nil
}

// checkLink rejects a relative whose gender does not fit the slot.
func checkLink(owner *entity.Person, slot entity.RelationSlot, target *entity.Person) error {
	if want := slot.RequiredGender(owner.Gender); target.Gender != want {
		return domainerrors.ErrInvariantViolation.WithDetails(
			string(slot) + " " + target.ID + " must be " + string(want) + ", got " + string(target.Gender))
	}

	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func validateInput(input *usecase.CreatePersonInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing person")
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Surname) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and surname are required")
	}
	if !input.Gender.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("invalid gender " + string(input.Gender))
	}
	if input.MaritalStatus != "" && !input.MaritalStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("invalid marital status " + string(input.MaritalStatus))
	}

	return nil
}

func validatePatch(patch *usecase.PersonPatch) error {
	if patch == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing patch")
	}
	for field, value := range map[string]*string{"name": patch.Name, "surname": patch.Surname} {
		if value != nil && strings.TrimSpace(*value) == "" {
			return domainerrors.ErrValidationFailed.WithDetails(field + " cannot be empty")
		}
	}
	if patch.Gender != nil && !patch.Gender.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("invalid gender " + string(*patch.Gender))
	}
	if patch.MaritalStatus != nil && !patch.MaritalStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("invalid marital status " + string(*patch.MaritalStatus))
	}
	if patch.MaritalStatus != nil && *patch.MaritalStatus == entity.MaritalSingle &&
		patch.Spouse != nil && patch.Spouse.IsLinked() {
		return domainerrors.ErrInvariantViolation.WithDetails("a single person cannot be linked to a spouse")
	}

	return nil
}

// newPerson builds the record stored for input. The ID is assigned later.
func newPerson(input *usecase.CreatePersonInput, status entity.Status) *entity.Person {
	person := &entity.Person{
		Name:              input.Name,
		Surname:           input.Surname,
		MaidenName:        input.MaidenName,
		Family:            input.Family,
		Gender:            input.Gender,
		MaritalStatus:     input.MaritalStatus,
		Father:            input.Father,
		Mother:            input.Mother,
		Spouse:            input.Spouse,
		BirthMonth:        input.BirthMonth,
		BirthYear:         input.BirthYear,
		ProfilePictureURL: input.ProfilePictureURL,
		Description:       input.Description,
		Status:            status,
		IsDeceased:        input.IsDeceased,
	}
	if person.MaritalStatus == "" {
		person.MaritalStatus = entity.MaritalSingle
	}
	if person.ProfilePictureURL == "" {
		person.ProfilePictureURL = entity.DefaultProfilePictureURL
	}
	if input.IsDeceased && input.DeathDate != nil {
		deathDate := input.DeathDate.UTC()
		person.DeathDate = &deathDate
	}

	return person
}

// fieldPatch converts the plain fields of patch, leaving relations out.
// It also applies them to person.
func fieldPatch(person *entity.Person, patch *usecase.PersonPatch) repository.Patch {
	out := repository.Patch{}
	setString := func(field string, value *string, target *string, deleteEmpty bool) {
		if value == nil {
			return
		}
		*target = *value
		if deleteEmpty && *value == "" {
			out.Delete(field)

			return
		}
		out.Set(field, *value)
	}

	setString(repository.FieldName, patch.Name, &person.Name, false)
	setString(repository.FieldSurname, patch.Surname, &person.Surname, false)
	setString(repository.FieldMaidenName, patch.MaidenName, &person.MaidenName, false)
	setString(repository.FieldFamily, patch.Family, &person.Family, false)
	setString(repository.FieldBirthMonth, patch.BirthMonth, &person.BirthMonth, true)
	setString(repository.FieldBirthYear, patch.BirthYear, &person.BirthYear, true)
	setString(repository.FieldProfilePictureURL, patch.ProfilePictureURL, &person.ProfilePictureURL, false)
	setString(repository.FieldDescription, patch.Description, &person.Description, false)

	if patch.Gender != nil {
		person.Gender = *patch.Gender
		out.Set(repository.FieldGender, *patch.Gender)
	}
	if patch.MaritalStatus != nil {
		person.MaritalStatus = *patch.MaritalStatus
		out.Set(repository.FieldMaritalStatus, *patch.MaritalStatus)
	}
	if patch.IsDeceased != nil {
		person.IsDeceased = *patch.IsDeceased
		out.Set(repository.FieldIsDeceased, *patch.IsDeceased)
		if !*patch.IsDeceased {
			person.DeathDate = nil
			out.Delete(repository.FieldDeathDate)
		}
	}
	if patch.DeathDate != nil && person.IsDeceased {
		deathDate := patch.DeathDate.UTC()
		person.DeathDate = &deathDate
		out.Set(repository.FieldDeathDate, deathDate)
	}

	return out
}
