package impl

import (
	"context"
	"log/slog"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/domain/service"
	"familytree/internal/usecase"
)

// UpdatePerson applies patch and repairs spouse links on both sides:
//  1. a previous spouse that is replaced or dropped is reset to single;
//  2. a prior partner of the new spouse is reset to single;
//  3. the new spouse is linked back and marked married;
//  4. marking the person single clears its own spouse slot.
func (srv *personService) UpdatePerson(ctx context.Context, id string, patch *usecase.PersonPatch) error {
	if err := validatePatch(patch); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	var touched []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPersonRepository()

		current, err := findPerson(ctx, repo, id)
		if err != nil {
			return err
		}
		writes, err := srv.planUpdate(ctx, repo, current, patch)
		if err != nil {
			return err
		}
		touched = writes.ids()

		return writes.apply(ctx, repo)
	})
	err = translateRepoError(err, id)
	srv.observe(opUpdate, err)
	if err != nil {
		srv.log(ctx).Error("Failed to update person", slog.String("person_id", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Person updated", slog.String("person_id", id), slog.Any("records", touched))
	srv.publish(ctx, service.PersonUpdated, touched, "")

	return nil
}

// planUpdate reads every record the patch depends on and returns the writes.
// The updated person is always the first record of the set.
func (srv *personService) planUpdate(ctx context.Context, repo repository.PersonRepository, current *entity.Person, patch *usecase.PersonPatch) (*patchSet, error) {
	id := current.ID
	updated := current.Clone()
	own := fieldPatch(updated, patch)
	writes := newPatchSet()
	writes.add(id, own)

	if patch.Gender != nil && *patch.Gender != current.Gender {
		if err := ensureChildless(ctx, repo, current); err != nil {
			return nil, err
		}
	}

	for _, slot := range []entity.RelationSlot{entity.SlotFather, entity.SlotMother} {
		rel := patch.Slot(slot)
		if rel == nil {
			continue
		}
		resolved := *rel
		if rel.IsLinked() {
			parent, err := findLinkTarget(ctx, repo, updated, slot, rel.ID)
			if err != nil {
				return nil, err
			}
			resolved = entity.Linked(parent.ID, parent.DisplayName())
		}
		updated.SetSlot(slot, resolved)
		own.SetRelation(slot, resolved)
	}

	single := patch.MaritalStatus != nil && *patch.MaritalStatus == entity.MaritalSingle
	spouseChanged := patch.Spouse != nil || single

	next := current.Spouse
	if patch.Spouse != nil {
		next = *patch.Spouse
	}
	if single {
		next = entity.NoRelation()
	}

	oldSpouseID := current.Spouse.LinkedID()
	newSpouseID := next.LinkedID()

	if oldSpouseID != "" && oldSpouseID != newSpouseID {
		old, err := findOptional(ctx, repo, oldSpouseID)
		if err != nil {
			return nil, err
		}
		switch {
		case old == nil:
			srv.log(ctx).Warn("Previous spouse not found, skipping",
				slog.String("person_id", id), slog.String("spouse_id", oldSpouseID))
		case detachable(old, id):
			writes.add(oldSpouseID, clearSpousePatch())
		}
	}

	if newSpouseID != "" {
		spouse, err := srv.loadSpouse(ctx, repo, updated, newSpouseID, newSpouseID == oldSpouseID)
		if err != nil {
			return nil, err
		}
		if spouse != nil {
			if err := srv.detachPriorPartner(ctx, repo, spouse, id, writes); err != nil {
				return nil, err
			}

			next = entity.Linked(spouse.ID, spouse.DisplayName())
			if next != current.Spouse {
				spouseChanged = true
			}
			if updated.MaritalStatus != entity.MaritalMarried {
				updated.MaritalStatus = entity.MaritalMarried
				own.Set(repository.FieldMaritalStatus, entity.MaritalMarried)
			}
			if needsBackLink(spouse, updated) {
				writes.add(spouse.ID, linkSpousePatch(updated))
			}
		}
	}

	if spouseChanged {
		updated.Spouse = next
		own.SetRelation(entity.SlotSpouse, next)
	}

	return writes, nil
}

// loadSpouse loads the spouse person ends up linked to. A newly linked
// spouse must exist; a kept spouse that has gone missing is skipped.
func (srv *personService) loadSpouse(ctx context.Context, repo repository.PersonRepository, person *entity.Person, spouseID string, kept bool) (*entity.Person, error) {
	if !kept {
		return findLinkTarget(ctx, repo, person, entity.SlotSpouse, spouseID)
	}
	spouse, err := findOptional(ctx, repo, spouseID)
	if err != nil {
		return nil, err
	}
	if spouse == nil {
		srv.log(ctx).Warn("Linked spouse not found, skipping",
			slog.String("person_id", person.ID), slog.String("spouse_id", spouseID))

		return nil, nil
	}
	if err := checkLink(person, entity.SlotSpouse, spouse); err != nil {
		return nil, err
	}

	return spouse, nil
}

// needsBackLink reports whether spouse does not yet point at person with its
// current display name.
func needsBackLink(spouse, person *entity.Person) bool {
	return spouse.Spouse.LinkedID() != person.ID ||
		spouse.Spouse.Name != person.DisplayName() ||
		spouse.MaritalStatus != entity.MaritalMarried
}

// ensureChildless rejects a gender change of a person linked as a parent.
func ensureChildless(ctx context.Context, repo repository.PersonRepository, person *entity.Person) error {
	for _, field := range []string{repository.FieldFatherID, repository.FieldMotherID} {
		children, err := repo.FindByField(ctx, field, person.ID)
		if err != nil {
			return translateRepoError(err, person.ID)
		}
		if len(children) > 0 {
			return domainerrors.ErrInvariantViolation.WithDetails(
				"cannot change the gender of " + person.ID + " while linked as " + field)
		}
	}

	return nil
}

// LinkRelation links slot of the person to targetID.
func (srv *personService) LinkRelation(ctx context.Context, id string, slot entity.RelationSlot, targetID string) error {
	if !slot.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown relation " + string(slot))
	}
	if targetID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("missing relative id")
	}
	rel := entity.Linked(targetID, "")

	return srv.UpdatePerson(ctx, id, relationPatch(slot, &rel))
}

// ClearRelation empties slot of the person. Clearing a linked spouse also
// resets that spouse.
func (srv *personService) ClearRelation(ctx context.Context, id string, slot entity.RelationSlot) error {
	if !slot.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown relation " + string(slot))
	}
	rel := entity.NoRelation()

	return srv.UpdatePerson(ctx, id, relationPatch(slot, &rel))
}

func relationPatch(slot entity.RelationSlot, rel *entity.Relation) *usecase.PersonPatch {
	patch := &usecase.PersonPatch{}
	switch slot {
	case entity.SlotFather:
		patch.Father = rel
	case entity.SlotMother:
		patch.Mother = rel
	case entity.SlotSpouse:
		patch.Spouse = rel
	}

	return patch
}
