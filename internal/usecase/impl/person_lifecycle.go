package impl

import (
	"context"
	"log/slog"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/lifecycle"
	"familytree/internal/domain/repository"
	"familytree/internal/domain/service"
)

// SoftDelete moves a pending or approved record to the dustbin. Edges are kept.
func (srv *personService) SoftDelete(ctx context.Context, id string) error {
	return srv.transition(ctx, opSoftDelete, []string{id}, lifecycle.ActionSoftDelete, service.PersonDeleted)
}

// Recover brings a deleted record back as approved. Recovering an approved
// record only clears a stray deletion stamp.
func (srv *personService) Recover(ctx context.Context, id string) error {
	return srv.transition(ctx, opRecover, []string{id}, lifecycle.ActionRecover, service.PersonRecovered)
}

// SetApproval approves or unapproves a record. Deleted records are rejected.
func (srv *personService) SetApproval(ctx context.Context, id string, approved bool) error {
	action, event := approvalAction(approved)

	return srv.transition(ctx, opSetApproval, []string{id}, action, event)
}

// BulkSetApproval approves or unapproves every record, or none when one of
// them cannot make the transition.
func (srv *personService) BulkSetApproval(ctx context.Context, ids []string, approved bool) error {
	action, event := approvalAction(approved)

	return srv.transition(ctx, opBulkSetApproval, ids, action, event)
}

func approvalAction(approved bool) (lifecycle.Action, service.PersonEventType) {
	if approved {
		return lifecycle.ActionApprove, service.PersonApproved
	}

	return lifecycle.ActionUnapprove, service.PersonUnapproved
}

// transition applies a lifecycle action to every record in one transaction.
func (srv *personService) transition(ctx context.Context, operation string, ids []string, action lifecycle.Action, eventType service.PersonEventType) error {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}

	var status entity.Status
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPersonRepository()

		writes := newPatchSet()
		for _, id := range ids {
			person, err := findPerson(ctx, repo, id)
			if err != nil {
				return err
			}
			next, err := lifecycle.Next(person.Status, action)
			if err != nil {
				return domainerrors.ErrInvalidTransition.WithDetails(id + ": " + string(action) + " from " + string(person.Status))
			}
			status = next
			writes.add(id, srv.statusPatch(next, action))
		}

		return writes.apply(ctx, repo)
	})
	err = translateRepoError(err, "")
	srv.observe(operation, err)
	if err != nil {
		srv.log(ctx).Error("Failed to change person status",
			slog.String("action", string(action)), slog.Any("person_ids", ids), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Person status changed",
		slog.String("action", string(action)), slog.Any("person_ids", ids), slog.String("status", string(status)))
	srv.publish(ctx, eventType, ids, status)

	return nil
}

func (srv *personService) statusPatch(status entity.Status, action lifecycle.Action) repository.Patch {
	patch := repository.Patch{}.Set(repository.FieldStatus, status)
	switch action {
	case lifecycle.ActionSoftDelete:
		patch.Set(repository.FieldDeletedAt, srv.now().UTC())
	case lifecycle.ActionRecover:
		patch.Delete(repository.FieldDeletedAt)
	}

	return patch
}

// Purge removes a deleted record. In the same transaction it resets a spouse
// linked to the record and unlinks every child of it.
func (srv *personService) Purge(ctx context.Context, id string) error {
	var touched []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPersonRepository()

		person, err := findPerson(ctx, repo, id)
		if err != nil {
			return err
		}
		if person.Status != entity.StatusDeleted {
			return domainerrors.ErrInvalidTransition.WithDetails(id + ": purge from " + string(person.Status))
		}

		writes, err := planPurge(ctx, repo, person)
		if err != nil {
			return err
		}
		touched = writes.ids()

		if err := writes.apply(ctx, repo); err != nil {
			return err
		}

		return translateRepoError(repo.Delete(ctx, id), id)
	})
	err = translateRepoError(err, id)
	srv.observe(opPurge, err)
	if err != nil {
		srv.log(ctx).Error("Failed to purge person", slog.String("person_id", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Person purged", slog.String("person_id", id), slog.Int("unlinked_records", len(touched)))
	srv.publish(ctx, service.PersonPurged, append([]string{id}, touched...), "")

	return nil
}

// planPurge queries every record pointing at person before any write.
func planPurge(ctx context.Context, repo repository.PersonRepository, person *entity.Person) (*patchSet, error) {
	writes := newPatchSet()

	partners, err := repo.FindByField(ctx, repository.FieldSpouseID, person.ID)
	if err != nil {
		return nil, translateRepoError(err, person.ID)
	}
	for _, partner := range partners {
		if partner.ID != person.ID {
			writes.add(partner.ID, clearSpousePatch())
		}
	}

	for _, field := range []string{repository.FieldFatherID, repository.FieldMotherID} {
		children, err := repo.FindByField(ctx, field, person.ID)
		if err != nil {
			return nil, translateRepoError(err, person.ID)
		}
		for _, child := range children {
			if child.ID != person.ID {
				writes.add(child.ID, repository.Patch{}.Delete(field))
			}
		}
	}

	return writes, nil
}

// BulkSetDeceased sets the deceased flag on every record, or none when one
// of them does not exist. Clearing the flag also removes the death date.
func (srv *personService) BulkSetDeceased(ctx context.Context, ids []string, isDeceased bool) error {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPersonRepository()

		for _, id := range ids {
			if _, err := findPerson(ctx, repo, id); err != nil {
				return err
			}
		}

		writes := newPatchSet()
		for _, id := range ids {
			patch := repository.Patch{}.Set(repository.FieldIsDeceased, isDeceased)
			if !isDeceased {
				patch.Delete(repository.FieldDeathDate)
			}
			writes.add(id, patch)
		}

		return writes.apply(ctx, repo)
	})
	err = translateRepoError(err, "")
	srv.observe(opBulkSetDeceased, err)
	if err != nil {
		srv.log(ctx).Error("Failed to set deceased flag", slog.Any("person_ids", ids), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Deceased flag set", slog.Any("person_ids", ids), slog.Bool("is_deceased", isDeceased))
	srv.publish(ctx, service.PersonDeceased, ids, "")

	return nil
}
