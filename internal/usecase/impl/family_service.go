package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/genealogy"
	"familytree/internal/domain/lifecycle"
	"familytree/internal/domain/repository"
	"familytree/internal/usecase"

	"go.uber.org/fx"
)

// familyService implements the FamilyUsecase interface.
type familyService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// FamilyServiceParams holds dependencies for FamilyService, injected by Fx.
type FamilyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewFamilyService is the constructor for familyService.
func NewFamilyService(params FamilyServiceParams) usecase.FamilyUsecase {
	return &familyService{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *familyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// snapshot reads the whole collection in one transaction.
func (srv *familyService) snapshot(ctx context.Context) (*genealogy.Snapshot, error) {
	var people []*entity.Person
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		people, err = repoFactory.NewPersonRepository().FindAll(ctx)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load people", slog.Any("error", err))

		return nil, err
	}

	return genealogy.NewSnapshot(people), nil
}

// visiblePerson finds id in snapshot and checks scope may see it.
func visiblePerson(snapshot *genealogy.Snapshot, id string, scope *entity.ActorScope) (*entity.Person, error) {
	person := snapshot.FindByID(id)
	if person == nil {
		return nil, domainerrors.ErrPersonNotFound.WithDetails(id)
	}
	if scope != nil && !genealogy.IsVisible(person, *scope) {
		return nil, domainerrors.ErrForbidden.WithDetails("person " + id + " is outside your scope")
	}

	return person, nil
}

// GetPerson returns one record visible to scope.
func (srv *familyService) GetPerson(ctx context.Context, id string, scope *entity.ActorScope) (*entity.Person, error) {
	var person *entity.Person
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		person, err = findPerson(ctx, repoFactory.NewPersonRepository(), id)

		return err
	})
	if err != nil {
		return nil, translateRepoError(err, id)
	}
	if scope != nil && !genealogy.IsVisible(person, *scope) {
		return nil, domainerrors.ErrForbidden.WithDetails("person " + id + " is outside your scope")
	}

	return person, nil
}

// List returns the records matching filter in ID order.
func (srv *familyService) List(ctx context.Context, filter usecase.ListFilter) ([]*entity.Person, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid status " + string(filter.Status))
	}
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	snapshot = genealogy.FilterVisible(snapshot, filter.Scope)
	if filter.Status != "" {
		snapshot = snapshot.Filter(func(p *entity.Person) bool { return p.Status == filter.Status })
	}
	if filter.Unlinked {
		return snapshot.Unlinked(), nil
	}

	return snapshot.People(), nil
}

// Directory returns the approved records.
func (srv *familyService) Directory(ctx context.Context) ([]*entity.Person, error) {
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return snapshot.Approved().People(), nil
}

// Dustbin returns the deleted records visible to scope with their retention countdown.
func (srv *familyService) Dustbin(ctx context.Context, scope *entity.ActorScope) ([]*usecase.DustbinEntry, error) {
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	deleted := genealogy.FilterVisible(snapshot, scope).Filter(func(p *entity.Person) bool {
		return p.Status == entity.StatusDeleted
	})
	entries := make([]*usecase.DustbinEntry, 0, deleted.Len())
	for _, person := range deleted.People() {
		entries = append(entries, &usecase.DustbinEntry{
			Person:        person,
			DaysRemaining: lifecycle.DaysRemaining(person.DeletedAt, now),
			PurgeEligible: lifecycle.PurgeEligible(person.DeletedAt, now),
		})
	}

	return entries, nil
}

// PublicFamilyView derives the family of an approved person over approved
// records only. Unapproved records are reported as not found.
func (srv *familyService) PublicFamilyView(ctx context.Context, id string) (*genealogy.FamilyView, error) {
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := snapshot.Approved().BuildFamilyView(id)
	if view == nil {
		return nil, domainerrors.ErrPersonNotFound.WithDetails(id)
	}

	return view, nil
}

// AdminFamilyView derives the family of a person visible to scope over every record.
func (srv *familyService) AdminFamilyView(ctx context.Context, id string, scope *entity.ActorScope) (*genealogy.FamilyView, error) {
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := visiblePerson(snapshot, id, scope); err != nil {
		return nil, err
	}

	return snapshot.BuildFamilyView(id), nil
}

// Candidates returns the approved records visible to scope that may be
// linked into slot of the person.
func (srv *familyService) Candidates(ctx context.Context, id string, slot entity.RelationSlot, scope *entity.ActorScope) ([]*entity.Person, error) {
	if !slot.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown relation " + string(slot))
	}
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	person, err := visiblePerson(snapshot, id, scope)
	if err != nil {
		return nil, err
	}

	return genealogy.FilterVisible(snapshot, scope).Candidates(person, slot), nil
}

// CheckIntegrity reports every broken edge in the collection.
func (srv *familyService) CheckIntegrity(ctx context.Context) ([]genealogy.Violation, error) {
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	violations := snapshot.CheckIntegrity()
	if len(violations) > 0 {
		srv.log(ctx).Warn("Family graph integrity violations found", slog.Int("count", len(violations)))
	}

	return violations, nil
}
