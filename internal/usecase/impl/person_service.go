// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"familytree/config"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/domain/service"
	"familytree/internal/errors"
	"familytree/internal/usecase"

	"go.uber.org/fx"
)

const defaultMaxAttempts = 5

// Mutation names reported to the metrics backend.
const (
	opCreate          = "create"
	opUpdate          = "update"
	opSoftDelete      = "soft_delete"
	opRecover         = "recover"
	opPurge           = "purge"
	opSetApproval     = "set_approval"
	opBulkSetApproval = "bulk_set_approval"
	opBulkSetDeceased = "bulk_set_deceased"
	opImport          = "import"
)

// personService implements the PersonUsecase interface.
type personService struct {
	txManager   repository.TransactionManager
	ids         service.IDGenerator
	publisher   service.EventPublisher
	notifier    service.NotificationService
	metrics     service.GraphMetrics
	adminTopic  string
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

// PersonServiceParams holds dependencies for PersonService, injected by Fx.
type PersonServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	IDs       service.IDGenerator
	Publisher service.EventPublisher
	Notifier  service.NotificationService
	Metrics   service.GraphMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(params PersonServiceParams) usecase.PersonUsecase {
	maxAttempts := defaultMaxAttempts
	adminTopic := ""
	if params.Config != nil {
		if params.Config.IDs != nil && params.Config.IDs.MaxAttempts > 0 {
			maxAttempts = params.Config.IDs.MaxAttempts
		}
		if params.Config.Notification != nil && params.Config.Notification.Enabled {
			adminTopic = params.Config.Notification.AdminTopic
		}
	}

	return &personService{
		txManager:   params.TxManager,
		ids:         params.IDs,
		publisher:   params.Publisher,
		notifier:    params.Notifier,
		metrics:     params.Metrics,
		adminTopic:  adminTopic,
		maxAttempts: maxAttempts,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *personService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePerson stores a new person and back-links its spouse in one transaction.
func (srv *personService) CreatePerson(ctx context.Context, input *usecase.CreatePersonInput, status entity.Status) (*entity.Person, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if status != entity.StatusPending && status != entity.StatusApproved {
		return nil, domainerrors.ErrValidationFailed.WithDetails("new records are pending or approved, got " + string(status))
	}

	var (
		created *entity.Person
		touched []string
	)
	err := srv.withIDRetry(ctx, opCreate, func() error {
		var err error
		created, touched, err = srv.createOnce(ctx, input, status)

		return err
	})
	srv.observe(opCreate, err)
	if err != nil {
		srv.log(ctx).Error("Failed to create person", slog.String("surname", input.Surname), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Person created",
		slog.String("person_id", created.ID),
		slog.String("status", string(status)),
		slog.Int("linked_records", len(touched)))
	srv.publish(ctx, service.PersonCreated, append([]string{created.ID}, touched...), status)
	if status == entity.StatusPending {
		srv.notifyPending(ctx, created)
	}

	return created, nil
}

func (srv *personService) createOnce(ctx context.Context, input *usecase.CreatePersonInput, status entity.Status) (*entity.Person, []string, error) {
	alloc := srv.ids.Reserve(input.Surname)
	defer alloc.Release()

	var (
		person *entity.Person
		writes *patchSet
	)
	// The store may run fn again on contention, so every attempt starts over.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPersonRepository()
		person = newPerson(input, status)
		writes = newPatchSet()

		if err := resolveParents(ctx, repo, person); err != nil {
			return err
		}

		var spouse *entity.Person
		if spouseID := input.Spouse.LinkedID(); spouseID != "" {
			var err error
			spouse, err = findLinkTarget(ctx, repo, person, entity.SlotSpouse, spouseID)
			if err != nil {
				return err
			}
			if err := srv.detachPriorPartner(ctx, repo, spouse, "", writes); err != nil {
				return err
			}
			person.Spouse = entity.Linked(spouse.ID, spouse.DisplayName())
			person.MaritalStatus = entity.MaritalMarried
		}

		id, err := alloc.Next(ctx, repo, person.Surname)
		if err != nil {
			return errors.Wrap(err, "failed to allocate person id")
		}
		person.ID = id

		if err := repo.Create(ctx, person); err != nil {
			return translateRepoError(err, id)
		}
		if spouse != nil {
			writes.add(spouse.ID, linkSpousePatch(person))
		}

		return writes.apply(ctx, repo)
	})
	if err != nil {
		id := ""
		if person != nil {
			id = person.ID
		}

		return nil, nil, translateRepoError(err, id)
	}

	return person, writes.ids(), nil
}

// resolveParents checks the linked parents of a new person and caches their names.
func resolveParents(ctx context.Context, repo repository.PersonRepository, person *entity.Person) error {
	for _, slot := range []entity.RelationSlot{entity.SlotFather, entity.SlotMother} {
		rel := person.Slot(slot)
		if !rel.IsLinked() {
			continue
		}
		parent, err := findLinkTarget(ctx, repo, person, slot, rel.ID)
		if err != nil {
			return err
		}
		person.SetSlot(slot, entity.Linked(parent.ID, parent.DisplayName()))
	}

	return nil
}

// detachPriorPartner queues the reset of the partner spouse was linked to,
// unless that partner is keep. A missing partner is skipped.
func (srv *personService) detachPriorPartner(ctx context.Context, repo repository.PersonRepository, spouse *entity.Person, keep string, writes *patchSet) error {
	priorID := spouse.Spouse.LinkedID()
	if priorID == "" || priorID == keep {
		return nil
	}
	prior, err := findOptional(ctx, repo, priorID)
	if err != nil {
		return err
	}
	if prior == nil {
		srv.log(ctx).Warn("Prior partner not found, skipping",
			slog.String("person_id", spouse.ID), slog.String("partner_id", priorID))

		return nil
	}
	if detachable(prior, spouse.ID) {
		writes.add(priorID, clearSpousePatch())
	}

	return nil
}

// ImportBatch stores every record as approved. Relations are stored as given.
func (srv *personService) ImportBatch(ctx context.Context, records []*usecase.CreatePersonInput) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	surnames := make([]string, 0, len(records))
	for i, record := range records {
		if err := validateInput(record); err != nil {
			return 0, errors.Wrapf(err, "record %d", i)
		}
		surnames = append(surnames, record.Surname)
	}

	var ids []string
	err := srv.withIDRetry(ctx, opImport, func() error {
		var err error
		ids, err = srv.importOnce(ctx, records, surnames)

		return err
	})
	srv.observe(opImport, err)
	if err != nil {
		srv.log(ctx).Error("Failed to import people", slog.Int("records", len(records)), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Info("People imported", slog.Int("count", len(ids)))
	srv.publish(ctx, service.PersonImported, ids, entity.StatusApproved)

	return len(ids), nil
}

func (srv *personService) importOnce(ctx context.Context, records []*usecase.CreatePersonInput, surnames []string) ([]string, error) {
	alloc := srv.ids.Reserve(surnames...)
	defer alloc.Release()

	var people []*entity.Person
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPersonRepository()
		people = make([]*entity.Person, 0, len(records))
		for _, record := range records {
			people = append(people, newPerson(record, entity.StatusApproved))
		}

		// Every ID is minted before the first write.
		for _, person := range people {
			id, err := alloc.Next(ctx, repo, person.Surname)
			if err != nil {
				return errors.Wrap(err, "failed to allocate person id")
			}
			person.ID = id
		}
		for _, person := range people {
			if err := repo.Create(ctx, person); err != nil {
				return translateRepoError(err, person.ID)
			}
		}

		return nil
	})
	if err != nil {
		return nil, translateRepoError(err, "")
	}

	ids := make([]string, 0, len(people))
	for _, person := range people {
		ids = append(ids, person.ID)
	}

	return ids, nil
}

// withIDRetry repeats fn while it fails with a retryable ID collision.
func (srv *personService) withIDRetry(ctx context.Context, operation string, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !domainerrors.IsRetryable(err) || attempt >= srv.maxAttempts {
			return err
		}
		if srv.metrics != nil {
			srv.metrics.ObserveIDCollision()
		}
		srv.log(ctx).Warn("Person ID collision, retrying",
			slog.String("operation", operation),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
	}
}

func (srv *personService) observe(operation string, err error) {
	if srv.metrics != nil {
		srv.metrics.ObserveMutation(operation, err)
	}
}

// publish emits an event after commit. Delivery failures are logged only.
func (srv *personService) publish(ctx context.Context, eventType service.PersonEventType, ids []string, status entity.Status) {
	if srv.publisher == nil || len(ids) == 0 {
		return
	}
	event := &service.PersonEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PersonIDs:  ids,
		Status:     status,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishPersonEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish person event",
			slog.String("type", string(eventType)), slog.Any("error", err))
	}
}

// notifyPending tells administrators that a registration awaits approval.
func (srv *personService) notifyPending(ctx context.Context, person *entity.Person) {
	if srv.notifier == nil || srv.adminTopic == "" {
		return
	}
	data := map[string]string{"personId": person.ID, "status": string(person.Status)}
	err := srv.notifier.SendTopicNotification(ctx, srv.adminTopic,
		"New registration", person.FullName()+" is awaiting approval", data)
	if err != nil {
		srv.log(ctx).Warn("Failed to notify administrators",
			slog.String("person_id", person.ID), slog.Any("error", err))
	}
}
