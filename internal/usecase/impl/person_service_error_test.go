package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"familytree/config"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"
	mockRepo "familytree/internal/mocks/repository"
	mockSvc "familytree/internal/mocks/service"
	"familytree/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockedPersonServiceFixtures drives the graph store through mocks to reach
// failure paths the in-memory store cannot produce.
type mockedPersonServiceFixtures struct {
	service   usecase.PersonUsecase
	txManager *mockRepo.MockTransactionManager
	repo      *mockRepo.MockPersonRepository
	ids       *mockSvc.MockIDGenerator
	alloc     *mockSvc.MockIDAllocation
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockGraphMetrics
}

func createMockedPersonService(t *testing.T) mockedPersonServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repo := mockRepo.NewMockPersonRepository(t)
	ids := mockSvc.NewMockIDGenerator(t)
	alloc := mockSvc.NewMockIDAllocation(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockGraphMetrics(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPersonService(PersonServiceParams{
		TxManager: txManager,
		IDs:       ids,
		Publisher: publisher,
		Notifier:  mockSvc.NewMockNotificationService(t),
		Metrics:   metrics,
		Config:    &config.Config{IDs: &config.IDsConfig{MaxAttempts: 3}},
		Logger:    logger,
	})

	return mockedPersonServiceFixtures{
		service:   svc,
		txManager: txManager,
		repo:      repo,
		ids:       ids,
		alloc:     alloc,
		publisher: publisher,
		metrics:   metrics,
	}
}

// runTx makes the transaction manager run fn against the mocked repository.
func (fx mockedPersonServiceFixtures) runTx(t *testing.T) *mockRepo.MockTransactionManager_Execute_Call {
	return fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewPersonRepository().Return(fx.repo)

			return fn(mockFactory)
		})
}

func (fx mockedPersonServiceFixtures) expectFailure(operation string, target error) {
	fx.metrics.EXPECT().
		ObserveMutation(operation, mock.MatchedBy(func(err error) bool { return errors.Is(err, target) })).
		Return().
		Once()
}

func TestPersonService_CreatePerson_ValidationError(t *testing.T) {
	fx := createMockedPersonService(t)

	tests := []struct {
		name   string
		input  *usecase.CreatePersonInput
		status entity.Status
	}{
		{name: "nil input", input: nil, status: entity.StatusApproved},
		{name: "missing surname", input: &usecase.CreatePersonInput{Name: "ARJUN", Gender: entity.GenderMale}, status: entity.StatusApproved},
		{name: "unknown gender", input: &usecase.CreatePersonInput{Name: "ARJUN", Surname: "PATEL", Gender: "other"}, status: entity.StatusApproved},
		{name: "unknown marital status", input: &usecase.CreatePersonInput{Name: "ARJUN", Surname: "PATEL", Gender: entity.GenderMale, MaritalStatus: "widowed"}, status: entity.StatusApproved},
		{name: "deleted status", input: man("ARJUN"), status: entity.StatusDeleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreatePerson(context.Background(), tt.input, tt.status)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPersonService_CreatePerson_StoreUnavailable(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewStoreError(errors.New("connection refused"), "failed to begin transaction")

	fx.ids.EXPECT().Reserve("PATEL").Return(fx.alloc).Once()
	fx.alloc.EXPECT().Release().Return().Once()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(storeErr).
		Once()
	fx.expectFailure(opCreate, domainerrors.ErrStoreUnavailable)

	person, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusApproved)

	assert.Nil(t, person)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestPersonService_CreatePerson_RetriesIDCollision(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.ids.EXPECT().Reserve("PATEL").Return(fx.alloc).Times(2)
	fx.alloc.EXPECT().Release().Return().Times(2)
	fx.alloc.EXPECT().Next(ctx, fx.repo, "PATEL").Return("PAT-240615-001", nil).Once()
	fx.alloc.EXPECT().Next(ctx, fx.repo, "PATEL").Return("PAT-240615-002", nil).Once()
	fx.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Person) bool { return p.ID == "PAT-240615-001" })).
		Return(errors.Wrap(repository.ErrPersonExists, "create PAT-240615-001")).
		Once()
	fx.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Person) bool { return p.ID == "PAT-240615-002" })).
		Return(nil).
		Once()
	fx.runTx(t).Times(2)
	fx.metrics.EXPECT().ObserveIDCollision().Return().Once()
	fx.metrics.EXPECT().ObserveMutation(opCreate, nil).Return().Once()
	fx.publisher.EXPECT().PublishPersonEvent(ctx, mock.Anything).Return(nil).Once()

	person, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, "PAT-240615-002", person.ID)
}

func TestPersonService_CreatePerson_GivesUpAfterMaxAttempts(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()
	conflict := errors.Wrap(repository.ErrPersonExists, "commit")

	fx.ids.EXPECT().Reserve("PATEL").Return(fx.alloc).Times(3)
	fx.alloc.EXPECT().Release().Return().Times(3)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(conflict).
		Times(3)
	fx.metrics.EXPECT().ObserveIDCollision().Return().Times(2)
	fx.expectFailure(opCreate, domainerrors.ErrIDCollision)

	_, err := fx.service.CreatePerson(ctx, man("ARJUN"), entity.StatusApproved)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIDCollision)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestPersonService_CreatePerson_SpouseNotFound(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.ids.EXPECT().Reserve("PATEL").Return(fx.alloc).Once()
	fx.alloc.EXPECT().Release().Return().Once()
	fx.repo.EXPECT().FindByID(ctx, "PAT-240101-001").Return(nil, repository.ErrPersonNotFound).Once()
	fx.runTx(t).Once()
	fx.expectFailure(opCreate, domainerrors.ErrPersonNotFound)

	input := man("ARJUN")
	input.Spouse = entity.Linked("PAT-240101-001", "")
	_, err := fx.service.CreatePerson(ctx, input, entity.StatusApproved)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPersonService_CreatePerson_SameGenderSpouse(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.ids.EXPECT().Reserve("PATEL").Return(fx.alloc).Once()
	fx.alloc.EXPECT().Release().Return().Once()
	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Name: "BHARAT", Surname: "PATEL", Gender: entity.GenderMale}, nil).
		Once()
	fx.runTx(t).Once()
	fx.expectFailure(opCreate, domainerrors.ErrInvariantViolation)

	input := man("ARJUN")
	input.Spouse = entity.Linked("PAT-240101-001", "")
	_, err := fx.service.CreatePerson(ctx, input, entity.StatusApproved)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestPersonService_CreatePerson_MotherMustBeFemale(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.ids.EXPECT().Reserve("PATEL").Return(fx.alloc).Once()
	fx.alloc.EXPECT().Release().Return().Once()
	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Gender: entity.GenderMale}, nil).
		Once()
	fx.runTx(t).Once()
	fx.expectFailure(opCreate, domainerrors.ErrInvariantViolation)

	input := man("ARJUN")
	input.Mother = entity.Linked("PAT-240101-001", "")
	_, err := fx.service.CreatePerson(ctx, input, entity.StatusApproved)

	assert.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestPersonService_UpdatePerson_NotFound(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()
	name := "ARVIND"

	fx.repo.EXPECT().FindByID(ctx, "PAT-240101-009").Return(nil, repository.ErrPersonNotFound).Once()
	fx.runTx(t).Once()
	fx.expectFailure(opUpdate, domainerrors.ErrPersonNotFound)

	err := fx.service.UpdatePerson(ctx, "PAT-240101-009", &usecase.PersonPatch{Name: &name})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestPersonService_UpdatePerson_SingleWithLinkedSpouse(t *testing.T) {
	fx := createMockedPersonService(t)
	single := entity.MaritalSingle

	err := fx.service.UpdatePerson(context.Background(), "PAT-240101-001", &usecase.PersonPatch{
		MaritalStatus: &single,
		Spouse:        linked("PAT-240101-002"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestPersonService_UpdatePerson_NewSpouseNotFound(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Name: "ARJUN", Surname: "PATEL", Gender: entity.GenderMale, MaritalStatus: entity.MaritalSingle}, nil).
		Once()
	fx.repo.EXPECT().FindByID(ctx, "PAT-240101-002").Return(nil, repository.ErrPersonNotFound).Once()
	fx.runTx(t).Once()
	fx.expectFailure(opUpdate, domainerrors.ErrPersonNotFound)

	err := fx.service.UpdatePerson(ctx, "PAT-240101-001", &usecase.PersonPatch{Spouse: linked("PAT-240101-002")})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersonService_UpdatePerson_SkipsMissingOldSpouse(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{
			ID: "PAT-240101-001", Name: "ARJUN", Surname: "PATEL", Gender: entity.GenderMale,
			MaritalStatus: entity.MaritalMarried, Spouse: entity.Linked("PAT-240101-002", "BINAPATEL"),
		}, nil).
		Once()
	fx.repo.EXPECT().FindByID(ctx, "PAT-240101-002").Return(nil, repository.ErrPersonNotFound).Once()
	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-003").
		Return(&entity.Person{ID: "PAT-240101-003", Name: "CHARU", Surname: "PATEL", Gender: entity.GenderFemale, MaritalStatus: entity.MaritalSingle}, nil).
		Once()
	fx.repo.EXPECT().
		Update(ctx, "PAT-240101-001", mock.MatchedBy(func(p repository.Patch) bool {
			return p[repository.FieldSpouseID] == "PAT-240101-003" && p[repository.FieldSpouseName] == "CHARUPATEL"
		})).
		Return(nil).
		Once()
	fx.repo.EXPECT().
		Update(ctx, "PAT-240101-003", mock.MatchedBy(func(p repository.Patch) bool {
			return p[repository.FieldSpouseID] == "PAT-240101-001" &&
				p[repository.FieldMaritalStatus] == entity.MaritalMarried
		})).
		Return(nil).
		Once()
	fx.runTx(t).Once()
	fx.metrics.EXPECT().ObserveMutation(opUpdate, nil).Return().Once()
	fx.publisher.EXPECT().PublishPersonEvent(ctx, mock.Anything).Return(nil).Once()

	err := fx.service.UpdatePerson(ctx, "PAT-240101-001", &usecase.PersonPatch{Spouse: linked("PAT-240101-003")})

	require.NoError(t, err)
}

func TestPersonService_UpdatePerson_GenderChangeOfParent(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()
	female := entity.GenderFemale

	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Gender: entity.GenderMale, MaritalStatus: entity.MaritalSingle}, nil).
		Once()
	fx.repo.EXPECT().
		FindByField(ctx, repository.FieldFatherID, "PAT-240101-001").
		Return([]*entity.Person{{ID: "PAT-240101-005"}}, nil).
		Once()
	fx.runTx(t).Once()
	fx.expectFailure(opUpdate, domainerrors.ErrInvariantViolation)

	err := fx.service.UpdatePerson(ctx, "PAT-240101-001", &usecase.PersonPatch{Gender: &female})

	assert.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestPersonService_SetApproval_DeletedRecord(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Status: entity.StatusDeleted}, nil).
		Once()
	fx.runTx(t).Once()
	fx.expectFailure(opSetApproval, domainerrors.ErrInvalidTransition)

	err := fx.service.SetApproval(ctx, "PAT-240101-001", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersonService_BulkSetApproval_RejectsWholeBatch(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Status: entity.StatusPending}, nil).
		Once()
	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-002").
		Return(&entity.Person{ID: "PAT-240101-002", Status: entity.StatusDeleted}, nil).
		Once()
	fx.runTx(t).Once()
	fx.expectFailure(opBulkSetApproval, domainerrors.ErrInvalidTransition)

	err := fx.service.BulkSetApproval(ctx, []string{"PAT-240101-001", "PAT-240101-002"}, true)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersonService_Purge_RequiresDeletedRecord(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Status: entity.StatusApproved}, nil).
		Once()
	fx.runTx(t).Once()
	fx.expectFailure(opPurge, domainerrors.ErrInvalidTransition)

	err := fx.service.Purge(ctx, "PAT-240101-001")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	fx.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPersonService_Purge_DependentQueryFails(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewStoreError(errors.New("deadline exceeded"), "failed to query people")

	fx.repo.EXPECT().
		FindByID(ctx, "PAT-240101-001").
		Return(&entity.Person{ID: "PAT-240101-001", Status: entity.StatusDeleted}, nil).
		Once()
	fx.repo.EXPECT().FindByField(ctx, repository.FieldSpouseID, "PAT-240101-001").Return([]*entity.Person{}, nil).Once()
	fx.repo.EXPECT().FindByField(ctx, repository.FieldFatherID, "PAT-240101-001").Return(nil, storeErr).Once()
	fx.runTx(t).Once()
	fx.expectFailure(opPurge, domainerrors.ErrStoreUnavailable)

	err := fx.service.Purge(ctx, "PAT-240101-001")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	fx.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPersonService_BulkSetDeceased_MissingRecord(t *testing.T) {
	fx := createMockedPersonService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "PAT-240101-001").Return(&entity.Person{ID: "PAT-240101-001"}, nil).Once()
	fx.repo.EXPECT().FindByID(ctx, "PAT-240101-002").Return(nil, repository.ErrPersonNotFound).Once()
	fx.runTx(t).Once()
	fx.expectFailure(opBulkSetDeceased, domainerrors.ErrPersonNotFound)

	err := fx.service.BulkSetDeceased(ctx, []string{"PAT-240101-001", "PAT-240101-002"}, true)

	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
	fx.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersonService_ImportBatch_InvalidRecord(t *testing.T) {
	fx := createMockedPersonService(t)

	count, err := fx.service.ImportBatch(context.Background(), []*usecase.CreatePersonInput{
		man("ARJUN"),
		{Name: "BINA", Surname: "PATEL", Gender: "unknown"},
	})

	assert.Zero(t, count)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "record 1")
}

func TestPersonService_LinkRelation_InvalidSlot(t *testing.T) {
	fx := createMockedPersonService(t)

	err := fx.service.LinkRelation(context.Background(), "PAT-240101-001", "cousin", "PAT-240101-002")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
