package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/repository"
	"familytree/internal/errors"
	mockRepo "familytree/internal/mocks/repository"
	"familytree/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFamilyService_StoreUnavailable(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewFamilyService(FamilyServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ctx := context.Background()
	storeErr := domainerrors.NewStoreError(errors.New("unavailable"), "failed to query people")

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			repo := mockRepo.NewMockPersonRepository(t)
			repo.EXPECT().FindAll(ctx).Return(nil, storeErr).Once()
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewPersonRepository().Return(repo).Once()

			return fn(factory)
		}).
		Times(4)

	_, err := svc.List(ctx, usecase.ListFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)

	_, err = svc.Dustbin(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)

	_, err = svc.PublicFamilyView(ctx, "PAT-240101-001")
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)

	_, err = svc.CheckIntegrity(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestFamilyService_List_InvalidStatus(t *testing.T) {
	fx := createTestFamilyService(t)

	people, err := fx.service.List(context.Background(), usecase.ListFilter{Status: "archived"})

	assert.Nil(t, people)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFamilyService_GetPerson_Error(t *testing.T) {
	fx := createTestFamilyService(t, patelFamily()...)
	ctx := context.Background()

	tests := []struct {
		name  string
		id    string
		scope *entity.ActorScope
		want  error
	}{
		{name: "unknown id", id: "PAT-240101-099", want: domainerrors.ErrPersonNotFound},
		{name: "outside editor scope", id: "PAT-240101-003", scope: shahEditor(), want: domainerrors.ErrForbidden},
		{name: "scope without a role", id: "PAT-240101-003", scope: &entity.ActorScope{Access: entity.AccessAll}, want: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person, err := fx.service.GetPerson(ctx, tt.id, tt.scope)

			assert.Nil(t, person)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFamilyService_AdminFamilyView_Error(t *testing.T) {
	fx := createTestFamilyService(t, patelFamily()...)
	ctx := context.Background()

	_, err := fx.service.AdminFamilyView(ctx, "PAT-240101-003", shahEditor())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.AdminFamilyView(ctx, "PAT-240101-099", nil)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestFamilyService_Candidates_Error(t *testing.T) {
	fx := createTestFamilyService(t, patelFamily()...)
	ctx := context.Background()

	_, err := fx.service.Candidates(ctx, "PAT-240101-003", "cousin", nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Candidates(ctx, "PAT-240101-003", entity.SlotSpouse, shahEditor())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Candidates(ctx, "PAT-240101-099", entity.SlotSpouse, nil)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}
