package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"familytree/internal/domain/entity"
	"familytree/internal/domain/service"
	"familytree/internal/infra/persistence/memory"
	mockSvc "familytree/internal/mocks/service"
	mockUsecase "familytree/internal/mocks/usecase"
	"familytree/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type suggestionServiceFixtures struct {
	service usecase.SuggestionUsecase
	oracle  *mockSvc.MockSuggestionOracle
	people  *mockUsecase.MockPersonUsecase
}

func createTestSuggestionService(t *testing.T) suggestionServiceFixtures {
	store := memory.NewStore()
	seed(t, store, patelFamily()...)
	oracle := mockSvc.NewMockSuggestionOracle(t)
	people := mockUsecase.NewMockPersonUsecase(t)

	svc := NewSuggestionService(SuggestionServiceParams{
		TxManager: memory.NewTransactionManager(store),
		Oracle:    oracle,
		People:    people,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return suggestionServiceFixtures{service: svc, oracle: oracle, people: people}
}

func TestSuggestionService_Suggest(t *testing.T) {
	fx := createTestSuggestionService(t)
	ctx := context.Background()

	fx.oracle.EXPECT().
		Suggest(ctx, mock.MatchedBy(func(req *service.SuggestionRequest) bool {
			if req.Target.ID != "PAT-240101-003" || len(req.Pool) != 3 {
				return false
			}
			for _, candidate := range req.Pool {
				if candidate.ID == "PAT-240101-003" || candidate.ID == "PAT-240101-004" {
					return false
				}
			}

			return true
		})).
		Return([]service.Suggestion{
			{CandidateID: "MEH-240101-001", Relationship: entity.SlotSpouse, Rationale: "same village"},
			{CandidateID: "PAT-240101-001", Relationship: entity.SlotFather, Rationale: "father name matches"},
		}, nil).
		Once()

	suggestions, err := fx.service.Suggest(ctx, "PAT-240101-003", nil)

	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "MEH-240101-001", suggestions[0].CandidateID)
	assert.Equal(t, entity.SlotFather, suggestions[1].Relationship)
}

func TestSuggestionService_Suggest_DropsUntrustedGuesses(t *testing.T) {
	fx := createTestSuggestionService(t)
	ctx := context.Background()

	fx.oracle.EXPECT().
		Suggest(ctx, mock.Anything).
		Return([]service.Suggestion{
			{CandidateID: "PAT-240101-004", Relationship: entity.SlotSpouse, Rationale: "pending record"},
			{CandidateID: "SHA-240101-002", Relationship: entity.SlotMother, Rationale: "deleted record"},
			{CandidateID: "XYZ-240101-001", Relationship: entity.SlotFather, Rationale: "made up"},
			{CandidateID: "PAT-240101-001", Relationship: "uncle", Rationale: "unknown slot"},
			{CandidateID: "PAT-240101-001", Relationship: entity.SlotMother, Rationale: "wrong gender"},
			{CandidateID: "PAT-240101-002", Relationship: entity.SlotMother, Rationale: "mother name matches"},
		}, nil).
		Once()

	suggestions, err := fx.service.Suggest(ctx, "PAT-240101-003", nil)

	require.NoError(t, err)
	assert.Equal(t, []service.Suggestion{
		{CandidateID: "PAT-240101-002", Relationship: entity.SlotMother, Rationale: "mother name matches"},
	}, suggestions)
}

func TestSuggestionService_Accept(t *testing.T) {
	fx := createTestSuggestionService(t)
	ctx := context.Background()

	fx.people.EXPECT().
		LinkRelation(ctx, "PAT-240101-003", entity.SlotSpouse, "MEH-240101-001").
		Return(nil).
		Once()

	err := fx.service.Accept(ctx, "PAT-240101-003", &usecase.AcceptSuggestionInput{
		CandidateID:  "MEH-240101-001",
		Relationship: entity.SlotSpouse,
	}, nil)

	require.NoError(t, err)
}
