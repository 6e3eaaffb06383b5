package impl

import (
	"context"
	"log/slog"

	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/genealogy"
	"familytree/internal/domain/repository"
	"familytree/internal/domain/service"
	"familytree/internal/usecase"

	"go.uber.org/fx"
)

// suggestionService implements the SuggestionUsecase interface.
type suggestionService struct {
	txManager repository.TransactionManager
	oracle    service.SuggestionOracle
	people    usecase.PersonUsecase
	logger    *slog.Logger
}

// SuggestionServiceParams holds dependencies for SuggestionService, injected by Fx.
type SuggestionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Oracle    service.SuggestionOracle
	People    usecase.PersonUsecase
	Logger    *slog.Logger
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(params SuggestionServiceParams) usecase.SuggestionUsecase {
	return &suggestionService{
		txManager: params.TxManager,
		oracle:    params.Oracle,
		people:    params.People,
		logger:    params.Logger,
	}
}

func (srv *suggestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *suggestionService) snapshot(ctx context.Context) (*genealogy.Snapshot, error) {
	var people []*entity.Person
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		people, err = repoFactory.NewPersonRepository().FindAll(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	return genealogy.NewSnapshot(people), nil
}

// Suggest asks the oracle for relatives of the person among the approved
// community. Guesses naming unknown candidates or unfit slots are dropped.
func (srv *suggestionService) Suggest(ctx context.Context, id string, scope *entity.ActorScope) ([]service.Suggestion, error) {
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	person, err := visiblePerson(snapshot, id, scope)
	if err != nil {
		return nil, err
	}

	pool := snapshot.CommunityPool(person)
	req := &service.SuggestionRequest{
		Target: service.NewSuggestionProfile(person),
		Pool:   make([]service.SuggestionProfile, 0, len(pool)),
	}
	for _, candidate := range pool {
		req.Pool = append(req.Pool, service.NewSuggestionProfile(candidate))
	}

	suggestions, err := srv.oracle.Suggest(ctx, req)
	if err != nil {
		srv.log(ctx).Error("Suggestion oracle failed", slog.String("person_id", id), slog.Any("error", err))

		return nil, err
	}

	community := genealogy.NewSnapshot(pool)
	accepted := make([]service.Suggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		candidate := community.FindByID(suggestion.CandidateID)
		if candidate == nil || !suggestion.Relationship.IsValid() ||
			checkLink(person, suggestion.Relationship, candidate) != nil {
			srv.log(ctx).Warn("Dropping suggestion",
				slog.String("person_id", id),
				slog.String("candidate_id", suggestion.CandidateID),
				slog.String("relationship", string(suggestion.Relationship)))

			continue
		}
		accepted = append(accepted, suggestion)
	}

	return accepted, nil
}

// Accept links the suggested candidate through the regular update path.
func (srv *suggestionService) Accept(ctx context.Context, id string, input *usecase.AcceptSuggestionInput, scope *entity.ActorScope) error {
	if input == nil || input.CandidateID == "" || !input.Relationship.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("a candidate and a relationship are required")
	}
	snapshot, err := srv.snapshot(ctx)
	if err != nil {
		return err
	}
	// Linking writes both records, so the candidate must be in scope too.
	for _, target := range []string{id, input.CandidateID} {
		if _, err := visiblePerson(snapshot, target, scope); err != nil {
			return err
		}
	}

	if err := srv.people.LinkRelation(ctx, id, input.Relationship, input.CandidateID); err != nil {
		return err
	}
	srv.log(ctx).Info("Suggestion accepted",
		slog.String("person_id", id),
		slog.String("candidate_id", input.CandidateID),
		slog.String("relationship", string(input.Relationship)))

	return nil
}
