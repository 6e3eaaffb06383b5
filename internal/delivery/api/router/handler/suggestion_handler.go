package handler

import (
	"log/slog"
	"net/http"

	"familytree/internal/delivery/api/response"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	"familytree/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SuggestionHandlerParams holds dependencies for SuggestionHandler, injected by Fx.
type SuggestionHandlerParams struct {
	fx.In

	SuggestionUC usecase.SuggestionUsecase
	Logger       *slog.Logger
}

// SuggestionHandler exposes the relation suggestions to the console.
type SuggestionHandler struct {
	suggestionUC usecase.SuggestionUsecase
	logger       *slog.Logger
}

// NewSuggestionHandler is the constructor for SuggestionHandler
func NewSuggestionHandler(params SuggestionHandlerParams) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUC: params.SuggestionUC,
		logger:       params.Logger,
	}
}

// Suggest returns the relation guesses for a person.
func (h *SuggestionHandler) Suggest(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	suggestions, err := h.suggestionUC.Suggest(c.Request().Context(), c.Param("id"), scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSuggestionResponses(suggestions))
}

// Accept links the chosen suggestion.
func (h *SuggestionHandler) Accept(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req AcceptSuggestionRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	id := c.Param("id")
	input := &usecase.AcceptSuggestionInput{
		CandidateID:  req.CandidateID,
		Relationship: entity.RelationSlot(req.Relationship),
	}
	if err := h.suggestionUC.Accept(c.Request().Context(), id, input, scope); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Suggestion accepted",
		slog.String("person_id", id),
		slog.String("candidate_id", req.CandidateID),
		slog.String("relationship", req.Relationship))

	return response.Success(c, http.StatusOK, map[string]string{"id": id, "action": "linked " + req.Relationship})
}
