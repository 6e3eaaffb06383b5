package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"familytree/internal/delivery/api/response"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/genealogy"
	"familytree/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	PersonUC usecase.PersonUsecase
	FamilyUC usecase.FamilyUsecase
	Logger   *slog.Logger
}

// AdminHandler serves the console endpoints. Every handler runs behind the
// auth middleware and only touches records visible to the administrator.
type AdminHandler struct {
	personUC usecase.PersonUsecase
	familyUC usecase.FamilyUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		personUC: params.PersonUC,
		familyUC: params.FamilyUC,
		logger:   params.Logger,
	}
}

// authorize checks every record is visible to the administrator.
func (h *AdminHandler) authorize(c echo.Context, ids ...string) (*entity.ActorScope, error) {
	scope, err := actorScope(c)
	if err != nil {
		return nil, err
	}
	if scope.SeesAll() {
		return scope, nil
	}
	for _, id := range ids {
		if _, err := h.familyUC.GetPerson(c.Request().Context(), id, scope); err != nil {
			return nil, err
		}
	}

	return scope, nil
}

func (h *AdminHandler) done(c echo.Context, id string, action string) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Admin action completed",
		slog.String("person_id", id), slog.String("action", action))

	return response.Success(c, http.StatusOK, map[string]string{"id": id, "action": action})
}

// Create stores an approved person.
func (h *AdminHandler) Create(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req PersonRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	draft := &entity.Person{Surname: req.Surname, MaidenName: req.MaidenName, Family: req.Family}
	if !genealogy.IsVisible(draft, *scope) {
		return response.AppError(c, domainerrors.ErrForbidden.WithDetails("surname "+req.Surname+" is outside your scope"))
	}

	person, err := h.personUC.CreatePerson(c.Request().Context(), req.toInput(), entity.StatusApproved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPersonResponse(person))
}

// List returns the records visible to the administrator, optionally filtered
// by ?status= and ?unlinked=true.
func (h *AdminHandler) List(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	filter := usecase.ListFilter{
		Status: entity.Status(c.QueryParam("status")),
		Scope:  scope,
	}
	if raw := c.QueryParam("unlinked"); raw != "" {
		unlinked, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "unlinked must be a boolean")
		}
		filter.Unlinked = unlinked
	}

	people, err := h.familyUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPersonResponses(people))
}

// Get returns one record.
func (h *AdminHandler) Get(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	person, err := h.familyUC.GetPerson(c.Request().Context(), c.Param("id"), scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPersonResponse(person))
}

// Update applies a partial update.
func (h *AdminHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var req UpdatePersonRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	patch := req.toPatch()
	ids := []string{id}
	for _, rel := range []*entity.Relation{patch.Father, patch.Mother, patch.Spouse} {
		if rel != nil && rel.IsLinked() {
			ids = append(ids, rel.ID)
		}
	}
	if _, err := h.authorize(c, ids...); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.personUC.UpdatePerson(c.Request().Context(), id, patch); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.done(c, id, "updated")
}

// Approve moves a record to approved.
func (h *AdminHandler) Approve(c echo.Context) error {
	return h.setApproval(c, true)
}

// Unapprove moves a record back to pending.
func (h *AdminHandler) Unapprove(c echo.Context) error {
	return h.setApproval(c, false)
}

func (h *AdminHandler) setApproval(c echo.Context, approved bool) error {
	id := c.Param("id")
	if _, err := h.authorize(c, id); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.SetApproval(c.Request().Context(), id, approved); err != nil {
		return response.HandleAppError(c, err)
	}
	if approved {
		return h.done(c, id, "approved")
	}

	return h.done(c, id, "unapproved")
}

// SoftDelete moves a record to the dustbin.
func (h *AdminHandler) SoftDelete(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.authorize(c, id); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.SoftDelete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.done(c, id, "deleted")
}

// Recover brings a record back from the dustbin.
func (h *AdminHandler) Recover(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.authorize(c, id); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.Recover(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.done(c, id, "recovered")
}

// Purge removes a deleted record for good.
func (h *AdminHandler) Purge(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.authorize(c, id); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.Purge(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.done(c, id, "purged")
}

// BulkApproval approves or unapproves several records at once.
func (h *AdminHandler) BulkApproval(c echo.Context) error {
	var req BulkApprovalRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	if _, err := h.authorize(c, req.IDs...); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.BulkSetApproval(c.Request().Context(), req.IDs, *req.Approved); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"ids": req.IDs, "approved": *req.Approved})
}

// BulkDeceased sets the deceased flag on several records at once.
func (h *AdminHandler) BulkDeceased(c echo.Context) error {
	var req BulkDeceasedRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	if _, err := h.authorize(c, req.IDs...); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.BulkSetDeceased(c.Request().Context(), req.IDs, *req.IsDeceased); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"ids": req.IDs, "isDeceased": *req.IsDeceased})
}

// Import stores a batch of records as approved. Restricted to super admins.
func (h *AdminHandler) Import(c echo.Context) error {
	var req ImportRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	inputs := make([]*usecase.CreatePersonInput, 0, len(req.Records))
	for i := range req.Records {
		inputs = append(inputs, req.Records[i].toInput())
	}

	count, err := h.personUC.ImportBatch(c.Request().Context(), inputs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]int{"imported": count})
}

// Dustbin lists the deleted records with their retention countdown.
func (h *AdminHandler) Dustbin(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	entries, err := h.familyUC.Dustbin(c.Request().Context(), scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]DustbinEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, DustbinEntryResponse{
			PersonResponse: toPersonResponse(entry.Person),
			DaysRemaining:  entry.DaysRemaining,
			PurgeEligible:  entry.PurgeEligible,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// LinkRelation links a relation slot to an existing record.
func (h *AdminHandler) LinkRelation(c echo.Context) error {
	id := c.Param("id")
	slot := entity.RelationSlot(c.Param("slot"))
	var req RelationRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	if _, err := h.authorize(c, id, req.TargetID); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.LinkRelation(c.Request().Context(), id, slot, req.TargetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.done(c, id, "linked "+string(slot))
}

// ClearRelation empties a relation slot.
func (h *AdminHandler) ClearRelation(c echo.Context) error {
	id := c.Param("id")
	slot := entity.RelationSlot(c.Param("slot"))
	if _, err := h.authorize(c, id); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := h.personUC.ClearRelation(c.Request().Context(), id, slot); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.done(c, id, "cleared "+string(slot))
}

// Family returns the family of a record derived from every record.
func (h *AdminHandler) Family(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	view, err := h.familyUC.AdminFamilyView(c.Request().Context(), c.Param("id"), scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFamilyViewResponse(view))
}

// Candidates lists the records that may be linked into a relation slot.
func (h *AdminHandler) Candidates(c echo.Context) error {
	scope, err := actorScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	people, err := h.familyUC.Candidates(c.Request().Context(), c.Param("id"), entity.RelationSlot(c.Param("slot")), scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPersonResponses(people))
}

// Integrity reports every broken edge of the graph. Restricted to super admins.
func (h *AdminHandler) Integrity(c echo.Context) error {
	violations, err := h.familyUC.CheckIntegrity(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]map[string]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, map[string]string{"personId": v.PersonID, "kind": string(v.Kind), "detail": v.Detail})
	}

	return response.Success(c, http.StatusOK, out)
}
