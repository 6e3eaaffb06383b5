package handler

import (
	"log/slog"
	"net/http"

	"familytree/internal/delivery/api/response"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/service"
	"familytree/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PeopleHandlerParams holds dependencies for PeopleHandler, injected by Fx.
type PeopleHandlerParams struct {
	fx.In

	PersonUC usecase.PersonUsecase
	FamilyUC usecase.FamilyUsecase
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// PeopleHandler serves the public, unauthenticated endpoints.
type PeopleHandler struct {
	personUC usecase.PersonUsecase
	familyUC usecase.FamilyUsecase
	qrCode   service.QRCodeService
	logger   *slog.Logger
}

// NewPeopleHandler is the constructor for PeopleHandler
func NewPeopleHandler(params PeopleHandlerParams) *PeopleHandler {
	return &PeopleHandler{
		personUC: params.PersonUC,
		familyUC: params.FamilyUC,
		qrCode:   params.QRCode,
		logger:   params.Logger,
	}
}

// Register stores a self-registration awaiting approval.
func (h *PeopleHandler) Register(c echo.Context) error {
	var req PersonRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	person, err := h.personUC.CreatePerson(c.Request().Context(), req.toInput(), entity.StatusPending)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPersonResponse(person))
}

// Directory lists the approved people.
func (h *PeopleHandler) Directory(c echo.Context) error {
	people, err := h.familyUC.Directory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPersonResponses(people))
}

// Family returns the family of an approved person derived from approved records.
func (h *PeopleHandler) Family(c echo.Context) error {
	view, err := h.familyUC.PublicFamilyView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFamilyViewResponse(view))
}

// QRCode returns a PNG linking to the public profile of an approved person.
func (h *PeopleHandler) QRCode(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	person, err := h.familyUC.GetPerson(ctx, id, nil)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !person.IsApproved() {
		return response.AppError(c, domainerrors.ErrPersonNotFound.WithDetails(id))
	}

	png, err := h.qrCode.GenerateProfileQR(id)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to generate profile QR code",
			slog.String("person_id", id), slog.Any("error", err))

		return response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
