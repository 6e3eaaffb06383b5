// Package handler contains the echo handlers of the family tree API.
package handler

import (
	"net/http"

	"familytree/internal/delivery/api/response"
	"familytree/internal/delivery/api/validator"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

type normalizer interface {
	Normalize()
}

// bind decodes and validates the request body into req. It writes the 400
// response itself and reports false when the request is rejected.
func bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	return true, nil
}

// actorScope returns the administrator scope set by the auth middleware.
func actorScope(c echo.Context) (*entity.ActorScope, error) {
	scope, ok := deliverycontext.GetActorScope(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WithDetails("administrator scope missing from context")
	}

	return scope, nil
}

// HealthCheck reports the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
