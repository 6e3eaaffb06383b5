package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware turns a bearer token into the administrator scope.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate verifies the bearer token and stores the scope on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		scope, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}
		if !scope.Role.IsValid() {
			return domainerrors.ErrForbidden.WithDetails("token carries no administrator role")
		}

		deliverycontext.SetActorScope(c, scope)

		return next(c)
	}
}

// RequireRole checks the authenticated administrator has the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope, ok := deliverycontext.GetActorScope(c)
			if !ok {
				return domainerrors.ErrUnauthorized.WithDetails("scope missing from context")
			}
			if scope.Role != role {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
			}

			return next(c)
		}
	}
}
