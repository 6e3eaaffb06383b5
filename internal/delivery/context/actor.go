package context

import (
	"familytree/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyActorScope is the key for storing the authenticated administrator scope.
const KeyActorScope ContextKey = "actor_scope"

// SetActorScope stores the scope of the authenticated administrator in echo.Context.
func SetActorScope(c echo.Context, scope *entity.ActorScope) {
	c.Set(string(KeyActorScope), scope)
}

// GetActorScope extracts the administrator scope set by the auth middleware.
func GetActorScope(c echo.Context) (*entity.ActorScope, bool) {
	scope, ok := c.Get(string(KeyActorScope)).(*entity.ActorScope)

	return scope, ok && scope != nil
}
