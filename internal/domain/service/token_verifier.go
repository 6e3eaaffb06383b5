package service

import (
	"context"
	"time"

	"familytree/internal/domain/entity"
)

// TokenVerifier turns a bearer token issued by the identity provider into
// the scope of the administrator holding it.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*entity.ActorScope, error)
}

// TokenIssuer signs tokens for self-hosted deployments without an external
// identity provider.
type TokenIssuer interface {
	Issue(scope entity.ActorScope, ttl time.Duration) (string, error)
}
