// Package auth provides the bearer token verifiers that resolve an
// administrator's scope.
package auth

import (
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
)

// Custom claim names carried by admin tokens.
const (
	claimEmail    = "email"
	claimRole     = "role"
	claimAccess   = "access"
	claimSurnames = "surnames"
	claimFamilies = "families"
)

// scopeFromClaims builds the actor scope from decoded custom claims.
// A token without a known role does not belong to an administrator.
func scopeFromClaims(uid string, claims map[string]any) (*entity.ActorScope, error) {
	role := entity.Role(stringClaim(claims, claimRole))
	if !role.IsValid() {
		return nil, domainerrors.ErrForbidden.WithDetails("token carries no administrator role")
	}

	scope := &entity.ActorScope{
		UID:      uid,
		Email:    stringClaim(claims, claimEmail),
		Role:     role,
		Access:   entity.Access(stringClaim(claims, claimAccess)),
		Surnames: stringsClaim(claims[claimSurnames]),
		Families: familiesClaim(claims[claimFamilies]),
	}
	if scope.Access == "" {
		scope.Access = entity.AccessSpecific
		if role == entity.RoleSuperAdmin {
			scope.Access = entity.AccessAll
		}
	}

	return scope, nil
}

// scopeToClaims is the inverse of scopeFromClaims.
func scopeToClaims(scope entity.ActorScope) map[string]any {
	claims := map[string]any{
		claimRole:   string(scope.Role),
		claimAccess: string(scope.Access),
	}
	if scope.Email != "" {
		claims[claimEmail] = scope.Email
	}
	if len(scope.Surnames) > 0 {
		claims[claimSurnames] = scope.Surnames
	}
	if len(scope.Families) > 0 {
		claims[claimFamilies] = scope.Families
	}

	return claims
}

func stringClaim(claims map[string]any, name string) string {
	s, _ := claims[name].(string)

	return s
}

func stringsClaim(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

func familiesClaim(value any) map[string][]string {
	switch v := value.(type) {
	case map[string][]string:
		return v
	case map[string]any:
		out := make(map[string][]string, len(v))
		for surname, families := range v {
			out[surname] = stringsClaim(families)
		}

		return out
	default:
		return nil
	}
}
