package auth

import (
	"context"
	"testing"
	"time"

	"familytree/config"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		Secret: "test_secret_key_very_long_for_testing",
		Issuer: "familytree",
	}})
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t)
	scope := entity.ActorScope{
		UID:      "editor-1",
		Email:    "editor@example.com",
		Role:     entity.RoleEditor,
		Access:   entity.AccessSpecific,
		Surnames: []string{"PATEL", "SHAH"},
		Families: map[string][]string{"PATEL": {"MATA"}},
	}

	token, err := svc.Issue(scope, time.Hour)
	require.NoError(t, err)

	got, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, scope.UID, got.UID)
	assert.Equal(t, scope.Email, got.Email)
	assert.Equal(t, scope.Role, got.Role)
	assert.Equal(t, scope.Access, got.Access)
	assert.Equal(t, scope.Surnames, got.Surnames)
	assert.Equal(t, scope.Families, got.Families)
}

func TestJWTService_SuperAdminDefaultsToAll(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue(entity.ActorScope{UID: "root", Role: entity.RoleSuperAdmin}, time.Hour)
	require.NoError(t, err)

	got, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, got.SeesAll())
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	require.Error(t, err)
}

func TestScopeFromClaims_DecodesJSONShapes(t *testing.T) {
	scope, err := scopeFromClaims("uid", map[string]any{
		"role":     "editor",
		"surnames": []any{"PATEL", 7, ""},
		"families": map[string]any{"PATEL": []any{"MATA", "DADA"}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AccessSpecific, scope.Access)
	assert.Equal(t, []string{"PATEL"}, scope.Surnames)
	assert.Equal(t, []string{"MATA", "DADA"}, scope.Families["PATEL"])
}

func TestScopeFromClaims_RequiresRole(t *testing.T) {
	_, err := scopeFromClaims("uid", map[string]any{"role": "viewer"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
