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

func TestJWTService_VerifyRejects(t *testing.T) {
	svc := newTestJWTService(t)
	ctx := context.Background()

	expired, err := svc.Issue(entity.ActorScope{UID: "a", Role: entity.RoleSuperAdmin}, -time.Minute)
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Secret: "another_secret", Issuer: "familytree"}})
	require.NoError(t, err)
	forged, err := other.Issue(entity.ActorScope{UID: "a", Role: entity.RoleSuperAdmin}, time.Hour)
	require.NoError(t, err)

	wrongIssuer, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Secret: "test_secret_key_very_long_for_testing", Issuer: "elsewhere"}})
	require.NoError(t, err)
	foreign, err := wrongIssuer.Issue(entity.ActorScope{UID: "a", Role: entity.RoleSuperAdmin}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "clearly-not-a-jwt-token-format"},
		{name: "expired", token: expired},
		{name: "wrong secret", token: forged},
		{name: "wrong issuer", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := svc.Verify(ctx, tt.token)
			assert.Nil(t, scope)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestJWTService_IssueUnknownRole(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.Issue(entity.ActorScope{UID: "a", Role: "viewer"}, time.Hour)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
