package auth

import (
	"context"

	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/errors"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseVerifier verifies Firebase Auth ID tokens. The admin scope lives in
// the user's custom claims.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a verifier backed by the app's Auth client.
func NewFirebaseVerifier(ctx context.Context, app *fb.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase Auth client")
	}

	return &FirebaseVerifier{client: client}, nil
}

// Verify checks an ID token and returns the scope in its custom claims.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*entity.ActorScope, error) {
	idToken, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	return scopeFromClaims(idToken.UID, idToken.Claims)
}
