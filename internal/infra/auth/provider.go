package auth

import (
	"context"

	"familytree/config"
	"familytree/internal/domain/service"
	"familytree/internal/errors"

	fb "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config      *config.Config
	FirebaseApp *fb.App `optional:"true"`
}

// NewTokenVerifier builds the verifier named by auth.provider.
func NewTokenVerifier(params Params) (service.TokenVerifier, error) {
	switch params.Config.Auth.Provider {
	case config.AuthProviderFirebase:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase auth provider requires a Firebase app")
		}

		verifier, err := NewFirebaseVerifier(context.Background(), params.FirebaseApp)
		if err != nil {
			return nil, err
		}

		return verifier, nil
	case config.AuthProviderJWT:
		jwtService, err := NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}

		return jwtService, nil
	default:
		return nil, errors.Errorf("unknown auth provider %q", params.Config.Auth.Provider)
	}
}
