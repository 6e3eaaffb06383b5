package auth

import (
	"context"
	"time"

	"familytree/config"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService signs and verifies HMAC admin tokens for deployments that do
// not use Firebase Auth.
type JWTService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("auth.secret must be provided")
	}

	return &JWTService{
		secret: []byte(cfg.Auth.Secret),
		issuer: cfg.Auth.Issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a token granting the given scope for ttl.
func (s *JWTService) Issue(scope entity.ActorScope, ttl time.Duration) (string, error) {
	if !scope.Role.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(scope.Role))
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub": scope.UID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}
	for name, value := range scopeToClaims(scope) {
		claims[name] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiry of token and returns its scope.
func (s *JWTService) Verify(_ context.Context, token string) (*entity.ActorScope, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid subject")
	}

	return scopeFromClaims(subject, claims)
}
