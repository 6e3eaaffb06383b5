package main

import (
	"fmt"
	"io"
	"strings"

	"familytree/config"
	"familytree/internal/domain/entity"
	"familytree/internal/errors"
	"familytree/internal/infra/auth"
)

func runToken(w io.Writer, flags tokenFlags) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	scope, err := scopeFromFlags(flags)
	if err != nil {
		return err
	}

	ttl := *flags.ttl
	if ttl <= 0 {
		ttl = cfg.Auth.TokenTTL
	}
	if ttl <= 0 {
		return errors.New("token lifetime must be positive, set -ttl or auth.tokenTtl")
	}

	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}
	token, err := jwtService.Issue(scope, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)

	return errors.WithStack(err)
}

func scopeFromFlags(flags tokenFlags) (entity.ActorScope, error) {
	role := entity.Role(*flags.role)
	if !role.IsValid() {
		return entity.ActorScope{}, errors.Errorf("unknown role %q", *flags.role)
	}
	if *flags.uid == "" {
		return entity.ActorScope{}, errors.New("-uid is required")
	}

	scope := entity.ActorScope{
		UID:    *flags.uid,
		Email:  *flags.email,
		Role:   role,
		Access: entity.AccessAll,
	}
	for _, surname := range strings.Split(*flags.surnames, ",") {
		if surname = strings.ToUpper(strings.TrimSpace(surname)); surname != "" {
			scope.Surnames = append(scope.Surnames, surname)
		}
	}
	if len(scope.Surnames) > 0 {
		scope.Access = entity.AccessSpecific
	}

	return scope, nil
}
