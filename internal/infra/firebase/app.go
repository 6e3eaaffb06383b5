// Package firebase builds the shared Firebase app used for Firestore, Auth
// and Cloud Messaging.
package firebase

import (
	"context"

	"familytree/config"
	"familytree/internal/errors"

	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp creates the Firebase app, or returns nil when no Firebase project
// is configured and no component needs it.
func NewApp(cfg *config.Config) (*fb.App, error) {
	if !Required(cfg) {
		return nil, nil
	}
	if cfg.Firebase == nil {
		return nil, errors.New("firebase section is required by the configured components")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appConfig *fb.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &fb.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := fb.NewApp(context.Background(), appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// Required reports whether any configured component talks to Firebase.
func Required(cfg *config.Config) bool {
	if cfg.Store != nil && cfg.Store.Backend == config.StoreFirestore {
		return true
	}
	if cfg.Auth != nil && cfg.Auth.Provider == config.AuthProviderFirebase {
		return true
	}

	return cfg.Notification != nil && cfg.Notification.Enabled
}
