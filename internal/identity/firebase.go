package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/rubentalstra/BAK/internal/logger"
)

type firebaseService struct {
	client *auth.Client
}

// NewFirebaseService builds an identity service backed by the Firebase Admin
// SDK. credentialsFile may be empty, in which case application default
// credentials are used.
func NewFirebaseService(ctx context.Context, projectID, credentialsFile string) (Service, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	logger.ExternalServiceCall("firebase-auth", "VerifyIDToken")
	decoded, err := s.client.VerifyIDToken(ctx, token)
	logger.ExternalServiceResult("firebase-auth", "VerifyIDToken", err)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return decoded.UID, nil
}

func (s *firebaseService) DeleteUser(ctx context.Context, uid string) error {
	logger.ExternalServiceCall("firebase-auth", "DeleteUser", "uid", uid)
	err := s.client.DeleteUser(ctx, uid)
	logger.ExternalServiceResult("firebase-auth", "DeleteUser", err, "uid", uid)
	if err != nil {
		return fmt.Errorf("failed to delete auth user: %w", err)
	}
	return nil
}
