package repository

import (
	"context"

	"github.com/rubentalstra/BAK/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetProfileImage returns the user's stored image key, nil when unset.
	GetProfileImage(ctx context.Context, id string) (*string, error)
	// Delete removes the user's row. The id must come from a verified
	// credential; the delete is scoped to that single row.
	Delete(ctx context.Context, id string) error
	ListProfileImageKeys(ctx context.Context) ([]string, error)
}

type AssociationRequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AssociationRequest, error)
	// MarkProcessed flips processed false→true in a single conditional
	// update. It reports false when the row was already processed (or does
	// not exist), which is the caller's no-op path.
	MarkProcessed(ctx context.Context, id string) (bool, error)
}

type AssociationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Association, error)
	// CreateWithAdmin inserts the association, its founding admin membership
	// and the approval notification in one transaction.
	CreateWithAdmin(ctx context.Context, assoc *domain.Association, member *domain.AssociationMember, note *domain.Notification) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int64, userID string) error
	// PurgeRead deletes read notifications older than the retention window
	// and returns the number of rows removed.
	PurgeRead(ctx context.Context, retentionDays int) (int64, error)
}
