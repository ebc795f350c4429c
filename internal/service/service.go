package service

import (
	"context"

	"github.com/rubentalstra/BAK/internal/domain"
)

type AccountService interface {
	// DeleteAccount removes the user's row, identity record and stored
	// profile image. uid must come from a verified credential.
	DeleteAccount(ctx context.Context, uid string) error
}

type AssociationRequestService interface {
	// HandleStatusUpdate reacts to a status change on an association
	// request. It reports whether this invocation performed the side
	// effects; duplicate deliveries report false.
	HandleStatusUpdate(ctx context.Context, req *domain.AssociationRequest) (bool, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID string, notificationID int64) error
}

type EmailService interface {
	SendAccountDeletedNotification(ctx context.Context, email, name string) error
}
