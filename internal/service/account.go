package service

import (
	"context"
	"fmt"

	"github.com/rubentalstra/BAK/internal/identity"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository"
	"github.com/rubentalstra/BAK/internal/storage"
)

type accountService struct {
	userRepo    repository.UserRepository
	identitySvc identity.Service
	storageSvc  storage.StorageInterface
	emailSvc    EmailService
}

func NewAccountService(
	userRepo repository.UserRepository,
	identitySvc identity.Service,
	storageSvc storage.StorageInterface,
	emailSvc EmailService,
) AccountService {
	return &accountService{
		userRepo:    userRepo,
		identitySvc: identitySvc,
		storageSvc:  storageSvc,
		emailSvc:    emailSvc,
	}
}

// DeleteAccount removes a user's data row, their identity record and their
// stored profile image. The image cleanup is best effort: a storage failure
// must never leave an account undeletable. The row delete and the identity
// delete are both fatal; if the row delete fails the identity is left intact.
func (s *accountService) DeleteAccount(ctx context.Context, uid string) error {
	// Profile lookup is only needed for cleanup and the farewell mail, so a
	// failure here is logged and the deletion continues.
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Warn("Failed to load user before deletion, continuing", "userID", uid, "error", err)
		user = nil
	}

	if user != nil && user.ProfileImage != nil && *user.ProfileImage != "" {
		if err := s.storageSvc.DeleteFile(ctx, *user.ProfileImage); err != nil {
			logger.Error("Failed to delete profile image, continuing with account deletion", "userID", uid, "key", *user.ProfileImage, "error", err)
		}
	}

	if err := s.userRepo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete user data: %w", err)
	}

	// The data row is gone at this point. A failure below leaves an identity
	// without a data row; the orphan sweep job reconciles the storage side
	// and the auth record is retried by the user's next deletion attempt.
	if err := s.identitySvc.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete authentication user: %w", err)
	}

	if s.emailSvc != nil && user != nil && user.Email != "" {
		if err := s.emailSvc.SendAccountDeletedNotification(ctx, user.Email, user.Name); err != nil {
			logger.Warn("Failed to send account deletion email", "error", err)
		}
	}

	return nil
}
