package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rubentalstra/BAK/internal/domain"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository"
)

type associationRequestService struct {
	reqRepo   repository.AssociationRequestRepository
	assocRepo repository.AssociationRepository
	noteRepo  repository.NotificationRepository
}

func NewAssociationRequestService(
	reqRepo repository.AssociationRequestRepository,
	assocRepo repository.AssociationRepository,
	noteRepo repository.NotificationRepository,
) AssociationRequestService {
	return &associationRequestService{
		reqRepo:   reqRepo,
		assocRepo: assocRepo,
		noteRepo:  noteRepo,
	}
}

// HandleStatusUpdate provisions the association for an approved request or
// notifies the requester of a decline. The conditional processed update is the
// at-most-once gate: whichever delivery wins it performs the side effects,
// every other delivery is a no-op.
func (s *associationRequestService) HandleStatusUpdate(ctx context.Context, req *domain.AssociationRequest) (bool, error) {
	if req.Processed {
		logger.Debug("Association request already processed, skipping", "requestID", req.ID)
		return false, nil
	}

	acted, err := s.reqRepo.MarkProcessed(ctx, req.ID)
	if err != nil {
		return false, fmt.Errorf("failed to mark request processed: %w", err)
	}
	if !acted {
		logger.Info("Association request claimed by a concurrent delivery, skipping", "requestID", req.ID)
		return false, nil
	}

	switch req.Status {
	case domain.AssociationRequestStatusApproved:
		return true, s.approve(ctx, req)
	case domain.AssociationRequestStatusDeclined:
		return true, s.decline(ctx, req)
	default:
		// Pending or unknown statuses carry no side effect beyond the flag.
		logger.Debug("Association request status requires no action", "requestID", req.ID, "status", req.Status)
		return true, nil
	}
}

func (s *associationRequestService) approve(ctx context.Context, req *domain.AssociationRequest) error {
	assoc := &domain.Association{
		ID:         uuid.New().String(),
		Name:       req.Name,
		WebsiteURL: req.WebsiteURL,
	}
	member := &domain.AssociationMember{
		AssociationID: assoc.ID,
		UserID:        req.UserID,
		Role:          domain.MemberRoleAdmin,
		Permissions:   domain.FullPermissions(),
	}
	note := &domain.Notification{
		UserID: req.UserID,
		Title:  "Association Request Approved",
		Body:   fmt.Sprintf("Your request to create the association %q has been approved.", req.Name),
	}

	if err := s.assocRepo.CreateWithAdmin(ctx, assoc, member, note); err != nil {
		return fmt.Errorf("failed to provision association: %w", err)
	}

	logger.Info("Association provisioned", "associationID", assoc.ID, "requestID", req.ID, "userID", req.UserID)
	return nil
}

func (s *associationRequestService) decline(ctx context.Context, req *domain.AssociationRequest) error {
	note := &domain.Notification{
		UserID: req.UserID,
		Title:  "Association Request Declined",
		Body:   "Your request to create an association has been declined.",
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return fmt.Errorf("failed to create decline notification: %w", err)
	}
	return nil
}
