package postgres

import (
	"context"
	"database/sql"

	"github.com/rubentalstra/BAK/internal/domain"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository"
)

type associationRequestRepository struct {
	db *sql.DB
}

func NewAssociationRequestRepository(db *sql.DB) repository.AssociationRequestRepository {
	return &associationRequestRepository{db: db}
}

func (r *associationRequestRepository) GetByID(ctx context.Context, id string) (*domain.AssociationRequest, error) {
	req := &domain.AssociationRequest{}
	query := `SELECT id, user_id, name, website_url, status, processed FROM association_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.UserID, &req.Name, &req.WebsiteURL, &req.Status, &req.Processed)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *associationRequestRepository) MarkProcessed(ctx context.Context, id string) (bool, error) {
	// Conditional update doubles as the idempotence guard: concurrent
	// duplicate deliveries race on this single statement and only one
	// sees a row affected.
	query := `UPDATE association_requests SET processed = TRUE WHERE id = $1 AND processed = FALSE`
	logger.DatabaseCall("UPDATE", "association_requests", "requestID", id)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "requestID", id)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	logger.DatabaseResult("UPDATE", rows, nil, "requestID", id)
	return rows > 0, nil
}
