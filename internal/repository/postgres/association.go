package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rubentalstra/BAK/internal/domain"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository"
)

type associationRepository struct {
	db *sql.DB
}

func NewAssociationRepository(db *sql.DB) repository.AssociationRepository {
	return &associationRepository{db: db}
}

func (r *associationRepository) GetByID(ctx context.Context, id string) (*domain.Association, error) {
	a := &domain.Association{}
	query := `SELECT id, name, website_url, created_at FROM associations WHERE id = $1`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.WebsiteURL, &createdAt)
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdAt.Format("2006-01-02")
	return a, nil
}

// CreateWithAdmin runs all three inserts of an approval in one transaction so
// a failure part way through never leaves an association without its admin.
func (r *associationRepository) CreateWithAdmin(ctx context.Context, assoc *domain.Association, member *domain.AssociationMember, note *domain.Notification) error {
	perms, err := json.Marshal(member.Permissions)
	if err != nil {
		return fmt.Errorf("failed to marshal permissions: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	assoc.CreatedOn = now.Format("2006-01-02")
	member.JoinedOn = assoc.CreatedOn

	logger.DatabaseCall("INSERT", "associations", "associationID", assoc.ID)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO associations (id, name, website_url, created_at) VALUES ($1, $2, $3, $4)`,
		assoc.ID, assoc.Name, assoc.WebsiteURL, now)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "associations")
		return err
	}

	logger.DatabaseCall("INSERT", "association_members", "associationID", assoc.ID, "userID", member.UserID)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO association_members (association_id, user_id, role, permissions, joined_at) VALUES ($1, $2, $3, $4, $5)`,
		member.AssociationID, member.UserID, member.Role, perms, now)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "association_members")
		return err
	}

	logger.DatabaseCall("INSERT", "notifications", "userID", note.UserID)
	err = tx.QueryRowContext(ctx,
		`INSERT INTO notifications (user_id, title, body, is_read, created_at) VALUES ($1, $2, $3, FALSE, $4) RETURNING id`,
		note.UserID, note.Title, note.Body, now).Scan(&note.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "table", "notifications")
		return err
	}
	note.CreatedOn = assoc.CreatedOn

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit approval transaction: %w", err)
	}
	return nil
}
