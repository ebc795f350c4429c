package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rubentalstra/BAK/internal/domain"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, title, body, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	logger.DatabaseCall("INSERT", "notifications", "userID", n.UserID, "title", n.Title)

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, n.UserID, n.Title, n.Body, n.IsRead, now).Scan(&n.ID)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)
	if err != nil {
		return err
	}
	n.CreatedOn = now.Format("2006-01-02")
	return nil
}

func (r *notificationRepository) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	query := `SELECT id, user_id, title, body, is_read, created_at
	          FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.IsRead, &createdAt); err != nil {
			return nil, 0, err
		}
		n.CreatedOn = createdAt.Format("2006-01-02")
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return notes, count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int64, userID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("notification not found or access denied")
	}
	return nil
}

func (r *notificationRepository) PurgeRead(ctx context.Context, retentionDays int) (int64, error) {
	query := `DELETE FROM notifications WHERE is_read = TRUE AND created_at < $1`
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	logger.DatabaseCall("DELETE", "notifications", "cutoff", cutoff.Format("2006-01-02"))

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err)
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	logger.DatabaseResult("DELETE", rows, nil)
	return rows, nil
}
