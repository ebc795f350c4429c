package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/rubentalstra/BAK/internal/domain"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, profile_image, created_at FROM users WHERE id = $1`
	var profileImage sql.NullString
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &profileImage, &createdAt)
	if err != nil {
		return nil, err
	}
	if profileImage.Valid {
		u.ProfileImage = &profileImage.String
	}
	u.CreatedOn = createdAt.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) GetProfileImage(ctx context.Context, id string) (*string, error) {
	query := `SELECT profile_image FROM users WHERE id = $1`
	var profileImage sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&profileImage)
	if err != nil {
		return nil, err
	}
	if !profileImage.Valid || profileImage.String == "" {
		return nil, nil
	}
	return &profileImage.String, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`
	logger.DatabaseCall("DELETE", "users", "userID", id)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "userID", id)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	// Zero rows means the row was already gone; the delete stays idempotent.
	logger.DatabaseResult("DELETE", rows, nil, "userID", id)
	return nil
}

func (r *userRepository) ListProfileImageKeys(ctx context.Context) ([]string, error) {
	query := `SELECT profile_image FROM users WHERE profile_image IS NOT NULL AND profile_image != ''`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
