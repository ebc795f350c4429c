package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/rubentalstra/BAK/internal/repository/postgres"
)

func TestAssociationRequestRepository_MarkProcessed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAssociationRequestRepository(db)
	ctx := context.Background()
	reqID := "6a1f6f2e-46e4-4b44-8b8e-0f2ee29c3a01"

	t.Run("FirstDeliveryWins", func(t *testing.T) {
		mock.ExpectExec("UPDATE association_requests SET processed = TRUE WHERE id = \\$1 AND processed = FALSE").
			WithArgs(reqID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		acted, err := repo.MarkProcessed(ctx, reqID)
		assert.NoError(t, err)
		assert.True(t, acted)
	})

	t.Run("AlreadyProcessed", func(t *testing.T) {
		mock.ExpectExec("UPDATE association_requests SET processed = TRUE WHERE id = \\$1 AND processed = FALSE").
			WithArgs(reqID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		acted, err := repo.MarkProcessed(ctx, reqID)
		assert.NoError(t, err)
		assert.False(t, acted)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("UPDATE association_requests SET processed = TRUE").
			WithArgs(reqID).
			WillReturnError(assert.AnError)

		acted, err := repo.MarkProcessed(ctx, reqID)
		assert.Error(t, err)
		assert.False(t, acted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociationRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewAssociationRequestRepository(db)
	ctx := context.Background()
	reqID := "6a1f6f2e-46e4-4b44-8b8e-0f2ee29c3a01"

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "website_url", "status", "processed"}).
			AddRow(reqID, "user-1", "D.S.V. Sint Jansbrug", "https://jansbrug.nl", "Approved", false)

		mock.ExpectQuery("SELECT (.+) FROM association_requests WHERE id = \\$1").
			WithArgs(reqID).
			WillReturnRows(rows)

		req, err := repo.GetByID(ctx, reqID)
		assert.NoError(t, err)
		assert.Equal(t, reqID, req.ID)
		assert.False(t, req.Processed)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM association_requests WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(assert.AnError)

		req, err := repo.GetByID(ctx, "missing")
		assert.Error(t, err)
		assert.Nil(t, req)
	})
}
