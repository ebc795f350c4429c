package postgres

import (
	"database/sql"

	"github.com/rubentalstra/BAK/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AssociationRequestRepository
	repository.AssociationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                           db,
		UserRepository:               NewUserRepository(db),
		AssociationRequestRepository: NewAssociationRequestRepository(db),
		AssociationRepository:        NewAssociationRepository(db),
		NotificationRepository:       NewNotificationRepository(db),
	}
}
