// Package store is the transactional record store behind the relationship
// engine. Every entity is addressed by type and primary key.
package store

import (
	"context"
	"errors"

	"geomate/backend/internal/models"
)

var (
	// ErrNotFound is returned when no record exists for a key.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when creating a record whose key is taken.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrWriteConflict is returned when a transaction could not commit because
	// of a concurrent transaction. The whole operation may be retried.
	ErrWriteConflict = errors.New("write conflict")
)

// RequestFilter selects friend requests. Empty fields match anything.
type RequestFilter struct {
	FromUser string
	ToUser   string
	// Involving matches requests sent or received by the user.
	Involving string
	TypeID    *models.RequestType
}

// Tx is the record accessor available inside and outside a transaction.
type Tx interface {
	GetUser(userName string) (*models.User, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
	DeleteUser(userName string) error
	FindUsers(userNames []string) ([]models.User, error)
	ListUsers(page, limit int) ([]models.User, int64, error)
	ScanUsers(fn func(user *models.User) error) error

	GetFriendRequest(id string) (*models.FriendRequest, error)
	CreateFriendRequest(req *models.FriendRequest) error
	DeleteFriendRequest(id string) error
	FindFriendRequests(filter RequestFilter) ([]models.FriendRequest, error)
	DeleteFriendRequests(filter RequestFilter) (int64, error)

	ListRequestTypes() ([]models.RequestTypeInfo, error)
}

// Store hands out record accessors.
type Store interface {
	// Atomically runs fn in a single transaction. Either every write made
	// through tx commits or none does. An error returned by fn rolls back.
	Atomically(ctx context.Context, fn func(tx Tx) error) error

	// Reader returns a non-transactional accessor bound to ctx.
	Reader(ctx context.Context) Tx
}
