package store

import (
	"context"
	"errors"
	"fmt"

	"geomate/backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgreSQL SQLSTATEs meaning the transaction lost a race.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// GormStore implements Store on a gorm connection.
type GormStore struct {
	db *gorm.DB
	// lockRows adds SELECT ... FOR UPDATE to reads inside transactions.
	lockRows bool
}

// NewGormStore wraps db. Row locking is enabled on PostgreSQL only.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:       db,
		lockRows: db.Dialector.Name() == "postgres",
	}
}

// Atomically implements Store.
func (s *GormStore) Atomically(ctx context.Context, fn func(tx Tx) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx, lock: s.lockRows})
	})
	return translate(err)
}

// Reader implements Store.
func (s *GormStore) Reader(ctx context.Context) Tx {
	return &gormTx{db: s.db.WithContext(ctx)}
}

type gormTx struct {
	db   *gorm.DB
	lock bool
}

func (t *gormTx) forUpdate() *gorm.DB {
	if t.lock {
		return t.db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return t.db
}

func (t *gormTx) GetUser(userName string) (*models.User, error) {
	var user models.User
	if err := t.forUpdate().Where("user_name = ?", userName).Take(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (t *gormTx) CreateUser(user *models.User) error {
	var count int64
	if err := t.db.Model(&models.User{}).Where("user_name = ?", user.UserName).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count > 0 {
		return ErrAlreadyExists
	}
	return translate(t.db.Create(user).Error)
}

func (t *gormTx) SaveUser(user *models.User) error {
	return translate(t.db.Save(user).Error)
}

func (t *gormTx) DeleteUser(userName string) error {
	result := t.db.Where("user_name = ?", userName).Delete(&models.User{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindUsers returns the existing users among userNames, ordered by name.
func (t *gormTx) FindUsers(userNames []string) ([]models.User, error) {
	var users []models.User
	if len(userNames) == 0 {
		return users, nil
	}
	err := t.forUpdate().Where("user_name IN ?", userNames).Order("user_name").Find(&users).Error
	return users, translate(err)
}

func (t *gormTx) ListUsers(page, limit int) ([]models.User, int64, error) {
	users, total, err := paginate[models.User](t.db, page, limit, "user_name")
	return users, total, translate(err)
}

// ScanUsers calls fn for every user in primary key order. The user passed to
// fn is reused between calls; copy it to keep it.
func (t *gormTx) ScanUsers(fn func(user *models.User) error) error {
	var batch []models.User
	result := t.forUpdate().FindInBatches(&batch, 100, func(_ *gorm.DB, _ int) error {
		for i := range batch {
			if err := fn(&batch[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return translate(result.Error)
}

func (t *gormTx) GetFriendRequest(id string) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := t.forUpdate().Where("id = ?", id).Take(&req).Error; err != nil {
		return nil, translate(err)
	}
	return &req, nil
}

func (t *gormTx) CreateFriendRequest(req *models.FriendRequest) error {
	return translate(t.db.Create(req).Error)
}

func (t *gormTx) DeleteFriendRequest(id string) error {
	result := t.db.Where("id = ?", id).Delete(&models.FriendRequest{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *gormTx) FindFriendRequests(filter RequestFilter) ([]models.FriendRequest, error) {
	var reqs []models.FriendRequest
	err := filter.apply(t.db).Order("date, id").Find(&reqs).Error
	return reqs, translate(err)
}

func (t *gormTx) DeleteFriendRequests(filter RequestFilter) (int64, error) {
	// gorm refuses a Delete without conditions; an empty filter means all rows.
	result := filter.apply(t.db).Where("1 = 1").Delete(&models.FriendRequest{})
	return result.RowsAffected, translate(result.Error)
}

func (t *gormTx) ListRequestTypes() ([]models.RequestTypeInfo, error) {
	var types []models.RequestTypeInfo
	err := t.db.Order("id").Find(&types).Error
	return types, translate(err)
}

func (f RequestFilter) apply(db *gorm.DB) *gorm.DB {
	if f.FromUser != "" {
		db = db.Where("from_user = ?", f.FromUser)
	}
	if f.ToUser != "" {
		db = db.Where("to_user = ?", f.ToUser)
	}
	if f.Involving != "" {
		db = db.Where("from_user = ? OR to_user = ?", f.Involving, f.Involving)
	}
	if f.TypeID != nil {
		db = db.Where("type_id = ?", *f.TypeID)
	}
	return db
}

// translate maps driver and gorm errors onto the store sentinels. Errors it
// does not recognise are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrWriteConflict) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return fmt.Errorf("%w: %s", ErrWriteConflict, pgErr.Message)
		}
	}
	return err
}
