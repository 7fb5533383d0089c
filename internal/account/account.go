// Package account holds user registration, sign-in and the location and
// motion updates users report.
package account

import (
	"context"
	"errors"
	"fmt"

	"geomate/backend/internal/models"
	"geomate/backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when no user has the given name.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrUserExists is returned by SignUp when the name is taken.
	ErrUserExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned by SignIn for an unknown user or a
	// wrong password, without saying which.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// SignUpInput is a validated registration.
type SignUpInput struct {
	UserName string
	Password string
	Name     string
	Age      int
	Location string
}

// Service manages user records.
type Service struct {
	store    store.Store
	hashCost int
}

// NewService creates a Service hashing passwords with bcrypt's default cost.
func NewService(s store.Store) *Service {
	return &Service{store: s, hashCost: bcrypt.DefaultCost}
}

// WithHashCost returns a copy of the service using cost for new passwords.
func (s *Service) WithHashCost(cost int) *Service {
	cp := *s
	cp.hashCost = cost
	return &cp
}

// SignUp creates a user whose location history starts with in.Location.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		UserName: in.UserName,
		Password: string(hashedPassword),
		Name:     in.Name,
		Age:      in.Age,
	}
	user.AddLocation(in.Location)

	err = s.store.Atomically(ctx, func(tx store.Tx) error {
		return tx.CreateUser(user)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn returns the user when password matches.
func (s *Service) SignIn(ctx context.Context, userName, password string) (*models.User, error) {
	user, err := s.Get(ctx, userName)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Get loads one user.
func (s *Service) Get(ctx context.Context, userName string) (*models.User, error) {
	user, err := s.store.Reader(ctx).GetUser(userName)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// List returns a page of users ordered by name, and the total count.
func (s *Service) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	return s.store.Reader(ctx).ListUsers(page, limit)
}

// Lookup loads the named users that exist, keyed by user name.
func (s *Service) Lookup(ctx context.Context, userNames []string) (map[string]models.User, error) {
	users, err := s.store.Reader(ctx).FindUsers(userNames)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]models.User, len(users))
	for _, u := range users {
		byName[u.UserName] = u
	}
	return byName, nil
}

// UpdateLocation sets the user's location and appends it to their history.
func (s *Service) UpdateLocation(ctx context.Context, userName, location string) error {
	return s.update(ctx, userName, func(u *models.User) {
		u.AddLocation(location)
	})
}

// UpdateMotion sets whether the user is moving.
func (s *Service) UpdateMotion(ctx context.Context, userName string, inMotion bool) error {
	return s.update(ctx, userName, func(u *models.User) {
		u.IsInMotion = inMotion
	})
}

// RequestTypes lists the friend request type catalogue.
func (s *Service) RequestTypes(ctx context.Context) ([]models.RequestTypeInfo, error) {
	return s.store.Reader(ctx).ListRequestTypes()
}

func (s *Service) update(ctx context.Context, userName string, mutate func(u *models.User)) error {
	err := s.store.Atomically(ctx, func(tx store.Tx) error {
		user, err := tx.GetUser(userName)
		if err != nil {
			return err
		}
		mutate(user)
		return tx.SaveUser(user)
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
