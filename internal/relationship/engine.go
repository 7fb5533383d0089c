// Package relationship implements the friend request lifecycle and the two
// symmetric friend relations it feeds.
//
// A request is pending for as long as its record exists. Accepting,
// rejecting and cancelling all delete it; accepting also adds each user to
// the other's relation list of the request's type. Each operation runs in a
// single store transaction, so either all of its writes land or none do.
package relationship

import (
	"context"
	"errors"
	"slices"

	"geomate/backend/internal/models"
	"geomate/backend/internal/store"

	"github.com/google/uuid"
)

// RequestIDPrefix prefixes every generated request id.
const RequestIDPrefix = "REQ-"

// Engine enforces friend request transitions and relation list mutations.
type Engine struct {
	store store.Store
	clock *Clock
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to date new requests.
func WithClock(c *Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithIDGenerator sets the function producing request ids.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// NewEngine creates an Engine over s.
func NewEngine(s store.Store, opts ...Option) *Engine {
	e := &Engine{
		store: s,
		clock: NewClock(nil),
		newID: func() string { return RequestIDPrefix + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SendRequest creates a pending request from one user to another. It fails
// with ErrAlreadyExists if an identical request is pending or the users are
// already friends of that type.
func (e *Engine) SendRequest(ctx context.Context, fromUser, toUser string, typeID models.RequestType) (*models.FriendRequest, error) {
	if fromUser == "" || toUser == "" {
		return nil, invalid("both user names are required")
	}
	if fromUser == toUser {
		return nil, invalid("cannot send a request to yourself")
	}
	if !typeID.Valid() {
		return nil, invalid("unknown request type %d", int(typeID))
	}

	var created *models.FriendRequest
	err := e.atomically(ctx, func(tx store.Tx) error {
		from, to, err := loadPair(tx, fromUser, toUser)
		if err != nil {
			return err
		}
		if from.IsFriend(typeID, to.UserName) && to.IsFriend(typeID, from.UserName) {
			return exists("%s and %s are already %s friends", fromUser, toUser, typeID)
		}

		pending, err := tx.FindFriendRequests(store.RequestFilter{FromUser: fromUser, ToUser: toUser, TypeID: &typeID})
		if err != nil {
			return err
		}
		if len(pending) > 0 {
			return exists("request %s is already pending", pending[0].ID)
		}

		req := &models.FriendRequest{
			ID:       e.newID(),
			FromUser: fromUser,
			ToUser:   toUser,
			Date:     e.clock.NowMillis(),
			TypeID:   typeID,
		}
		if err := tx.CreateFriendRequest(req); err != nil {
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CancelRequest withdraws a pending request. The sender calls it.
func (e *Engine) CancelRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	return e.dropRequest(ctx, requestID)
}

// RejectRequest declines a pending request. The recipient calls it.
func (e *Engine) RejectRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	return e.dropRequest(ctx, requestID)
}

func (e *Engine) dropRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	if requestID == "" {
		return nil, invalid("request id is required")
	}

	var dropped *models.FriendRequest
	err := e.atomically(ctx, func(tx store.Tx) error {
		req, err := getRequest(tx, requestID)
		if err != nil {
			return err
		}
		if err := tx.DeleteFriendRequest(req.ID); err != nil {
			return err
		}
		dropped = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dropped, nil
}

// AcceptRequest resolves a pending request by making both users friends of
// the request's type and deleting the request.
func (e *Engine) AcceptRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	if requestID == "" {
		return nil, invalid("request id is required")
	}

	var accepted *models.FriendRequest
	err := e.atomically(ctx, func(tx store.Tx) error {
		req, err := getRequest(tx, requestID)
		if err != nil {
			return err
		}
		if !req.TypeID.Valid() {
			return invalid("request %s has unknown type %d", req.ID, int(req.TypeID))
		}

		from, to, err := loadPair(tx, req.FromUser, req.ToUser)
		if err != nil {
			return err
		}

		if from.AddFriend(req.TypeID, to.UserName) {
			if err := tx.SaveUser(from); err != nil {
				return err
			}
		}
		if to.AddFriend(req.TypeID, from.UserName) {
			if err := tx.SaveUser(to); err != nil {
				return err
			}
		}
		if err := tx.DeleteFriendRequest(req.ID); err != nil {
			return err
		}
		accepted = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// RemoveFriend removes both users from each other's location and motion
// relations. Removing users that are not friends succeeds and changes nothing.
func (e *Engine) RemoveFriend(ctx context.Context, userA, userB string) error {
	if userA == "" || userB == "" {
		return invalid("both user names are required")
	}
	if userA == userB {
		return invalid("cannot remove yourself as a friend")
	}

	return e.atomically(ctx, func(tx store.Tx) error {
		a, b, err := loadPair(tx, userA, userB)
		if err != nil {
			return err
		}
		for _, pair := range [][2]*models.User{{a, b}, {b, a}} {
			if pair[0].RemoveFriend(pair[1].UserName) {
				if err := tx.SaveUser(pair[0]); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// DeleteUser removes a user together with every relation edge and request
// that references them.
func (e *Engine) DeleteUser(ctx context.Context, userName string) error {
	if userName == "" {
		return invalid("user name is required")
	}

	return e.atomically(ctx, func(tx store.Tx) error {
		if _, err := getUser(tx, EntityUser, userName); err != nil {
			return err
		}

		// Scan rather than trust the user's own lists so that one-sided
		// edges left by older data are cleaned up too.
		var peers []models.User
		err := tx.ScanUsers(func(u *models.User) error {
			if u.UserName != userName && u.RemoveFriend(userName) {
				peers = append(peers, *u)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for i := range peers {
			if err := tx.SaveUser(&peers[i]); err != nil {
				return err
			}
		}

		if _, err := tx.DeleteFriendRequests(store.RequestFilter{Involving: userName}); err != nil {
			return err
		}
		return tx.DeleteUser(userName)
	})
}

// ReceivedRequests lists the pending requests addressed to a user, oldest first.
func (e *Engine) ReceivedRequests(ctx context.Context, userName string) ([]models.FriendRequest, error) {
	return e.requests(ctx, userName, store.RequestFilter{ToUser: userName})
}

// SentRequests lists the pending requests a user has sent, oldest first.
func (e *Engine) SentRequests(ctx context.Context, userName string) ([]models.FriendRequest, error) {
	return e.requests(ctx, userName, store.RequestFilter{FromUser: userName})
}

func (e *Engine) requests(ctx context.Context, userName string, filter store.RequestFilter) ([]models.FriendRequest, error) {
	if userName == "" {
		return nil, invalid("user name is required")
	}
	r := e.store.Reader(ctx)
	if _, err := getUser(r, EntityUser, userName); err != nil {
		return nil, classify(err)
	}
	reqs, err := r.FindFriendRequests(filter)
	return reqs, classify(err)
}

// Friends returns every user related to userName by either relation, once.
func (e *Engine) Friends(ctx context.Context, userName string) ([]models.User, error) {
	if userName == "" {
		return nil, invalid("user name is required")
	}
	r := e.store.Reader(ctx)
	user, err := getUser(r, EntityUser, userName)
	if err != nil {
		return nil, classify(err)
	}

	names := slices.Concat(user.LocationFriends, user.MotionFriends)
	slices.Sort(names)
	names = slices.Compact(names)

	friends, err := r.FindUsers(names)
	return friends, classify(err)
}

func (e *Engine) atomically(ctx context.Context, fn func(tx store.Tx) error) error {
	return classify(e.store.Atomically(ctx, fn))
}

func getRequest(tx store.Tx, id string) (*models.FriendRequest, error) {
	req, err := tx.GetFriendRequest(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound(EntityRequest, id)
	}
	return req, err
}

func getUser(tx store.Tx, entity, userName string) (*models.User, error) {
	user, err := tx.GetUser(userName)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound(entity, userName)
	}
	return user, err
}

// loadPair loads two distinct users in name order, so that concurrent
// transactions lock rows in the same order.
func loadPair(tx store.Tx, userName, friendName string) (*models.User, *models.User, error) {
	users, err := tx.FindUsers([]string{userName, friendName})
	if err != nil {
		return nil, nil, err
	}

	var user, friend *models.User
	for i := range users {
		switch users[i].UserName {
		case userName:
			user = &users[i]
		case friendName:
			friend = &users[i]
		}
	}
	if user == nil {
		return nil, nil, notFound(EntityUser, userName)
	}
	if friend == nil {
		return nil, nil, notFound(EntityFriend, friendName)
	}
	return user, friend, nil
}
