package models

import "fmt"

// RequestType selects which relation an accepted request populates.
type RequestType int

const (
	// RequestTypeLocation populates LocationFriends on both users.
	RequestTypeLocation RequestType = 0

	// RequestTypeMotion populates MotionFriends on both users.
	RequestTypeMotion RequestType = 1
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	return t == RequestTypeLocation || t == RequestTypeMotion
}

func (t RequestType) String() string {
	switch t {
	case RequestTypeLocation:
		return "location"
	case RequestTypeMotion:
		return "motion"
	}
	return fmt.Sprintf("RequestType(%d)", int(t))
}

// FriendRequest is a pending friend request. Its existence is the pending
// state; accepting, rejecting or cancelling it deletes the row.
type FriendRequest struct {
	ID       string      `gorm:"primaryKey;size:64"`
	FromUser string      `gorm:"size:255;not null;index"`
	ToUser   string      `gorm:"size:255;not null;index"`
	Date     int64       `gorm:"not null;index"` // unix milliseconds
	TypeID   RequestType `gorm:"not null;index"`
}

// Involves reports whether userName is the sender or the recipient.
func (r *FriendRequest) Involves(userName string) bool {
	return r.FromUser == userName || r.ToUser == userName
}
