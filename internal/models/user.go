package models

import (
	"slices"
	"time"
)

// User represents a registered user and their two friend relations.
type User struct {
	UserName        string   `gorm:"primaryKey;size:255"`
	Password        string   `gorm:"size:255;not null"`
	Name            string   `gorm:"size:255;not null;index"`
	Age             int      `gorm:"not null;index"`
	Description     string   `gorm:"not null;default:''"`
	Location        string   `gorm:"size:255;index"`
	IsInMotion      bool     `gorm:"not null;default:false;index"`
	LocationHistory []string `gorm:"type:text;serializer:json"`
	LocationFriends []string `gorm:"type:text;serializer:json"`
	MotionFriends   []string `gorm:"type:text;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Friends returns the relation list for the given request type.
func (u *User) Friends(t RequestType) []string {
	if t == RequestTypeMotion {
		return u.MotionFriends
	}
	return u.LocationFriends
}

// IsFriend reports whether peer is in the relation list of type t.
func (u *User) IsFriend(t RequestType, peer string) bool {
	return slices.Contains(u.Friends(t), peer)
}

// AddFriend inserts peer into the relation list of type t unless it is already
// present or is the user itself. It reports whether the list changed.
func (u *User) AddFriend(t RequestType, peer string) bool {
	if peer == u.UserName || u.IsFriend(t, peer) {
		return false
	}
	if t == RequestTypeMotion {
		u.MotionFriends = append(u.MotionFriends, peer)
	} else {
		u.LocationFriends = append(u.LocationFriends, peer)
	}
	return true
}

// RemoveFriend drops every occurrence of peer from both relation lists.
func (u *User) RemoveFriend(peer string) bool {
	before := len(u.LocationFriends) + len(u.MotionFriends)
	u.LocationFriends = without(u.LocationFriends, peer)
	u.MotionFriends = without(u.MotionFriends, peer)
	return len(u.LocationFriends)+len(u.MotionFriends) != before
}

// AddLocation sets the current location and appends it to the history.
func (u *User) AddLocation(location string) {
	u.Location = location
	u.LocationHistory = append(u.LocationHistory, location)
}

func without(list []string, name string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}
