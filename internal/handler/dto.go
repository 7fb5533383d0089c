package handler

import (
	"geomate/backend/internal/models"
)

// region --- Inputs ---

// SignUpInput defines the structure for user registration.
type SignUpInput struct {
	UserName string `form:"userName" json:"userName" binding:"required" example:"alice"`
	Password string `form:"password" json:"password" binding:"required" example:"password123"`
	Name     string `form:"name" json:"name" binding:"required" example:"Alice"`
	Age      *int   `form:"age" json:"age" binding:"required,min=0" example:"30"`
	Location string `form:"location" json:"location" binding:"required,latlon" example:"51.50,-0.12"`
}

// SignInInput defines the structure for user sign-in.
type SignInInput struct {
	UserName string `form:"userName" json:"userName" binding:"required" example:"alice"`
	Password string `form:"password" json:"password" binding:"required" example:"password123"`
}

// UserNameInput names a single user.
type UserNameInput struct {
	UserName string `form:"userName" json:"userName" binding:"required" example:"alice"`
}

// ListUsersInput selects a page of users.
type ListUsersInput struct {
	Page  int `form:"page" json:"page" example:"1"`
	Limit int `form:"limit" json:"limit" example:"10"`
}

// LocationInput reports a user's current location.
type LocationInput struct {
	UserName string `form:"userName" json:"userName" binding:"required" example:"alice"`
	Location string `form:"location" json:"location" binding:"required,latlon" example:"51.50,-0.12"`
}

// MotionInput reports whether a user is moving.
type MotionInput struct {
	UserName   string `form:"userName" json:"userName" binding:"required" example:"alice"`
	IsInMotion *bool  `form:"isInMotion" json:"isInMotion" binding:"required" example:"true"`
}

// SendRequestInput defines a new friend request.
type SendRequestInput struct {
	FromUserName string `form:"fromUserName" json:"fromUserName" binding:"required" example:"alice"`
	ToUserName   string `form:"toUserName" json:"toUserName" binding:"required" example:"bob"`
	TypeID       *int   `form:"typeId" json:"typeId" binding:"required,oneof=0 1" example:"0"`
}

// RequestIDInput names a pending friend request.
type RequestIDInput struct {
	ID string `form:"id" json:"id" binding:"required" example:"REQ-0b5e1f1c-7a52-4c1e-9d0a-3f3b0e9a6c11"`
}

// RemoveFriendInput names the two users to unfriend.
type RemoveFriendInput struct {
	UserName       string `form:"userName" json:"userName" binding:"required" example:"alice"`
	FriendUserName string `form:"friendUserName" json:"friendUserName" binding:"required" example:"bob"`
}

// endregion

// region --- Responses ---

// UserSummary is the shortest public view of a user.
type UserSummary struct {
	UserName string `json:"userName" example:"alice"`
	Name     string `json:"name" example:"Alice"`
	Age      int    `json:"age" example:"30"`
}

// MinimalUserResponse is the public profile of a user.
type MinimalUserResponse struct {
	UserName    string `json:"userName" example:"alice"`
	Name        string `json:"name" example:"Alice"`
	Age         int    `json:"age" example:"30"`
	Description string `json:"description" example:""`
}

// RequestResponse describes a pending request from one user's point of
// view: UserName is the other party.
type RequestResponse struct {
	ID           string `json:"id"`
	UserName     string `json:"userName"`
	UserFullName string `json:"userFullName,omitempty"`
	Date         int64  `json:"date"`
	TypeID       int    `json:"typeId"`
}

// UserResponse is the full profile of a user.
type UserResponse struct {
	UserName         string            `json:"userName"`
	Name             string            `json:"name"`
	Age              int               `json:"age"`
	Description      string            `json:"description"`
	Location         string            `json:"location"`
	IsInMotion       bool              `json:"isInMotion"`
	LocationHistory  []string          `json:"locationHistory"`
	LocationFriends  []string          `json:"locationFriends"`
	MotionFriends    []string          `json:"motionFriends"`
	ReceivedRequests []RequestResponse `json:"receivedRequests"`
	SentRequests     []RequestResponse `json:"sentRequests"`
}

// SignInResponse is the full profile plus a session token.
type SignInResponse struct {
	UserResponse
	Token string `json:"token"`
}

// LocationResponse splits a stored location into its coordinates.
type LocationResponse struct {
	Latitude  string `json:"latitude" example:"51.50"`
	Longitude string `json:"longitude" example:"-0.12"`
}

// MotionResponse reports the motion flag.
type MotionResponse struct {
	IsInMotion bool `json:"isInMotion"`
}

// RequestIDResponse returns the id of a created request.
type RequestIDResponse struct {
	ID string `json:"id"`
}

// RequestTypeResponse is a catalogue row.
type RequestTypeResponse struct {
	ID       int    `json:"id" example:"0"`
	TypeName string `json:"typeName" example:"location"`
}

// endregion

// region --- Builders ---

func newUserSummary(u models.User) UserSummary {
	return UserSummary{UserName: u.UserName, Name: u.Name, Age: u.Age}
}

func newMinimalUserResponse(u *models.User) MinimalUserResponse {
	return MinimalUserResponse{
		UserName:    u.UserName,
		Name:        u.Name,
		Age:         u.Age,
		Description: u.Description,
	}
}

func newUserResponse(u *models.User, received, sent []models.FriendRequest) UserResponse {
	resp := UserResponse{
		UserName:         u.UserName,
		Name:             u.Name,
		Age:              u.Age,
		Description:      u.Description,
		Location:         u.Location,
		IsInMotion:       u.IsInMotion,
		LocationHistory:  orEmpty(u.LocationHistory),
		LocationFriends:  orEmpty(u.LocationFriends),
		MotionFriends:    orEmpty(u.MotionFriends),
		ReceivedRequests: make([]RequestResponse, 0, len(received)),
		SentRequests:     make([]RequestResponse, 0, len(sent)),
	}
	for _, r := range received {
		resp.ReceivedRequests = append(resp.ReceivedRequests, newRequestResponse(r, r.FromUser, ""))
	}
	for _, r := range sent {
		resp.SentRequests = append(resp.SentRequests, newRequestResponse(r, r.ToUser, ""))
	}
	return resp
}

func newRequestResponse(r models.FriendRequest, peer, peerName string) RequestResponse {
	return RequestResponse{
		ID:           r.ID,
		UserName:     peer,
		UserFullName: peerName,
		Date:         r.Date,
		TypeID:       int(r.TypeID),
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// endregion
