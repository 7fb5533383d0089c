package handler

import (
	"net/http"

	"geomate/backend/internal/hub"
	"geomate/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetFriendRequests godoc
// @Summary      Get received friend requests
// @Description  Lists the pending requests addressed to a user, oldest first, with the sender's full name.
// @Tags         friendship
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body UserNameInput true "Recipient"
// @Success      200  {object}  Envelope{body=[]RequestResponse}
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope "User does not exist"
// @Router       /getFriendRequests [post]
func (h *Handler) GetFriendRequests(c *gin.Context) {
	var input UserNameInput
	if !bind(c, &input) {
		return
	}
	ctx := c.Request.Context()

	received, err := h.engine.ReceivedRequests(ctx, input.UserName)
	if err != nil {
		writeError(c, err)
		return
	}

	senders := make([]string, 0, len(received))
	for _, r := range received {
		senders = append(senders, r.FromUser)
	}
	byName, err := h.accounts.Lookup(ctx, senders)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]RequestResponse, 0, len(received))
	for _, r := range received {
		response = append(response, newRequestResponse(r, r.FromUser, byName[r.FromUser].Name))
	}
	success(c, http.StatusOK, "Friend requests fetched", response)
}

// SendFriendRequest godoc
// @Summary      Send friend request
// @Description  Creates a pending request. typeId 0 asks for location sharing, 1 for motion sharing.
// @Tags         friendship
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body SendRequestInput true "Request"
// @Success      201  {object}  Envelope{body=RequestIDResponse}
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope "User or friend does not exist"
// @Failure      409  {object}  Envelope "Request already exists"
// @Router       /sendFriendRequest [post]
func (h *Handler) SendFriendRequest(c *gin.Context) {
	var input SendRequestInput
	if !bind(c, &input) {
		return
	}
	ctx := c.Request.Context()

	req, err := h.engine.SendRequest(ctx, input.FromUserName, input.ToUserName, models.RequestType(*input.TypeID))
	if err != nil {
		writeError(c, err)
		return
	}

	h.notify(c, hub.EventRequestSent, req)
	success(c, http.StatusCreated, "Request sent", RequestIDResponse{ID: req.ID})
}

// CancelFriendRequest godoc
// @Summary      Cancel friend request
// @Description  Withdraws a pending request sent by the caller.
// @Tags         friendship
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body RequestIDInput true "Request"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope "Request does not exist"
// @Router       /cancelFriendRequest [post]
func (h *Handler) CancelFriendRequest(c *gin.Context) {
	var input RequestIDInput
	if !bind(c, &input) {
		return
	}

	req, err := h.engine.CancelRequest(c.Request.Context(), input.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.notify(c, hub.EventRequestCancelled, req)
	success(c, http.StatusOK, "Request cancelled", nil)
}

// AcceptFriendRequest godoc
// @Summary      Accept friend request
// @Description  Makes both users friends of the request's type and removes the request.
// @Tags         friendship
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body RequestIDInput true "Request"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope "Request, user or friend does not exist"
// @Failure      409  {object}  Envelope "Write conflict, try again"
// @Router       /acceptFriendRequest [post]
func (h *Handler) AcceptFriendRequest(c *gin.Context) {
	var input RequestIDInput
	if !bind(c, &input) {
		return
	}

	req, err := h.engine.AcceptRequest(c.Request.Context(), input.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.notify(c, hub.EventRequestAccepted, req)
	success(c, http.StatusOK, "Request accepted", nil)
}

// RejectFriendRequest godoc
// @Summary      Reject friend request
// @Description  Declines a pending request addressed to the caller.
// @Tags         friendship
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body RequestIDInput true "Request"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope "Request does not exist"
// @Router       /rejectFriendRequest [post]
func (h *Handler) RejectFriendRequest(c *gin.Context) {
	var input RequestIDInput
	if !bind(c, &input) {
		return
	}

	req, err := h.engine.RejectRequest(c.Request.Context(), input.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.notify(c, hub.EventRequestRejected, req)
	success(c, http.StatusOK, "Request rejected", nil)
}

// RemoveFriend godoc
// @Summary      Remove friend
// @Description  Removes both users from each other's location and motion friends. Succeeds when they are not friends.
// @Tags         friendship
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body RemoveFriendInput true "Users"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope "Invalid username"
// @Router       /removeFriend [post]
func (h *Handler) RemoveFriend(c *gin.Context) {
	var input RemoveFriendInput
	if !bind(c, &input) {
		return
	}

	if err := h.engine.RemoveFriend(c.Request.Context(), input.UserName, input.FriendUserName); err != nil {
		writeError(c, err)
		return
	}

	h.hub.Publish(c.Request.Context(), hub.Event{
		Type:    hub.EventFriendRemoved,
		Payload: gin.H{"userName": input.UserName, "friendUserName": input.FriendUserName},
	}, input.UserName, input.FriendUserName)
	success(c, http.StatusOK, "Friend removed", nil)
}

// GetRequestTypes godoc
// @Summary      List request types
// @Tags         friendship
// @Produce      json
// @Param        X-API-Key header string true "API key"
// @Success      200  {object}  Envelope{body=[]RequestTypeResponse}
// @Router       /requestTypes [get]
func (h *Handler) GetRequestTypes(c *gin.Context) {
	types, err := h.accounts.RequestTypes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]RequestTypeResponse, 0, len(types))
	for _, t := range types {
		response = append(response, RequestTypeResponse{ID: int(t.ID), TypeName: t.TypeName})
	}
	success(c, http.StatusOK, "Request types fetched", response)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes the user, every friend edge pointing at them and every request they sent or received.
// @Tags         superuser
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body UserNameInput true "User"
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /admin/deleteUser [post]
func (h *Handler) DeleteUser(c *gin.Context) {
	var input UserNameInput
	if !bind(c, &input) {
		return
	}

	if err := h.engine.DeleteUser(c.Request.Context(), input.UserName); err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, "User deleted", nil)
}

// notify tells both parties of a request about a transition.
func (h *Handler) notify(c *gin.Context, eventType string, req *models.FriendRequest) {
	h.hub.Publish(c.Request.Context(), hub.Event{
		Type: eventType,
		Payload: RequestEvent{
			ID:       req.ID,
			FromUser: req.FromUser,
			ToUser:   req.ToUser,
			Date:     req.Date,
			TypeID:   int(req.TypeID),
		},
	}, req.FromUser, req.ToUser)
}

// RequestEvent is the payload of friend request events.
type RequestEvent struct {
	ID       string `json:"id"`
	FromUser string `json:"fromUser"`
	ToUser   string `json:"toUser"`
	Date     int64  `json:"date"`
	TypeID   int    `json:"typeId"`
}
