package handler

import (
	"net/http"

	"geomate/backend/internal/account"
	"geomate/backend/internal/auth"
	"geomate/backend/internal/models"
	"geomate/backend/internal/store"
	"geomate/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// region --- Account Handlers ---

// SignUpUser godoc
// @Summary      Sign up a user
// @Description  Creates a new user. The location becomes the first entry of the location history.
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        X-API-Key header string false "Client API key (or apiKey body field)"
// @Param        input body SignUpInput true "Registration Info"
// @Success      201  {object}  Envelope{body=MinimalUserResponse}
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      409  {object}  Envelope "Username already exists"
// @Router       /signUpUser [post]
func (h *Handler) SignUpUser(c *gin.Context) {
	var input SignUpInput
	if !bind(c, &input) {
		return
	}

	user, err := h.accounts.SignUp(c.Request.Context(), account.SignUpInput{
		UserName: input.UserName,
		Password: input.Password,
		Name:     input.Name,
		Age:      *input.Age,
		Location: input.Location,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	success(c, http.StatusCreated, "User signed up", newMinimalUserResponse(user))
}

// SignInUser godoc
// @Summary      Sign in a user
// @Description  Checks credentials and returns the full profile with a session token for /me and /events.
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body SignInInput true "Credentials"
// @Success      200  {object}  Envelope{body=SignInResponse}
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope "Invalid Username or Password"
// @Router       /signInUser [post]
func (h *Handler) SignInUser(c *gin.Context) {
	var input SignInInput
	if !bind(c, &input) {
		return
	}

	user, err := h.accounts.SignIn(c.Request.Context(), input.UserName, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	profile, err := h.buildUserResponse(c, user)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.UserName)
	if err != nil {
		writeError(c, err)
		return
	}

	success(c, http.StatusOK, "User credentials valid", SignInResponse{UserResponse: profile, Token: token})
}

// endregion

// region --- User Handlers ---

// GetMinimalUser godoc
// @Summary      Get a minimal user profile
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body UserNameInput true "User"
// @Success      200  {object}  Envelope{body=MinimalUserResponse}
// @Failure      404  {object}  Envelope
// @Router       /getMinimalUser [post]
func (h *Handler) GetMinimalUser(c *gin.Context) {
	var input UserNameInput
	if !bind(c, &input) {
		return
	}

	user, err := h.accounts.Get(c.Request.Context(), input.UserName)
	if err != nil {
		writeError(c, err)
		return
	}

	success(c, http.StatusOK, "User profile fetched", newMinimalUserResponse(user))
}

// GetUser godoc
// @Summary      Get a full user profile
// @Description  Returns location data, both friend lists and the pending requests the user sent and received.
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body UserNameInput true "User"
// @Success      200  {object}  Envelope{body=UserResponse}
// @Failure      404  {object}  Envelope
// @Router       /getUser [post]
func (h *Handler) GetUser(c *gin.Context) {
	var input UserNameInput
	if !bind(c, &input) {
		return
	}
	h.writeProfile(c, input.UserName, "User profile fetched")
}

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Returns the full profile of the user the session token was issued to.
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{body=UserResponse}
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	h.writeProfile(c, c.GetString(auth.UserNameKey), "User profile fetched")
}

// GetAllUsers godoc
// @Summary      List users
// @Description  Lists users ordered by user name, one page at a time.
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body ListUsersInput false "Page"
// @Success      200  {object}  Envelope{body=PaginatedResponse[UserSummary]}
// @Router       /getAllUsers [post]
func (h *Handler) GetAllUsers(c *gin.Context) {
	var input ListUsersInput
	if !bind(c, &input) {
		return
	}
	page, limit := store.NormalizePage(input.Page, input.Limit)

	users, total, err := h.accounts.List(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, newUserSummary(u))
	}

	success(c, http.StatusOK, "All users fetched", NewPaginatedResponse(summaries, total, page, limit))
}

// GetAllFriends godoc
// @Summary      List a user's friends
// @Description  Returns every user that is a location or motion friend, once.
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body UserNameInput true "User"
// @Success      200  {object}  Envelope{body=[]UserSummary}
// @Failure      404  {object}  Envelope
// @Router       /getAllFriends [post]
func (h *Handler) GetAllFriends(c *gin.Context) {
	var input UserNameInput
	if !bind(c, &input) {
		return
	}

	friends, err := h.engine.Friends(c.Request.Context(), input.UserName)
	if err != nil {
		writeError(c, err)
		return
	}

	summaries := make([]UserSummary, 0, len(friends))
	for _, f := range friends {
		summaries = append(summaries, newUserSummary(f))
	}
	success(c, http.StatusOK, "Friends fetched", summaries)
}

// endregion

// region --- Location Handlers ---

// UpdateLocation godoc
// @Summary      Update a user's location
// @Description  Sets the current location ("lat,lon") and appends it to the location history.
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body LocationInput true "Location"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /updateLocation [post]
func (h *Handler) UpdateLocation(c *gin.Context) {
	var input LocationInput
	if !bind(c, &input) {
		return
	}

	if err := h.accounts.UpdateLocation(c.Request.Context(), input.UserName, input.Location); err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, "Location updated", nil)
}

// UpdateMotionStatus godoc
// @Summary      Update a user's motion status
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body MotionInput true "Motion status"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /updateMotionStatus [post]
func (h *Handler) UpdateMotionStatus(c *gin.Context) {
	var input MotionInput
	if !bind(c, &input) {
		return
	}

	if err := h.accounts.UpdateMotion(c.Request.Context(), input.UserName, *input.IsInMotion); err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, "Motion status updated", nil)
}

// GetLocation godoc
// @Summary      Get a user's location
// @Description  Returns the current coordinates, or "0.0" for both when none is stored.
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body UserNameInput true "User"
// @Success      200  {object}  Envelope{body=LocationResponse}
// @Failure      404  {object}  Envelope
// @Router       /getLocation [post]
func (h *Handler) GetLocation(c *gin.Context) {
	var input UserNameInput
	if !bind(c, &input) {
		return
	}

	user, err := h.accounts.Get(c.Request.Context(), input.UserName)
	if err != nil {
		writeError(c, err)
		return
	}

	lat, lon := validation.SplitLatLon(user.Location)
	success(c, http.StatusOK, "Location fetched", LocationResponse{Latitude: lat, Longitude: lon})
}

// GetMovementStatus godoc
// @Summary      Get a user's motion status
// @Tags         client
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input body UserNameInput true "User"
// @Success      200  {object}  Envelope{body=MotionResponse}
// @Failure      404  {object}  Envelope
// @Router       /getMovementStatus [post]
func (h *Handler) GetMovementStatus(c *gin.Context) {
	var input UserNameInput
	if !bind(c, &input) {
		return
	}

	user, err := h.accounts.Get(c.Request.Context(), input.UserName)
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, "Movement status fetched", MotionResponse{IsInMotion: user.IsInMotion})
}

// endregion

// region --- Helpers ---

func (h *Handler) writeProfile(c *gin.Context, userName, message string) {
	user, err := h.accounts.Get(c.Request.Context(), userName)
	if err != nil {
		writeError(c, err)
		return
	}

	profile, err := h.buildUserResponse(c, user)
	if err != nil {
		writeError(c, err)
		return
	}
	success(c, http.StatusOK, message, profile)
}

func (h *Handler) buildUserResponse(c *gin.Context, user *models.User) (UserResponse, error) {
	ctx := c.Request.Context()

	received, err := h.engine.ReceivedRequests(ctx, user.UserName)
	if err != nil {
		return UserResponse{}, err
	}
	sent, err := h.engine.SentRequests(ctx, user.UserName)
	if err != nil {
		return UserResponse{}, err
	}
	return newUserResponse(user, received, sent), nil
}

// endregion
