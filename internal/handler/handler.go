package handler

import (
	"errors"
	"log"
	"net/http"

	"geomate/backend/internal/account"
	"geomate/backend/internal/hub"
	"geomate/backend/internal/relationship"
	"geomate/backend/internal/validation"
	"geomate/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Response status values.
const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Envelope is the shape of every response.
type Envelope struct {
	Status  string      `json:"status" example:"Success"`
	Message string      `json:"message" example:"Request sent"`
	Body    interface{} `json:"body,omitempty"`
}

// Handler serves the HTTP API.
type Handler struct {
	accounts *account.Service
	engine   *relationship.Engine
	hub      *hub.Hub
	tokens   *jwt.Issuer
}

// New creates a Handler.
func New(accounts *account.Service, engine *relationship.Engine, h *hub.Hub, tokens *jwt.Issuer) *Handler {
	validation.Register()
	return &Handler{
		accounts: accounts,
		engine:   engine,
		hub:      h,
		tokens:   tokens,
	}
}

func success(c *gin.Context, code int, message string, body interface{}) {
	c.JSON(code, Envelope{Status: StatusSuccess, Message: message, Body: body})
}

func failure(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: StatusError, Message: message})
}

// bind binds the form or JSON body into obj and reports validation failures.
func bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		writeError(c, validation.FromBinding(err))
		return false
	}
	return true
}

// writeError maps an error onto the envelope and an HTTP status.
func writeError(c *gin.Context, err error) {
	var ve *validation.ValidationError
	var nf *relationship.NotFoundError

	switch {
	case errors.As(err, &ve):
		if ve.Missing() {
			failure(c, http.StatusBadRequest, "Empty parameters")
		} else {
			failure(c, http.StatusBadRequest, "Invalid parameters")
		}
	case errors.As(err, &nf):
		failure(c, http.StatusNotFound, notFoundMessage(nf.Entity))
	case errors.Is(err, relationship.ErrNotFound), errors.Is(err, account.ErrUserNotFound):
		failure(c, http.StatusNotFound, "User does not exist")
	case errors.Is(err, relationship.ErrInvalidArgument):
		failure(c, http.StatusBadRequest, "Invalid parameters")
	case errors.Is(err, relationship.ErrAlreadyExists):
		failure(c, http.StatusConflict, "Request already exists")
	case errors.Is(err, account.ErrUserExists):
		failure(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, account.ErrInvalidCredentials):
		failure(c, http.StatusUnauthorized, "Invalid Username or Password")
	case errors.Is(err, relationship.ErrWriteConflict):
		failure(c, http.StatusConflict, "Write conflict, try again")
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		failure(c, http.StatusInternalServerError, "Write Failed")
	}
}

func notFoundMessage(entity string) string {
	switch entity {
	case relationship.EntityFriend:
		return "Friend does not exist"
	case relationship.EntityRequest:
		return "Request does not exist"
	}
	return "User does not exist"
}
