package handler

import (
	"net/http"

	"geomate/backend/internal/auth"

	// Swagger imports
	_ "geomate/backend/docs" // This is important for swag to find the generated docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route of the API onto a gin engine.
func NewRouter(h *Handler, authn auth.Authenticator) *gin.Engine {
	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoints
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/connectionTest", h.ConnectionTest)

	anyKey := router.Group("/")
	anyKey.Use(auth.APIKeyMiddleware(authn, auth.AccessClient, auth.AccessAdmin))
	{
		anyKey.POST("/getMinimalUser", h.GetMinimalUser)
		anyKey.POST("/getUser", h.GetUser)
		anyKey.POST("/getAllUsers", h.GetAllUsers)
		anyKey.GET("/requestTypes", h.GetRequestTypes)
	}

	client := router.Group("/")
	client.Use(auth.APIKeyMiddleware(authn, auth.AccessClient))
	{
		// Account routes
		client.POST("/signUpUser", h.SignUpUser)
		client.POST("/signInUser", h.SignInUser)
		client.POST("/getAllFriends", h.GetAllFriends)
		client.POST("/updateLocation", h.UpdateLocation)
		client.POST("/updateMotionStatus", h.UpdateMotionStatus)
		client.POST("/getLocation", h.GetLocation)
		client.POST("/getMovementStatus", h.GetMovementStatus)

		// Friendship routes
		client.POST("/getFriendRequests", h.GetFriendRequests)
		client.POST("/sendFriendRequest", h.SendFriendRequest)
		client.POST("/cancelFriendRequest", h.CancelFriendRequest)
		client.POST("/acceptFriendRequest", h.AcceptFriendRequest)
		client.POST("/rejectFriendRequest", h.RejectFriendRequest)
		client.POST("/removeFriend", h.RemoveFriend)
	}

	// Admin routes (superuser key only)
	admin := router.Group("/admin")
	admin.Use(auth.APIKeyMiddleware(authn, auth.AccessAdmin))
	{
		admin.POST("/deleteUser", h.DeleteUser)
	}

	// Session routes (Bearer token from signInUser)
	session := router.Group("/")
	session.Use(auth.AuthMiddleware(h.tokens))
	{
		session.GET("/me", h.GetMe)
		session.GET("/events", h.StreamEvents)
	}

	return router
}

// ConnectionTest godoc
// @Summary      Test server connection
// @Tags         superuser
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /connectionTest [get]
func (h *Handler) ConnectionTest(c *gin.Context) {
	success(c, http.StatusOK, "Server is up and ready", nil)
}
