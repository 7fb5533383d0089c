package auth

import (
	"bytes"
	"io"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	jsoniter "github.com/json-iterator/go"
)

const (
	// APIKeyHeader carries the API key when it is not sent in the body.
	APIKeyHeader = "X-API-Key"
	// APIKeyField is the body field holding the API key.
	APIKeyField = "apiKey"
	// AccessKey is the gin context key holding the caller's Access.
	AccessKey = "access"
)

// APIKeyMiddleware rejects requests whose API key does not grant one of the
// allowed access levels.
func APIKeyMiddleware(authn Authenticator, allowed ...Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		access := authn.Authenticate(apiKey(c))
		if !slices.Contains(allowed, access) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Error", "message": "Invalid API Key"})
			return
		}

		c.Set(AccessKey, access)
		c.Next()
	}
}

// apiKey reads the key from the header, then the JSON or form body, then
// the query string. A JSON body is restored so handlers can bind it again.
func apiKey(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}

	if c.Request.Body != nil && c.ContentType() == binding.MIMEJSON {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return ""
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		if key := jsoniter.Get(body, APIKeyField).ToString(); key != "" {
			return key
		}
	} else if key := c.PostForm(APIKeyField); key != "" {
		return key
	}
	return c.Query(APIKeyField)
}
