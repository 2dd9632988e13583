package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ariebrainware/health-tracker/conditions"
	"github.com/ariebrainware/health-tracker/store"
)

const (
	storeContextKey      = "recordStore"
	conditionsContextKey = "conditionsClient"
)

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Content-Type", "application/json")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// StoreMiddleware injects the session record store into the request context
// so handlers remain testable against any store instance.
func StoreMiddleware(s *store.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeContextKey, s)
		c.Next()
	}
}

// GetStore returns the record store from the request context, or nil when
// none was injected.
func GetStore(c *gin.Context) *store.RecordStore {
	if v, ok := c.Get(storeContextKey); ok {
		if s, ok := v.(*store.RecordStore); ok {
			return s
		}
	}
	return nil
}

// ConditionsMiddleware injects the condition reference client into the
// request context.
func ConditionsMiddleware(client *conditions.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(conditionsContextKey, client)
		c.Next()
	}
}

// GetConditions returns the condition reference client from the request
// context, or nil when none was injected.
func GetConditions(c *gin.Context) *conditions.Client {
	if v, ok := c.Get(conditionsContextKey); ok {
		if client, ok := v.(*conditions.Client); ok {
			return client
		}
	}
	return nil
}
