package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS lets the single-page front end call the gateway from its own origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	policy := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Accept", HeaderUserID, HeaderRequestID},
		ExposedHeaders: []string{"X-Cache", HeaderRequestID},
	})

	return func(c *gin.Context) {
		policy.HandlerFunc(c.Writer, c.Request)
		// Preflight requests are fully answered by the policy.
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.Abort()
			return
		}
		c.Next()
	}
}
