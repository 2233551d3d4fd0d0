package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

var allowedHeaders = []string{"Content-Type"}

// CORS allows any origin. PUT and DELETE are advertised even though no
// route accepts them.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    allowedMethods,
		AllowHeaders:    allowedHeaders,
	})
}

// Preflight answers every OPTIONS request that CORS let through (no Origin,
// or same origin) with 204 and the same headers.
func Preflight() gin.HandlerFunc {
	methods := strings.Join(allowedMethods, ", ")
	headers := strings.Join(allowedHeaders, ", ")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.AbortWithStatus(http.StatusNoContent)
	}
}
