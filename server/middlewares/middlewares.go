package middlewares

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/foodgram-ru/foodgram-backend/utils"
)

var (
	// jwtSecret verifies bearer tokens issued by the external auth
	// service. Before any middleware runs, make sure it's initialized
	// correctly via Setup.
	jwtSecret []byte
)

// Setup initializes all package scoped variables that are needed to
// perform middleware functionalities. This function must be called
// before any middleware is used.
func Setup() {
	secret := os.Getenv("JWT_SECRET")
	if len(secret) == 0 {
		// Abort directly if the secret isn't available, which is crucial
		// for server side authorization.
		log.Fatal("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
}

// JWT fetches the bearer token from the Authorization header, verifies
// it and adds a header field "sub" holding the user's id. Requests
// without a token pass through anonymously; RequireAuth gates the
// endpoints that need an identity.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Header.Del("sub")

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		sub, err := parseSubject(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  err.Error(),
			})
			c.Abort()
			return
		}
		c.Request.Header.Set("sub", sub)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated subject.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("sub") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "authentication required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func parseSubject(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	return parsed.Claims.GetSubject()
}
