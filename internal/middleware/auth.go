package middleware

import (
	"strings"

	"relationship_mojo_backend/internal/config"
	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	guestHeader  = "X-Guest-ID"
	subjectKey   = "subject"
	guestSubject = "guest"
)

func bearerToken(c *gin.Context) string {
	tokenString := ""
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	return tokenString
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// OptionalAuthMiddleware accepts either a JWT or, when guest mode is
// enabled, an X-Guest-ID header identifying an anonymous session. A guest
// without the header gets one minted; the handler echoes it back so the
// client can keep its session.
func OptionalAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
			if err != nil {
				util.Unauthorized(c)
				c.Abort()
				return
			}
			c.Set("user", claims)
			c.Next()
			return
		}

		if !cfg.Assessment.GuestMode {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		guestID := c.GetHeader(guestHeader)
		if guestID == "" {
			guestID = model.GenerateUUID()
		}
		c.Set(subjectKey, guestSubject+"-"+guestID)
		c.Header(guestHeader, guestID)
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == model.Admin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			go repo.UpdateLastSeen(claims.UserID)
		}
		c.Next()
	}
}
