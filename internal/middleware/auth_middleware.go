package middleware

import (
	"fmt"
	"strings"

	"jobboard-api/internal/config"
	"jobboard-api/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CtxUserIDKey = "user_id"

type sessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// RequireSession rejects requests without a valid bearer token.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := sessionUserID(c)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Unauthorized",
			})
		}
		c.Locals(CtxUserIDKey, userID)
		return c.Next()
	}
}

// OptionalSession attaches the user id when a valid token is present and
// continues silently otherwise. No session is a normal state, not an error.
func OptionalSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := sessionUserID(c); ok {
			c.Locals(CtxUserIDKey, userID)
		}
		return c.Next()
	}
}

// SessionUserID reads the user id a session middleware stored on the context.
func SessionUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	return userID, ok
}

func sessionUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	token, ok := bearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return uuid.Nil, false
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.LoadJWTConfig().Secret), nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, false
	}

	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
