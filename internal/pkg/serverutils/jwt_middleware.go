package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"noteful-be/internal/apperror"
)

// LocalsUserId is the request-local key carrying the authenticated user id.
const LocalsUserId = "user_id"

// NewJwtMiddleware verifies the bearer token and attaches the acting
// identity to the request. Missing, malformed, and expired tokens all get
// the same generic 401.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperror.Unauthorized()
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return apperror.Unauthorized()
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperror.Unauthorized()
		}

		userIdStr, ok := claims["user_id"].(string)
		if !ok {
			return apperror.Unauthorized()
		}
		userId, err := uuid.Parse(userIdStr)
		if err != nil {
			return apperror.Unauthorized()
		}

		ctx.Locals(LocalsUserId, userId)
		return ctx.Next()
	}
}

// UserIdFromLocals recovers the identity the middleware attached.
func UserIdFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	userId, ok := ctx.Locals(LocalsUserId).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperror.Unauthorized()
	}
	return userId, nil
}
