package middleware

import (
	"strings"

	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/delivery/http/response"
	"mazza/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		// Set actor info on the context for handlers to use
		deliverycontext.SetActor(c, &deliverycontext.Actor{
			ID:   claims.ActorID,
			Role: claims.Role,
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the actor has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor == nil {
				return response.Forbidden(c, "Permission denied: actor information missing")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}
