package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Actor is the authenticated caller extracted from the access token.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// SetActor stores the authenticated actor in echo.Context.
func SetActor(c echo.Context, actor *Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor extracts the authenticated actor from echo.Context.
// Returns nil when the request is unauthenticated.
func GetActor(c echo.Context) *Actor {
	if actor, ok := c.Get(string(KeyActor)).(*Actor); ok {
		return actor
	}

	return nil
}
