package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Actor roles carried in access tokens.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// Claims defines the custom claims for the access tokens.
type Claims struct {
	ActorID uuid.UUID
	Role    string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a new access token for a given actor.
	GenerateAccessToken(actorID uuid.UUID, role string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
