package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// stubTokenService validates exactly one known token string.
type stubTokenService struct {
	token  string
	claims *service.Claims
}

func (s *stubTokenService) GenerateAccessToken(uuid.UUID, string) (string, error) {
	return s.token, nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString != s.token {
		return nil, errors.New("token is invalid")
	}

	return s.claims, nil
}

func runAuthenticated(m *AuthMiddleware, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = m.Authenticate(next)(c)

	return rec
}

func TestAuthMiddleware_SetsActor(t *testing.T) {
	actorID := uuid.New()
	m := NewAuthMiddleware(&stubTokenService{
		token:  "good-token",
		claims: &service.Claims{ActorID: actorID, Role: service.RoleBuyer},
	})

	var seenActor *deliverycontext.Actor
	rec := runAuthenticated(m, "Bearer good-token", func(c echo.Context) error {
		seenActor = deliverycontext.GetActor(c)

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, seenActor)
	assert.Equal(t, actorID, seenActor.ID)
	assert.Equal(t, service.RoleBuyer, seenActor.Role)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{token: "good-token"})

	rec := runAuthenticated(m, "", func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{token: "good-token"})

	rec := runAuthenticated(m, "Basic dXNlcjpwYXNz", func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{token: "good-token"})

	rec := runAuthenticated(m, "Bearer forged-token", func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetActor(c, &deliverycontext.Actor{ID: uuid.New(), Role: service.RoleSeller})

	called := false
	next := func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	}

	// Matching role passes through
	err := m.RequireRole(service.RoleSeller)(next)(c)
	assert.NoError(t, err)
	assert.True(t, called)

	// Mismatched role is rejected
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	deliverycontext.SetActor(c, &deliverycontext.Actor{ID: uuid.New(), Role: service.RoleBuyer})

	_ = m.RequireRole(service.RoleSeller)(next)(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_NoActor(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = m.RequireRole(service.RoleSeller)(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
