package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambawork38-pro/Cambliss/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *models.JwtCustomClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func invoke(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testSecret)(func(c echo.Context) error { return nil })
	_ = handler(c)
	return c
}

func TestJWTAuth_ExtractsClaims(t *testing.T) {
	token := signToken(t, &models.JwtCustomClaims{
		UserID:   "u1",
		FullName: "User One",
		Avatar:   "https://example.com/u1.png",
	})

	c := invoke("Bearer " + token)

	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "User One", claims.FullName)
}

func TestJWTAuth_MissingTokenProceedsLoggedOut(t *testing.T) {
	c := invoke("")
	assert.Nil(t, c.Get("user"))
}

func TestJWTAuth_GarbageTokenProceedsLoggedOut(t *testing.T) {
	c := invoke("Bearer not.a.token")
	assert.Nil(t, c.Get("user"))
}

func TestJWTAuth_WrongSecretProceedsLoggedOut(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.JwtCustomClaims{UserID: "u1"})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	c := invoke("Bearer " + signed)
	assert.Nil(t, c.Get("user"))
}

func TestJWTAuth_WrongSchemeProceedsLoggedOut(t *testing.T) {
	c := invoke("Basic dXNlcjpwYXNz")
	assert.Nil(t, c.Get("user"))
}
