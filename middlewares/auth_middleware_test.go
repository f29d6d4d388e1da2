package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":        uint(7),
		"role":       role,
		"name":       "Asha Rao",
		"teacher_id": uint(3),
		"exp":        time.Now().Add(ttl).Unix(),
		"iat":        time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func run(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	h := next
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return rec, h(c)
}

func TestRequireAuth(t *testing.T) {
	mw := RequireAuth(testSecret)

	rec, err := run(t, "Bearer "+signToken(t, testSecret, "teacher", time.Hour), mw)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = run(t, "", mw)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)

	_, err = run(t, "Token abc", mw)
	he = err.(*echo.HTTPError)
	assert.Equal(t, http.StatusUnauthorized, he.Code)

	// wrong key
	_, err = run(t, "Bearer "+signToken(t, "other-secret", "teacher", time.Hour), mw)
	he = err.(*echo.HTTPError)
	assert.Equal(t, http.StatusUnauthorized, he.Code)

	// expired
	_, err = run(t, "Bearer "+signToken(t, testSecret, "teacher", -time.Hour), mw)
	he = err.(*echo.HTTPError)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuth_AttachesClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "teacher", time.Hour))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotRole string
	var gotTeacher uint
	h := RequireAuth(testSecret)(func(c echo.Context) error {
		gotRole, _ = c.Get("role").(string)
		gotTeacher, _ = c.Get("teacher_id").(uint)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.Equal(t, "teacher", gotRole)
	assert.EqualValues(t, 3, gotTeacher)
}

func TestRequireRole(t *testing.T) {
	auth := RequireAuth(testSecret)

	rec, err := run(t, "Bearer "+signToken(t, testSecret, "teacher", time.Hour), auth, RequireRole("teacher", "admin"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = run(t, "Bearer "+signToken(t, testSecret, "teacher", time.Hour), auth, RequireRole("admin"))
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
