package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/y2k-space/backend/internal/models"
)

const testSecret = "test-secret"

func runWith(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, *models.JwtCustomClaims, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *models.JwtCustomClaims
	err := mw(func(c echo.Context) error {
		seen, _ = c.Get(UserContextKey).(*models.JwtCustomClaims)
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, seen, err
}

func TestJWTAuthMiddleware(t *testing.T) {
	user := &models.User{ID: 42, Username: "neo", Role: models.RoleUser}
	valid, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(user, testSecret, -time.Hour)
	require.NoError(t, err)
	forged, err := GenerateToken(user, "other-secret", time.Hour)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		_, claims, err := runWith(JWTAuthMiddleware(testSecret), "Bearer "+valid)
		require.NoError(t, err)
		require.NotNil(t, claims)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "neo", claims.Username)
	})

	rejected := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic " + valid,
		"expired":        "Bearer " + expired,
		"bad signature":  "Bearer " + forged,
		"garbage":        "Bearer not.a.token",
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			_, claims, err := runWith(JWTAuthMiddleware(testSecret), header)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
			assert.Nil(t, claims)
		})
	}
}

func TestOptionalJWTMiddleware(t *testing.T) {
	valid, err := GenerateToken(&models.User{ID: 7}, testSecret, time.Hour)
	require.NoError(t, err)

	_, claims, err := runWith(OptionalJWTMiddleware(testSecret), "Bearer "+valid)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, uint(7), claims.UserID)

	rec, claims, err := runWith(OptionalJWTMiddleware(testSecret), "Bearer broken")
	require.NoError(t, err)
	assert.Nil(t, claims)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, claims, err = runWith(OptionalJWTMiddleware(testSecret), "")
	require.NoError(t, err)
	assert.Nil(t, claims)
}
