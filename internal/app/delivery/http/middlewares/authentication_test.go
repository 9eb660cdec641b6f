package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookadoc-service/internal/app/config"
	"bookadoc-service/internal/pkg/constvars"
	"bookadoc-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		},
	}
}

func decodeErrorBody(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &payload))
	return payload
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares()

	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(constvars.ContextAuthClaimsKey).(*utils.TokenClaims)
		assert.True(t, ok, "claims should be set in context")
		assert.NotEmpty(t, claims.ID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)

		rr := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		payload := decodeErrorBody(t, rr.Body.Bytes())
		assert.Equal(t, "error", payload["status"])
		assert.Equal(t, "Authentication failed. No token provided.", payload["message"])
	})

	t.Run("Wrong Scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic dXNlcjpwYXNz")

		rr := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		payload := decodeErrorBody(t, rr.Body.Bytes())
		assert.Equal(t, "Authentication failed. No token provided.", payload["message"])
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("64b5f0a2e13e4c0012345678", "jane@example.com", "test-secret", -1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemeBearer+token)

		rr := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		payload := decodeErrorBody(t, rr.Body.Bytes())
		assert.Equal(t, "Token has expired. Please log in again.", payload["message"])
	})

	t.Run("Tampered Token", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("64b5f0a2e13e4c0012345678", "jane@example.com", "another-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemeBearer+token)

		rr := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		payload := decodeErrorBody(t, rr.Body.Bytes())
		assert.Equal(t, "Authentication failed - Invalid token", payload["message"])
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("64b5f0a2e13e4c0012345678", "jane@example.com", "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemeBearer+token)

		rr := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
