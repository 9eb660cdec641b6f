package middlewares

import (
	"context"
	"net/http"
	"strings"

	"bookadoc-service/internal/pkg/constvars"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"
)

// Authenticate guards a route with bearer token auth. Requests without an
// Authorization header using the Bearer scheme are rejected before the token
// is even parsed.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constvars.AuthSchemeBearer) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing())
			return
		}

		tokenString := strings.TrimPrefix(header, constvars.AuthSchemeBearer)
		claims, err := utils.ParseAuthJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextAuthClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
