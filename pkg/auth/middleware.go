package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/pkg/utils"
)

type ContextKey string

const PrincipalKey ContextKey = "principal"

// AuthMiddleware validates the identity provider's bearer token and places the
// resulting principal in the request context. Authorization decisions stay
// with the services; this only establishes who is calling.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		principal := domain.Principal{
			ID:           claims.UserID,
			IsEmployer:   claims.IsEmployer,
			IsFreelancer: claims.IsFreelancer,
		}
		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromContext extracts the authenticated principal set by AuthMiddleware.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(domain.Principal)
	return p, ok
}
