package middleware

import (
	"net/http"
	"strings"

	"github.com/xavierca1/agency-site/internal/infra/auth"
)

// TokenVerifier é satisfeito por *auth.TokenManager.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireAdmin barra a request com 401 antes de chegar no handler quando o
// bearer token falta ou é inválido.
func RequireAdmin(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeFailure(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				writeFailure(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
