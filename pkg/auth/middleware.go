package auth

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"github.com/google/uuid"
)

type ContextKey string

const ClaimsKey ContextKey = "claims"

var ErrForbidden = domain.NewError(domain.ErrAuthorization, "Forbidden")

type TokenVerifier interface {
	VerifyAndDecodeToken(ctx context.Context, token string) (*Claims, error)
}

// AuthMiddleware accepts both "Bearer <token>" and a bare token.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r.Header.Get("Authorization"))
			if token == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := verifier.VerifyAndDecodeToken(r.Context(), token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := FromContext(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if claims.Role != role {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	return claims, ok && claims != nil
}

func UserID(ctx context.Context) uuid.UUID {
	if claims, ok := FromContext(ctx); ok {
		return claims.UserID
	}
	return uuid.Nil
}

func IsAdmin(ctx context.Context) bool {
	claims, ok := FromContext(ctx)
	return ok && claims.Role == domain.RoleAdmin
}

// CanAccess reports whether the caller is userID or an admin.
func CanAccess(ctx context.Context, userID uuid.UUID) bool {
	return IsAdmin(ctx) || UserID(ctx) == userID
}
