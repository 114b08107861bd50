// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/auth"
	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type actorContextKey struct{}

// ActorResolver turns an authenticated user id into the request identity.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID uuid.UUID) (workflow.Actor, error)
}

// WithActor stores actor in ctx.
func WithActor(ctx context.Context, actor workflow.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFrom returns the actor of the request. Anonymous requests get the
// zero Actor, which holds no role on any entity.
func ActorFrom(ctx context.Context) workflow.Actor {
	actor, _ := ctx.Value(actorContextKey{}).(workflow.Actor)
	return actor
}

// AuthMiddleware validates the bearer token and resolves the actor once per
// request. With required set, requests without a valid token are refused;
// otherwise they continue anonymously.
func AuthMiddleware(tokenManager *auth.TokenManager, resolver ActorResolver, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if required {
					respondWithError(w, http.StatusUnauthorized, "missing_token", "يجب تسجيل الدخول")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				respondWithError(w, http.StatusUnauthorized, "invalid_token", "رمز الدخول غير صالح")
				return
			}

			claims, err := tokenManager.Validate(token)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "invalid_token", "رمز الدخول غير صالح")
				return
			}

			userID, err := claims.UserUUID()
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "invalid_token", "رمز الدخول غير صالح")
				return
			}

			actor, err := resolver.ResolveActor(r.Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					respondWithError(w, http.StatusUnauthorized, "invalid_token", "رمز الدخول غير صالح")
					return
				}
				slog.ErrorContext(r.Context(), "resolving actor", "error", err, "requestID", chimw.GetReqID(r.Context()))
				respondWithError(w, http.StatusServiceUnavailable, "persistence", "تعذر الوصول إلى البيانات، حاول مرة أخرى")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, status int, code, message string) {
	respondWithJSON(w, status, map[string]any{"ok": false, "error": message, "error_code": code})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
