package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Chiggy-Playz/Todo-API/internal/auth"
	"github.com/Chiggy-Playz/Todo-API/internal/cache"
	"github.com/Chiggy-Playz/Todo-API/internal/metrics"
	"github.com/Chiggy-Playz/Todo-API/internal/repository"
)

// APIKeyHeader is the designated credential header.
const APIKeyHeader = "X-API-Key"

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger     *slog.Logger
	Repository *repository.Repository
	Cache      *cache.Cache
	Metrics    metrics.Recorder
}

// Auth returns a middleware that resolves the caller's API key to a user.
// The resolved user is injected into the request context; requests with a
// missing or unknown key are rejected with 401 before any task operation
// runs. All rejections share one generic message.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := extractAPIKey(r)
			if key == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_key"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthRejected()
				writeAuthError(w)
				return
			}

			// Check cache first; raw keys never appear in Redis.
			cacheKey := auth.CacheKey(key)
			user, _ := cfg.Cache.GetUser(r.Context(), cacheKey)

			if user != nil {
				recorder.IncAuthCacheHit()
				ctx := auth.ContextWithUser(r.Context(), user)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			recorder.IncAuthCacheMiss()

			user, err := cfg.Repository.GetUserByAPIKey(r.Context(), key)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					cfg.Logger.Warn("authentication failed",
						slog.String("reason", "unknown_key"),
						slog.String("endpoint", r.Method+" "+r.URL.Path),
						slog.String("request_id", GetRequestID(r.Context())),
					)
				} else {
					cfg.Logger.Error("database error during auth",
						slog.String("error", err.Error()),
						slog.String("request_id", GetRequestID(r.Context())),
					)
				}
				recorder.IncAuthRejected()
				writeAuthError(w)
				return
			}

			// Cache the resolved identity for subsequent requests.
			_ = cfg.Cache.SetUser(r.Context(), cacheKey, user)

			cfg.Logger.Info("authentication successful",
				slog.Int64("user_id", user.ID),
				slog.String("endpoint", r.Method+" "+r.URL.Path),
				slog.String("request_id", GetRequestID(r.Context())),
			)

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractAPIKey extracts the API key from the request.
// The designated header is X-API-Key; "Authorization: Bearer <key>" is
// accepted as an alias.
func extractAPIKey(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or missing API key","code":"UNAUTHORIZED"}`))
}
