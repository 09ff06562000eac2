package server

import (
	"net/http"

	"github.com/embedviz/embedviz/config"
	"github.com/embedviz/embedviz/pkg/auth"
	"github.com/embedviz/embedviz/pkg/models"
)

const versionHeader = "X-Embedviz-Version"

// anonymousUser is the rate-limit identity used when a request carries no
// subject claim.
const anonymousUser = "anonymous"

// SendVersion is a middleware that adds the current version to the response
func SendVersion(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get(versionHeader) == "" {
			w.Header().Add(
				versionHeader,
				config.VersionString,
			)
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

// RateLimit enforces the per-user fixed-window request limit. Requests over
// budget receive a 429 with a Retry-After covering the rest of the window.
// A failing rate counter admits the request.
func RateLimit(appState *models.AppState) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := auth.SubjectFromContext(r.Context())
			if userID == "" {
				userID = anonymousUser
			}

			allowed, count := appState.Cache.CheckAndIncrementRate(
				r.Context(), userID, r.URL.Path,
			)
			if !allowed {
				log.Warnf("rate limit exceeded for %s on %s (%d requests)",
					userID, r.URL.Path, count)
				w.Header().Set("Retry-After", "60")
				renderError(w, models.NewRateLimitError(count), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// TrackUsage emits one analytics event per authenticated request.
func TrackUsage(appState *models.AppState) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := auth.SubjectFromContext(r.Context()); userID != "" {
				appState.Analytics.Capture(userID, "api_request", map[string]any{
					"endpoint": r.URL.Path,
					"method":   r.Method,
				})
			}
			next.ServeHTTP(w, r)
		})
	}
}
