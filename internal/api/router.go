package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/MartnzGO/Adattarhaz/internal/api/handlers"
	"github.com/MartnzGO/Adattarhaz/pkg/config"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reports *handlers.ReportHandler, forecasts *handlers.ForecastHandler, hub *Hub, cfg *config.Config, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	r.HandleFunc("/ws", hub.Serve).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/reports", reports.List).Methods("GET")
	api.HandleFunc("/reports/{name}", reports.Run).Methods("GET")
	api.HandleFunc("/forecast", forecasts.Run).Methods("POST")

	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	api.Use(rateLimitMiddleware(cfg.RateLimit))

	return r
}

// healthCheckHandler returns server health status.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "adattarhaz-api",
	})
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics.
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal server error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitMiddleware bounds request throughput across all API clients.
// Report runs hit the warehouse with a fresh connection each time, so the
// surface is cheap to flood without this.
func rateLimitMiddleware(cfg config.RateLimitConfig) mux.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.PerSecond), cfg.Burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "rate limit exceeded",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
