package rest

import (
	"net/http"
	"quizbank/internal/cache"
	"quizbank/internal/config"
	"quizbank/internal/service"
	"quizbank/internal/transport/rest/handler"
	"quizbank/internal/transport/rest/middleware"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Container holds all dependencies for the router
type Container struct {
	QuestionService    *service.QuestionService
	ChatService        *service.ChatService
	Endpoints          []config.EndpointProfile
	APIKey             string
	Quota              cache.QuotaCache // nil disables the request quota
	RateLimitPerMinute int
	CORSAllowedOrigins []string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	// Initialize middleware
	gate := middleware.NewAPIKeyGate(c.APIKey)
	var limiter *middleware.QuotaLimiter
	if c.Quota != nil && c.RateLimitPerMinute > 0 {
		limiter = middleware.NewQuotaLimiter(c.Quota, c.RateLimitPerMinute)
	}
	protect := func(h http.Handler, requireKey bool) http.Handler {
		if limiter != nil {
			h = limiter.Limit(h)
		}
		if requireKey {
			h = gate.Require(h)
		}
		return h
	}

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	for _, profile := range c.Endpoints {
		questionHandler := handler.NewQuestionHandler(c.QuestionService, profile)
		v1.Handle("/"+profile.Name, protect(http.HandlerFunc(questionHandler.Get), profile.RequireAPIKey)).Methods("GET", "POST")
	}

	chatHandler := handler.NewChatHandler(c.ChatService)
	v1.Handle("/chat", protect(http.HandlerFunc(chatHandler.Reply), true)).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// mux skips Use middleware for these, so they are measured explicitly
	r.NotFoundHandler = middleware.Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	}))
	r.MethodNotAllowedHandler = middleware.Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	}))

	// CORS and preflight wrap the whole router so OPTIONS never reaches auth
	var h http.Handler = middleware.Preflight(r)
	h = corsMiddleware(c.CORSAllowedOrigins)(h)
	return middleware.RequestID(h)
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"Content-Type", "X-Api-Key", "Origin", "Authorization"},
		ExposedHeaders:     []string{middleware.RequestIDHeader},
		AllowCredentials:   false,
		MaxAge:             300,
		OptionsPassthrough: true,
	})
}
