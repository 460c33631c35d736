package routes

import (
	"net/http"
	"time"

	"github.com/mediguide/backend/internal/api/handlers"
	"github.com/mediguide/backend/internal/api/middleware"
	"github.com/mediguide/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	hospitalHandler  *handlers.HospitalHandler
	procedureHandler *handlers.ProcedureHandler
	chatHandler      *handlers.ChatHandler
	sseHandler       *handlers.SSEHandler

	cacheMiddleware *middleware.CacheMiddleware
	rateLimiter     *middleware.IPRateLimiter
	metrics         *observability.Metrics
	env             string
	version         string
}

// NewRouter creates a new router
func NewRouter(
	hospitalHandler *handlers.HospitalHandler,
	procedureHandler *handlers.ProcedureHandler,
	chatHandler *handlers.ChatHandler,
	sseHandler *handlers.SSEHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	rateLimiter *middleware.IPRateLimiter,
	metrics *observability.Metrics,
	env, version string,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		hospitalHandler:  hospitalHandler,
		procedureHandler: procedureHandler,
		chatHandler:      chatHandler,
		sseHandler:       sseHandler,
		cacheMiddleware:  cacheMiddleware,
		rateLimiter:      rateLimiter,
		metrics:          metrics,
		env:              env,
		version:          version,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"OK","message":"MediGuide API is running","timestamp":"` +
			time.Now().UTC().Format(time.RFC3339) + `","version":"` + r.version + `"}`))
	})

	// Hospital endpoints. The search routes are registered explicitly so
	// they are not swallowed by the {id} pattern.
	r.mux.HandleFunc("GET /api/hospitals", r.hospitalHandler.ListHospitals)
	r.mux.HandleFunc("GET /api/hospitals/search/specialties", r.hospitalHandler.SearchSpecialties)
	r.mux.HandleFunc("GET /api/hospitals/search/locations", r.hospitalHandler.SearchLocations)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)
	r.mux.HandleFunc("GET /api/hospitals/{id}/doctors", r.hospitalHandler.GetHospitalDoctors)
	r.mux.HandleFunc("GET /api/hospitals/{id}/nearby", r.hospitalHandler.GetNearbyPlaces)

	// Procedure endpoints
	r.mux.HandleFunc("GET /api/procedures", r.procedureHandler.ListProcedures)
	r.mux.HandleFunc("GET /api/procedures/{id}", r.procedureHandler.GetProcedure)

	// Assistant endpoints
	r.mux.HandleFunc("POST /api/hospitals/{id}/chat", r.chatHandler.SendMessage)
	r.mux.HandleFunc("GET /api/hospitals/{id}/chat/suggestions", r.chatHandler.GetSuggestions)
	r.mux.HandleFunc("GET /api/notifications/stream", r.sseHandler.StreamNotifications)

	// JSON 404 for everything else
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not Found","message":"Route not found"}`))
	})

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.CompressionMiddleware(handler)

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	if r.rateLimiter != nil {
		handler = r.rateLimiter.Middleware(handler)
	}

	handler = middleware.RecoveryMiddleware(r.env)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
