package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"SHAREMYTRIP_WEB/internal/config"
	"SHAREMYTRIP_WEB/internal/handlers"
	"SHAREMYTRIP_WEB/internal/layout"
	"SHAREMYTRIP_WEB/internal/middleware"
)

// SetupWebRoutes configures the passenger web routes
func SetupWebRoutes(page *handlers.PassengerPageHandler, healthHandler *handlers.HealthHandler, jwtCfg *config.JWTConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	mountHealth(r, healthHandler)
	r.Handle(layout.StaticPrefix+"*", layout.Static())

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(jwtCfg))
		r.Get(handlers.ProfilePath, page.Show)
		r.Post(handlers.ProfilePath, page.Submit)
	})

	// Root route
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, handlers.ProfilePath, http.StatusFound)
	})

	return r
}

// SetupAPIRoutes configures the reference passenger API routes
func SetupAPIRoutes(api *handlers.PassengerAPIHandler, healthHandler *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	mountHealth(r, healthHandler)

	r.Get("/user/passengers/{id}", api.Get)
	r.Put("/user/passengers/{id}", api.Update)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Root route
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Passenger API is running."))
	})

	return r
}

func mountHealth(r chi.Router, healthHandler *handlers.HealthHandler) {
	r.Get("/healthz", healthHandler.HealthCheck)
	r.Get("/livez", healthHandler.LivenessCheck)
	r.Get("/readyz", healthHandler.ReadinessCheck)
}
