package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tablebook/tablebook/internal/config"
	"github.com/tablebook/tablebook/internal/handlers"
	"github.com/tablebook/tablebook/internal/middleware"
	"github.com/tablebook/tablebook/internal/repo"
)

// newRouter builds the full HTTP surface: public routes, bearer-protected
// routes, and operational endpoints, with the shared middleware chain.
func newRouter(db *sql.DB, cfg config.Config) chi.Router {
	userRepo := repo.NewUserRepo(db)
	restaurantRepo := repo.NewRestaurantRepo(db)
	reservationRepo := repo.NewReservationRepo(db)

	authHandler := &handlers.AuthHandler{
		UserRepo:    userRepo,
		Secret:      []byte(cfg.JWTSecret),
		ExpireHours: cfg.JWTExpireHours,
	}
	profileHandler := &handlers.ProfileHandler{UserRepo: userRepo}
	restaurantHandler := &handlers.RestaurantHandler{Repo: restaurantRepo}
	reservationHandler := &handlers.ReservationHandler{
		Repo:           reservationRepo,
		RestaurantRepo: restaurantRepo,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	// Operational
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			handlers.JSONMessage(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public
	authLimiter := middleware.AuthRateLimiter()
	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})
	r.Get("/restaurants", restaurantHandler.ListRestaurants)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware([]byte(cfg.JWTSecret)))
		r.Get("/profile", profileHandler.GetProfile)
		r.Put("/profile", profileHandler.UpdateProfile)
		r.Post("/restaurants", restaurantHandler.AddRestaurant)
		r.Post("/reservations", reservationHandler.CreateReservation)
		r.Get("/reservations", reservationHandler.ListReservations)
	})

	return r
}
