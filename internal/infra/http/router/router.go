package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/infra/http/handlers"
	"github.com/xavierca1/agency-site/internal/infra/http/middleware"
	"github.com/xavierca1/agency-site/internal/infra/metrics"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Contact    *handlers.ContactHandler
	Newsletter *handlers.NewsletterHandler
	Services   *handlers.ServiceHandler
	Team       *handlers.TeamHandler
	Content    *handlers.ContentHandler
	Dashboard  *handlers.DashboardHandler
	Store      *handlers.StoreHandler
}

type Options struct {
	CORSOrigins  []string
	RequireAdmin func(http.Handler) http.Handler
	RateLimiter  *middleware.RateLimiter
	LoginLimiter *middleware.RateLimiter
	Logger       logrus.FieldLogger
}

func New(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	limit := limitWith(opts.RateLimiter)
	loginLimit := limitWith(opts.LoginLimiter)
	admin := opts.RequireAdmin

	r.Route("/api", func(r chi.Router) {
		// Público
		r.With(limit).Post("/contact", h.Contact.Submit)
		r.With(limit).Post("/newsletter", h.Newsletter.Subscribe)
		r.Get("/newsletter", h.Newsletter.Get)
		r.Get("/services", h.Services.ListPublic)
		r.Get("/team", h.Team.ListPublic)
		r.Get("/content/{section}", h.Content.BySection)

		// Admin nas rotas públicas
		r.With(admin).Get("/contact", h.Contact.List)
		r.With(admin).Patch("/contact", h.Contact.UpdateStatus)
		r.With(admin).Delete("/contact", h.Contact.Delete)

		r.Route("/admin", func(r chi.Router) {
			r.With(loginLimit).Post("/auth/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(admin)

				r.Get("/auth/me", h.Auth.Me)
				r.Get("/dashboard", h.Dashboard.Handle)

				r.Get("/services", h.Services.ListAll)
				r.Post("/services", h.Services.Create)
				r.Get("/services/{id}", h.Services.Get)
				r.Patch("/services/{id}", h.Services.Update)
				r.Delete("/services/{id}", h.Services.Delete)

				r.Get("/team", h.Team.ListAll)
				r.Post("/team", h.Team.Create)
				r.Patch("/team/{id}", h.Team.Update)
				r.Delete("/team/{id}", h.Team.Delete)

				r.Get("/content", h.Content.List)
				r.Post("/content", h.Content.Create)
				r.Patch("/content/{id}", h.Content.Update)
				r.Delete("/content/{id}", h.Content.Delete)

				r.Get("/store", h.Store.Status)
				r.Post("/store/reset", h.Store.Reset)
			})
		})
	})

	return r
}

func limitWith(rl *middleware.RateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Middleware
}
