package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/mubadara/internal/auth"
	"github.com/dangerclosesec/mubadara/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries everything the HTTP surface is assembled from.
type RouterConfig struct {
	Logger         *slog.Logger
	Tokens         *auth.TokenManager
	Actors         middleware.ActorResolver
	CORSOrigins    []string
	RequestTimeout time.Duration
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler

	Auth          *AuthHandler
	Organizations *OrganizationHandler
	Initiatives   *InitiativeHandler
	Participants  *ParticipantHandler
	Posts         *PostHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	optionalAuth := middleware.AuthMiddleware(cfg.Tokens, cfg.Actors, false)
	requireAuth := middleware.AuthMiddleware(cfg.Tokens, cfg.Actors, true)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json", "multipart/form-data"))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.Auth.SignupHandler)
			r.Post("/login", cfg.Auth.LoginHandler)
			r.With(requireAuth).Get("/me", cfg.Auth.MeHandler)
		})

		// Browsing works anonymously; a token only widens what is visible.
		r.Route("/organizations", func(r chi.Router) {
			r.With(requireAuth).Post("/", cfg.Organizations.Create)
			r.With(requireAuth).Get("/mine", cfg.Organizations.Mine)

			r.Route("/{organizationID}", func(r chi.Router) {
				r.With(optionalAuth).Get("/", cfg.Organizations.Get)

				r.Group(func(r chi.Router) {
					r.Use(requireAuth)

					r.Get("/members", cfg.Organizations.Members)
					r.Post("/members", cfg.Organizations.AddMember)
					r.Post("/approve", cfg.Organizations.Approve)
					r.Post("/reject", cfg.Organizations.Reject)
					r.Get("/transitions", cfg.Organizations.Transitions)
					r.Get("/history", cfg.Organizations.History)
				})
			})
		})

		r.Route("/initiatives", func(r chi.Router) {
			r.With(optionalAuth).Get("/", cfg.Initiatives.ListPublic)
			r.With(requireAuth).Post("/", cfg.Initiatives.Create)

			r.Route("/{initiativeID}", func(r chi.Router) {
				r.With(optionalAuth).Get("/", cfg.Initiatives.Get)
				r.With(optionalAuth).Get("/posts", cfg.Posts.List)

				r.Group(func(r chi.Router) {
					r.Use(requireAuth)

					r.Put("/", cfg.Initiatives.Update)
					r.Post("/publish", cfg.Initiatives.Publish)
					r.Post("/cancel", cfg.Initiatives.Cancel)
					r.Get("/transitions", cfg.Initiatives.Transitions)
					r.Get("/history", cfg.Initiatives.History)

					r.Get("/participants", cfg.Participants.List)
					r.Post("/participants", cfg.Participants.Join)
					r.Delete("/participants/me", cfg.Participants.Leave)

					r.Post("/posts", cfg.Posts.Create)
				})
			})
		})

		r.Route("/posts/{postID}", func(r chi.Router) {
			r.With(optionalAuth).Get("/", cfg.Posts.Get)
			r.With(requireAuth).Delete("/", cfg.Posts.Delete)
			r.With(requireAuth).Post("/attachments", cfg.Posts.AddAttachments)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/participants/{participantID}", func(r chi.Router) {
				r.Post("/accept", cfg.Participants.Accept)
				r.Post("/reject", cfg.Participants.Reject)
				r.Post("/remove", cfg.Participants.Remove)
			})

			r.Delete("/attachments/{attachmentID}", cfg.Posts.RemoveAttachment)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/organizations", cfg.Organizations.List)
				r.Get("/initiatives", cfg.Initiatives.ListAdmin)
			})
		})
	})

	return r
}
