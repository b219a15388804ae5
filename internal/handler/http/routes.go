package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/user", func(r chi.Router) {
		// routes without authorization
		r.Post("/register/", h.register)
		r.Post("/login/", h.login)
		r.Post("/token/refresh/", h.refreshToken)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/profile/", h.getProfile)
			r.Patch("/profile/", h.updateProfile)
		})
	})

	router.Route("/habit", func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/habits", func(r chi.Router) {
			r.Post("/", h.createHabit)
			r.Get("/", h.listHabits)
			r.Get("/public/", h.listPublicHabits)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getHabit)
				r.Put("/", h.replaceHabit)
				r.Patch("/", h.patchHabit)
				r.Delete("/", h.deleteHabit)
			})
		})

		r.Route("/pleasant-habits", func(r chi.Router) {
			r.Post("/", h.createPleasantHabit)
			r.Get("/", h.listPleasantHabits)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getPleasantHabit)
				r.Put("/", h.replacePleasantHabit)
				r.Patch("/", h.patchPleasantHabit)
				r.Delete("/", h.deletePleasantHabit)
			})
		})
	})

	return router
}
