package devserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Post("/register", h.register)
	router.Post("/download", h.download)

	router.Route("/dev", func(r chi.Router) {
		r.Post("/notes", h.deliver)
	})

	return router
}
