package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)

		r.Get("/api/books", h.listBooks)
		r.Get("/api/books/{id}", h.getBook)
		r.Get("/api/authors/{id}/books", h.listBooksByAuthor)
		r.Get("/api/publishers/{id}/books", h.listBooksByPublisher)

		r.Get("/api/search/books", h.searchBooks)
		r.Get("/api/search/authors", h.searchAuthors)
		r.Get("/api/search/publishers", h.searchPublishers)
	})

	// catalog writes, admin role required
	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)
		r.Post("/api/authors", h.createAuthor)
		r.Post("/api/publishers", h.createPublisher)
		r.Post("/api/books", h.createBook)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
