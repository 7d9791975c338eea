package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the full router serving both the user and book route groups.
func (h *Handler) Init() *chi.Mux {
	router := h.newRouter()

	h.mountUserRoutes(router)
	h.mountBookRoutes(router)

	return router
}

// InitCatalog builds the reduced router serving the book route group only.
// It backs the catalog deployment, which has no user accounts.
func (h *Handler) InitCatalog() *chi.Mux {
	router := h.newRouter()

	h.mountBookRoutes(router)

	return router
}

func (h *Handler) newRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
	}))

	return router
}

func (h *Handler) mountUserRoutes(router chi.Router) {
	router.Route("/user", func(r chi.Router) {
		r.With(requireJSON).Post("/add", h.addUser)
		r.With(requireJSON).Post("/verify", h.verifyUser)
		r.Get("/get", h.getUsers)
		r.Delete("/delete", h.deleteAllUsers)
		r.Delete("/delete/{id}", h.deleteUser)
	})
}

func (h *Handler) mountBookRoutes(router chi.Router) {
	router.Route("/book", func(r chi.Router) {
		r.With(requireJSON).Post("/add", h.addBook)
		r.Get("/get", h.getBooks)
		r.Get("/get/{id}", h.getBook)
		r.Get("/get/title/{title}", h.getBooksByTitle)
		r.Get("/get/author/{author}", h.getBooksByAuthor)
		r.Get("/get/genre/{genre}", h.getBooksByGenre)
		r.With(requireJSON).Put("/update/{id}", h.updateBook)
		r.With(requireJSON).Patch("/update/{id}", h.updateBook)
		r.Delete("/delete/{id}", h.deleteBook)
	})
}
