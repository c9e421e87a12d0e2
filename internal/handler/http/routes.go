package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.createUser)
		r.Post("/users/authenticate", h.authenticate)

		r.Get("/products", h.indexProducts)
		r.Get("/products/{productId}", h.showProduct)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.indexUsers)
		r.Get("/users/{userId}", h.showUser)

		r.Post("/products", h.createProduct)

		r.Post("/orders", h.createOrder)
		r.Get("/orders/{orderId}", h.showOrder)
		r.Delete("/orders/{orderId}", h.deleteOrder)

		r.Get("/users/{userId}/orders", h.showUserOrders)
	})

	return router
}
