package routes

import (
	"net/http"

	"blogger/internal/auth"
	"blogger/internal/handlers"
	"blogger/internal/middleware"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Blog     *handlers.BlogHandler
	Category *handlers.CategoryHandler
	Vendor   *handlers.VendorHandler
	Ad       *handlers.AdHandler
}

func InitRoutes(router *mux.Router, h Handlers, verifier auth.Verifier) {
	gate := middleware.RequireToken(verifier)
	gated := func(fn http.HandlerFunc) http.Handler { return gate(fn) }

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	router.HandleFunc("/ping", handlers.Ping).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = router.NotFoundHandler
	api.MethodNotAllowedHandler = router.MethodNotAllowedHandler

	// --- public ---
	api.HandleFunc("/login", h.Auth.Login).Methods("POST")

	api.HandleFunc("/blogs", h.Blog.List).Methods("GET")
	api.HandleFunc("/blogs", h.Blog.Create).Methods("POST")
	api.HandleFunc("/blogs/{id:[0-9]+}", h.Blog.Get).Methods("GET")

	api.HandleFunc("/categories", h.Category.List).Methods("GET")
	api.HandleFunc("/categories", h.Category.Create).Methods("POST")
	api.HandleFunc("/categories/{id:[0-9]+}", h.Category.Update).Methods("PUT")
	api.HandleFunc("/categories/{id:[0-9]+}", h.Category.Delete).Methods("DELETE")

	// --- token gated ---
	api.Handle("/blogs/{id:[0-9]+}", gated(h.Blog.Update)).Methods("PUT")
	api.Handle("/blogs/{id:[0-9]+}", gated(h.Blog.Delete)).Methods("DELETE")

	api.Handle("/vendors", gated(h.Vendor.List)).Methods("GET")
	api.Handle("/vendors", gated(h.Vendor.Create)).Methods("POST")
	api.Handle("/vendors/{id:[0-9]+}", gated(h.Vendor.Get)).Methods("GET")
	api.Handle("/vendors/{id:[0-9]+}", gated(h.Vendor.Update)).Methods("PUT")
	api.Handle("/vendors/{id:[0-9]+}", gated(h.Vendor.Delete)).Methods("DELETE")

	api.Handle("/ads", gated(h.Ad.List)).Methods("GET")
	api.Handle("/ads", gated(h.Ad.SaveAll)).Methods("POST")
	api.Handle("/ads/vendor/{vendorId:[0-9]+}", gated(h.Ad.ListByVendor)).Methods("GET")
	api.Handle("/ads/{id:[0-9]+}", gated(h.Ad.Delete)).Methods("DELETE")
}
