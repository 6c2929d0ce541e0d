package server

import (
	"net/http"
	"strings"
)

// setupRoutes registers all API routes. Collection endpoints are
// registered both bare and with a trailing slash so that list, facet,
// and slug lookups share a handler pair.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// System endpoints
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)

	// Content endpoints
	mux.HandleFunc("/api/products", s.app.ProductsHandler.ListHandler)
	mux.HandleFunc("/api/products/", s.app.ProductsHandler.ItemHandler)
	mux.HandleFunc("/api/projects", s.app.ProjectsHandler.ListHandler)
	mux.HandleFunc("/api/projects/", s.app.ProjectsHandler.ItemHandler)
	mux.HandleFunc("/api/events", s.app.EventsHandler.ListHandler)
	mux.HandleFunc("/api/events/", s.app.EventsHandler.ItemHandler)
	mux.HandleFunc("/api/posts", s.app.PostsHandler.ListHandler)
	mux.HandleFunc("/api/posts/", s.app.PostsHandler.ItemHandler)
	mux.HandleFunc("/api/resources", s.app.ResourcesHandler.ListHandler)
	mux.HandleFunc("/api/resources/", s.app.ResourcesHandler.ItemHandler)

	// Search endpoint
	mux.HandleFunc("/api/search", s.app.SearchHandler.SearchHandler)

	// Form submission endpoints, behind the per-IP rate limiter
	mux.HandleFunc("/api/leads/contact", s.limiter.wrap(s.app.LeadsHandler.ContactHandler))
	mux.HandleFunc("/api/leads/quote", s.limiter.wrap(s.app.LeadsHandler.QuoteHandler))
	mux.HandleFunc("/api/leads/newsletter", s.limiter.wrap(s.app.LeadsHandler.NewsletterHandler))

	// Everything else under /api is a JSON 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			s.app.APIHandler.NotFoundHandler(w, r)
			return
		}
		http.NotFound(w, r)
	})

	return mux
}
