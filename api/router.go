package api

import (
	"context"
	"fresh-connect/domain"
	"fresh-connect/observability"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Core is the set of operations the client drives.
type Core interface {
	Register(registration domain.Registration) (domain.UserProfile, error)
	CurrentUser() (domain.UserProfile, bool, error)
	Logout() error
	CurrentGroup(userID string) (domain.PeerGroup, bool, error)
	ChangeGroup(userID string) (string, bool, error)
	SendMessage(groupID string, message domain.OutgoingMessage) (domain.ChatMessage, bool, error)
	Listings(ctx context.Context, institution string) domain.Listings
}

type RouterConfig struct {
	Core           Core
	Metrics        *observability.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	Log            *slog.Logger
}

func NewRouter(config RouterConfig) http.Handler {
	h := handlers{core: config.Core, log: config.Log}

	r := chi.NewRouter()
	r.Use(requestID, recoverer(config.Log), latency(config.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	if config.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session", h.register)
		r.Get("/session", h.currentUser)
		r.Delete("/session", h.logout)

		r.Get("/users/{userID}/group", h.currentGroup)
		r.Post("/users/{userID}/group/change", h.changeGroup)

		r.Post("/groups/{groupID}/messages", h.sendMessage)

		r.Get("/listings", h.listings)
	})
	return r
}
