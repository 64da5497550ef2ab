// Package server exposes the registry entry points over plain HTTP
// for local runs and deployments without a function platform.
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/subscriber"
)

// SubscriberStore is the registry the routes delegate to.
type SubscriberStore interface {
	Create(email string)
	All() []subscriber.Subscriber
}

// Server holds the HTTP binding state.
type Server struct {
	store SubscriberStore
}

// New creates a Server backed by store.
func New(store SubscriberStore) *Server {
	return &Server{store: store}
}

// Router builds the chi router with the create and findAll routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))

	r.Post("/subscribers", s.handleCreate)
	r.Get("/subscribers", s.handleFindAll)

	return r
}

// handleCreate registers the request body verbatim as a subscriber
// email. The email is not validated; an empty body creates a record
// with an empty email.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "could not read request body", http.StatusBadRequest)
		return
	}

	s.store.Create(string(body))
	log.Infof("created subscriber for %q", string(body))
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleFindAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.store.All()); err != nil {
		log.Errorf("error writing subscriber list: %v", err)
	}
}
