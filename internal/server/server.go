package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"quizadmin/internal/domain"
)

const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to a domain.Catalog.
type Server struct {
	catalog domain.Catalog
	hub     *Hub
	log     *zap.Logger
	mux     *http.ServeMux
	handler http.Handler
}

// New builds the routing table. hub may be nil, in which case the change
// feed is not served.
func New(catalog domain.Catalog, hub *Hub, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		catalog: catalog,
		hub:     hub,
		log:     log,
		mux:     http.NewServeMux(),
	}
	s.setupRoutes()
	s.handler = s.withAccessLog(withCORS(s.mux))
	return s
}

func (s *Server) setupRoutes() {
	const (
		domains    = "/api/domains"
		oneDomain  = domains + "/{domainId}"
		categories = oneDomain + "/categories"
		category   = categories + "/{categoryId}"
		questions  = category + "/questions"
		question   = questions + "/{questionId}"
	)

	s.mux.HandleFunc("GET "+domains, s.handleListDomains)
	s.mux.HandleFunc("GET "+domains+"/{$}", s.handleListDomains)
	s.mux.HandleFunc("POST "+domains, s.handleCreateDomain)
	s.mux.HandleFunc("GET "+oneDomain, s.handleGetDomain)
	s.mux.HandleFunc("PUT "+oneDomain, s.handleUpdateDomain)
	s.mux.HandleFunc("DELETE "+oneDomain, s.handleDeleteDomain)

	s.mux.HandleFunc("POST "+categories, s.handleCreateCategory)
	s.mux.HandleFunc("PUT "+category, s.handleUpdateCategory)
	s.mux.HandleFunc("DELETE "+category, s.handleDeleteCategory)

	s.mux.HandleFunc("POST "+questions, s.handleCreateQuestion)
	s.mux.HandleFunc("PUT "+question, s.handleUpdateQuestion)
	s.mux.HandleFunc("DELETE "+question, s.handleDeleteQuestion)

	s.mux.HandleFunc("GET /api/search", s.handleSearch)
	s.mux.HandleFunc("GET /api/questions", s.handleFilterQuestions)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.hub != nil {
		s.mux.Handle("GET /api/events", s.hub)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if s.hub != nil {
		s.hub.Close()
	}
	err := srv.Shutdown(shutdownCtx)
	if serveErr := <-errCh; serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return err
}
