package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quizadmin/internal/domain"
	"quizadmin/internal/ids"
	"quizadmin/internal/server"
	"quizadmin/internal/services/catalog"
	"quizadmin/internal/store"
)

// Wire bundles the store, services and HTTP surface of the API server.
type Wire struct {
	Config  Config
	Log     *zap.Logger
	Store   *store.TreeFileStore
	Hub     *server.Hub
	Catalog *catalog.Service
	Server  *server.Server
}

// NewWire constructs the server dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) *Wire {
	if log == nil {
		log = zap.NewNop()
	}
	treeStore := store.NewTreeFileStore(cfg.Store.Path)
	hub := server.NewHub(log.Named("events"))
	svc := catalog.New(treeStore, ids.NewMonotonic(), hub)

	return &Wire{
		Config:  cfg,
		Log:     log,
		Store:   treeStore,
		Hub:     hub,
		Catalog: svc,
		Server:  server.New(svc, hub, log.Named("http")),
	}
}

// Serve checks that the store is readable, then serves the API on
// cfg.Server.Addr until ctx is cancelled. With cfg.Store.Watch set it also
// broadcasts edits made to the store file by other processes.
func (w *Wire) Serve(ctx context.Context) error {
	doc, err := w.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	w.Log.Info("store loaded",
		zap.String("path", w.Store.Path()),
		zap.Int("domains", len(doc.Domains)),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Server.Run(ctx, w.Config.Server.Addr)
	})
	if w.Config.Store.Watch {
		g.Go(func() error {
			return w.Store.Watch(ctx, w.storeChanged)
		})
	}
	return g.Wait()
}

func (w *Wire) storeChanged(doc domain.Document, err error) {
	path := zap.String("path", w.Store.Path())
	if err != nil {
		w.Log.Error("cannot reload store", path, zap.Error(err))
		return
	}
	w.Log.Info("store changed on disk", path, zap.Int("domains", len(doc.Domains)))
	w.Hub.Publish(domain.Event{Type: domain.StoreReloaded, At: time.Now().UnixMilli()})
}
