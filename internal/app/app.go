package app

import (
	"net/http"

	"go.uber.org/zap"

	"quizadmin/internal/client"
)

// App is the client-side context shared by CLI commands.
type App struct {
	Config Config
	Log    *zap.Logger
	API    *client.HTTP
	Mirror *client.Mirror
}

// New builds the API client and an empty mirror over it.
func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	api := client.NewHTTP(cfg.Client.BaseURL, httpClient)
	return &App{
		Config: cfg,
		Log:    log,
		API:    api,
		Mirror: client.NewMirror(api),
	}
}
