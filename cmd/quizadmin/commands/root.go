package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quizadmin/internal/app"
	"quizadmin/internal/logging"
)

var (
	configPath string
	apiURL     string
	storePath  string
	logLevel   string

	cfg    app.Config
	logger *zap.Logger
	appCtx *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "quizadmin",
		Short:        "Manage the domain, category and question catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.Load(configPath)
			if err != nil {
				return err
			}

			// Flags win over file and environment.
			flags := cmd.Flags()
			if flags.Changed("api") {
				cfg.Client.BaseURL = apiURL
			}
			if flags.Changed("store") {
				cfg.Store.Path = storePath
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}

			logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Development)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", app.DefaultConfigFile, "TOML config file")
	pf.StringVar(&apiURL, "api", "", "API base URL (default http://localhost:3001/api)")
	pf.StringVar(&storePath, "store", "", "path of the JSON store (default db.json)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		serveCmd(),
		treeCmd(),
		domainCmd(),
		categoryCmd(),
		questionCmd(),
		searchCmd(),
		watchCmd(),
		exportCmd(),
	)
	return root
}
