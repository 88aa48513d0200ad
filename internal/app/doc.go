// Package app wires application dependencies for the server and the CLI.
//
// Config is layered from defaults, a TOML file and QUIZADMIN_* environment
// variables; command-line flags are applied on top by the caller. Wire builds
// the store, catalog service, change feed and HTTP server. App builds the API
// client and mirror used by client commands.
package app
