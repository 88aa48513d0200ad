// Package commands defines the quizadmin CLI.
//
// Commands
//
//   - serve                 Serve the catalog API and change feed
//   - tree                  Print the whole catalog
//   - domain add|rename|rm  Manage domains
//   - category add|rename|rm
//   - question add|update|rm
//   - search                Substring search, or --where expression filter
//   - watch                 Stream change events
//   - export                Dump the store file as JSON or YAML
//
// # Implementation
//
// The root command loads configuration (defaults, TOML file, QUIZADMIN_*
// environment, then flags), builds the logger and an API client before any
// subcommand runs. Client commands talk to the server through a Mirror;
// serve and export open the JSON store directly.
package commands
