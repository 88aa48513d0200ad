// Package client talks to the quizadmin HTTP API.
//
// HTTP implements domain.Catalog over the REST endpoints, so callers can swap
// the in-process catalog service for a remote one. Every request takes a
// context for cancellation and deadlines. Non-2xx responses are returned as
// *APIError carrying the method, path, status and the server's error message;
// a 404 also matches domain.ErrNotFound under errors.Is.
//
// Mirror keeps a local copy of the domain tree. It fetches the tree once and
// afterwards applies the server's answer to each of its own mutations instead
// of refetching. A failed call leaves the copy untouched.
//
// Watch follows the server's change feed over a websocket.
package client
