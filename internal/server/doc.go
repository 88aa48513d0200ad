// Package server exposes the catalog over HTTP.
//
// HTTP API (all bodies are JSON)
//
//	GET    /api/domains
//	    Return every domain with its categories, questions and options. The
//	    response carries an ETag; a matching If-None-Match yields 304.
//
//	POST   /api/domains                                   {name}
//	GET    /api/domains/{domainId}
//	PUT    /api/domains/{domainId}                        {name}
//	DELETE /api/domains/{domainId}
//
//	POST   /api/domains/{domainId}/categories             {name}
//	PUT    /api/domains/{domainId}/categories/{categoryId} {name}
//	DELETE /api/domains/{domainId}/categories/{categoryId}
//
//	POST   .../categories/{categoryId}/questions          {text, options}
//	PUT    .../questions/{questionId}                     {text, options}
//	DELETE .../questions/{questionId}
//
//	GET    /api/search?q=text
//	    Domains whose name, category names or question texts contain text.
//
//	GET    /api/questions?where=expr
//	    Questions for which the boolean expression holds.
//
//	GET    /api/events
//	    WebSocket feed of change events, one JSON object per message. A
//	    store.reloaded event follows edits made to the store file outside
//	    the API.
//
//	GET    /healthz
//
// Behaviour
//
//   - Creates answer 201 with the new resource, updates 200 with the full
//     resource, deletes 204 with an empty body.
//   - A path segment that does not resolve answers 404 {"error": "<Entity> not
//     found"} for the first missing level. Identifiers that are not integers
//     never resolve.
//   - Updates replace every mutable field; omitted fields are cleared.
//   - A malformed body or filter expression answers 400; store failures 500.
//   - Every request is logged with method, path, remote, status, bytes,
//     duration and request id.
package server
