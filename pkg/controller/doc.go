// Package controller contains HTTP middlewares and small handlers shared by
// the skillmatch servers.
//
// Middlewares:
//   - WithCORS: CORS headers for the form and JSON API, short-circuits preflight.
//   - WithLogger: request id, request-scoped logger and an access log line.
//   - WithRecover: turns handler panics into a logged 500.
//   - WithMaxBytes: caps request bodies.
//
// Handlers:
//   - PprofMux: net/http/pprof handlers.
//   - Healthz: liveness probe.
package controller
