// Package controller contains gin middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - CORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - AccessLog: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
