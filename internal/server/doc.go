// Package server provides the HTTP layer: routing, session auth, request
// middleware, and the JSON handlers over the application service. Handlers
// translate domain errors into structured responses; they never expose
// scoring internals beyond the persisted score records.
package server
