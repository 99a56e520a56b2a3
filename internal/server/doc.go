// Package server exposes the engine over HTTP: health, bulk ingestion
// (init replaces the store, append extends it) and querying. All
// responses are JSON with permissive CORS headers so browser frontends
// can call the API directly.
package server
