// Package api is the HTTP adapter for the PromptVault backend: a fixed
// base endpoint, JSON round trips, a bearer credential resolved at send
// time, and a structured error taxonomy (ErrUnavailable for transport
// failures, ServerError for non-2xx responses). It never retries and
// never interprets auth failures; that policy belongs to the session
// store.
package api
