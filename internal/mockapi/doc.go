// Package mockapi is an in-memory implementation of the storefront HTTP
// API, matching its routes, envelopes, and error shapes. It backs the
// end-to-end tests and the local development server; it keeps everything
// in process memory and loses all state on restart.
package mockapi
