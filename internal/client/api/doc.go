// Package api contains the gateway to the pickup backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     one-time-code auth (RequestCode/VerifyCode/CurrentIdentity/
//     EndSession), profile and address management, and booking CRUD.
//  2. A concrete HTTP implementation (see HTTPClient) that funnels all
//     operations through one request path: ambient session cookie via a
//     jar, JSON bodies, per-request ids, a hard round-trip timeout, and
//     error-body parsing so server messages survive to the caller.
//
// # Error Handling
//
// Implementations never panic and never surface raw transport faults.
// Two sentinel conditions are matchable with errors.Is:
//
//   - ErrUnavailable — network failure, timeout, unreadable response
//   - ErrUnauthorized — 401/403, i.e. the ambient session is not valid
//
// Any other non-2xx response yields an error whose message is the
// server's "error" field verbatim (or an HTTP-status fallback), so forms
// can display it unchanged.
package api
