// Package cli provides the interactive waste-pickup command-line client.
//
// It wires configuration, the local identity cache, API services, and an
// interactive REPL. Typical flow: restore the cached session, reconfirm it
// against the server, then execute user commands. A first-time account is
// routed through the mandatory profile setup before the main menu.
//
// Key features:
//   - Email one-time-code login / logout
//   - First-time profile completion (name, phone, pickup address)
//   - Booking pickups: create, list, cancel, stats
//   - Address book management
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and the command methods for details.
package cli
