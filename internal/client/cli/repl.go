package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	CompleteSetup(ctx context.Context) error
	Whoami(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	AddAddress(ctx context.Context) error
	Addresses(ctx context.Context) error
	SetAddress(ctx context.Context) error
	Book(ctx context.Context) error
	Pickups(ctx context.Context) error
	CancelPickup(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the pickup CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help           show available commands
//	  - login          sign in with an emailed one-time code
//	  - exit | quit    leave the program
//
//	Signed in:
//	  - help           show available commands
//	  - whoami         show the current profile
//	  - book           schedule a pickup
//	  - pickups        list bookings
//	  - cancel         cancel a pending booking
//	  - stats          booking history summary
//	  - addaddress     save a new pickup address
//	  - addresses      list saved addresses
//	  - setaddress     switch the current address
//	  - profile        update name or phone
//	  - logout         sign out
//	  - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pickup %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, book, pickups, cancel, stats, addaddress, addresses, setaddress, profile, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "book":
			_ = a.Book(ctx)

		case "pickups":
			_ = a.Pickups(ctx)

		case "cancel":
			_ = a.CancelPickup(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "addaddress":
			_ = a.AddAddress(ctx)

		case "addresses":
			_ = a.Addresses(ctx)

		case "setaddress":
			_ = a.SetAddress(ctx)

		case "profile":
			_ = a.UpdateProfile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
