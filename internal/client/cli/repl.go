package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Upload(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	ShowSession(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the read–eval–print loop for the dashboard.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while signed out: help, signup, signin, exit.
// Commands while signed in: (l)ist, search [text], upload, delete [id],
// session, logout, exit.
//
// Errors returned by command handlers are ignored here; handlers surface
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("docuscope %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search [text], upload, delete [id], session, logout, exit")
			} else {
				printlnFn("Available commands: signup, signin, exit")
			}

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "upload":
			_ = a.Upload(ctx)

		case "delete":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Delete(ctx, id)

		case "session", "whoami":
			_ = a.ShowSession(ctx)

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
