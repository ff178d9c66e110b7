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
	Resume(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	SetBiometric(ctx context.Context, enabled bool) error
}

// runREPL starts a simple read–eval–print loop for the fingerauth client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - login            — authenticate with email and password
//	  - resume           — resume the stored session via biometrics
//	  - biometric on|off — toggle the biometric-resume preference
//	  - status           — show the current session state
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - status           — show the current session state
//	  - logout           — end the session
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("fa> ")
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
				printlnFn("Available commands: status, logout, exit")
			} else {
				printlnFn("Available commands: login, resume, biometric on|off, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "resume":
			_ = a.Resume(ctx)

		case "biometric":
			if len(parts) != 2 || (parts[1] != "on" && parts[1] != "off") {
				printlnFn("Usage: biometric on|off")
				continue
			}
			_ = a.SetBiometric(ctx, parts[1] == "on")

		case "status":
			_ = a.Status(ctx)

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
