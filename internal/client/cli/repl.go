package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddAddress(ctx context.Context, address string) error
	Top(ctx context.Context, limit int) error
	Ping(ctx context.Context) error
}

func needsLogin(cmd string) bool {
	return cmd == "add" || cmd == "top"
}

// runREPL reads command lines from reader until EOF, exit or quit.
// Handler errors are not fatal; handlers report them themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ak (%s)> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if quit := dispatch(ctx, a, parts); quit {
			return
		}
	}
}

// dispatch runs one command line and reports whether the session should end.
func dispatch(ctx context.Context, a execIface, parts []string) bool {
	cmd, args := parts[0], parts[1:]

	if needsLogin(cmd) && !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: add <address>, top [n], ping, logout, exit")
		} else {
			printlnFn("Available commands: signup, login, ping, exit")
		}

	case "signup", "register":
		_ = a.Signup(ctx)

	case "login":
		_ = a.Login(ctx)

	case "logout":
		_ = a.Logout(ctx)

	case "add":
		if len(args) == 0 {
			printlnFn("Usage: add <address>")
			return false
		}
		_ = a.AddAddress(ctx, strings.Join(args, " "))

	case "top":
		limit := 0
		if len(args) > 0 {
			n, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil || n <= 0 {
				printlnFn("Usage: top [n]")
				return false
			}
			limit = int(n)
		}
		_ = a.Top(ctx, limit)

	case "ping":
		_ = a.Ping(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}

	return false
}
