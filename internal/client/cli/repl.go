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
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	SetName(ctx context.Context, value string) error
	SetEmail(ctx context.Context, value string) error
	SelectImage(ctx context.Context, path string) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Refresh(ctx context.Context) error
	Menu(ctx context.Context) error
	Click(ctx context.Context, target string) error
	Go(ctx context.Context, route string) error
	ImportToken(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpSignedIn  = "Available commands: profile, edit, name <text>, email <text>, image <path>, save, cancel, refresh, menu, click <target>, go <dashboard|profile|settings>, token, logout, exit"
	helpSignedOut = "Available commands: token, profile, refresh, go <dashboard|profile|settings>, exit"
)

// runREPL starts a simple read–eval–print loop for the interview-prep CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The rest of the line is passed
// verbatim as the argument, so "name Ada Lovelace" sets the full name.
// Errors returned by handlers are turned into a user-facing line by
// describe. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
//	help                    — show available commands
//	profile                 — open and show the profile page
//	edit                    — start editing the profile
//	name <text>             — change the name in the draft
//	email <text>            — change the email in the draft
//	image <path>            — pick a local image as the new avatar
//	save                    — upload the image (if any), then save the profile
//	cancel                  — discard the draft
//	refresh                 — retry loading the profile
//	menu                    — toggle the user menu
//	click <target>          — simulate a click on a screen region
//	go <route>              — navigate
//	token                   — paste a bearer token (hidden input)
//	logout                  — sign out and wipe local data
//	exit | quit             — leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("prep %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "profile":
			err = a.Profile(ctx)

		case "edit":
			err = a.Edit(ctx)

		case "name":
			err = a.SetName(ctx, arg)

		case "email":
			err = a.SetEmail(ctx, arg)

		case "image":
			if arg == "" {
				printlnFn("Usage: image <path>")
				continue
			}
			err = a.SelectImage(ctx, arg)

		case "save":
			err = a.Save(ctx)

		case "cancel":
			err = a.Cancel(ctx)

		case "refresh":
			err = a.Refresh(ctx)

		case "menu":
			err = a.Menu(ctx)

		case "click":
			if arg == "" {
				printlnFn("Usage: click <target>")
				continue
			}
			err = a.Click(ctx, arg)

		case "go":
			if arg == "" {
				printlnFn("Usage: go <dashboard|profile|settings>")
				continue
			}
			err = a.Go(ctx, arg)

		case "token":
			err = a.ImportToken(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(describe(err))
		}
	}
}
