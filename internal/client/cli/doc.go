// Package cli provides the interactive interview-prep command-line client.
//
// It wires configuration, the local store, the profile API client and the
// view components (identity widget, profile controller, router), then runs a
// REPL until the user exits. A background watcher probes the server and shows
// online/offline in the prompt.
//
// Key features:
//   - Restore the session persisted by a previous run
//   - Show and edit the profile (name, email, avatar image)
//   - Save with image upload followed by the profile update
//   - Navigation menu and logout
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
