package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/interviewprep/internal/client/ui"
)

func (a *App) getStatus() string {
	var parts []string
	if id, ok := a.identity.Current(); ok && id.Name != "" {
		parts = append(parts, id.Name)
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root restores the session, mounts the navbar widget, starts the
// connectivity watcher and blocks in the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to the interview-prep CLI (type 'help' for commands)")

	if a.session.Restore(ctx) {
		a.log.Info(ctx, "session restored")
	}

	cancelNav := a.router.OnNavigate(func(from, to string) { a.onNavigate(ctx, from, to) })
	defer cancelNav()

	a.widget.Mount()
	a.checkOnline(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.renderWidget()
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// onNavigate mounts the profile controller while the profile route is
// active and unmounts it when leaving.
func (a *App) onNavigate(ctx context.Context, from, to string) {
	if from == ui.RouteProfile && to != ui.RouteProfile {
		a.profile.Unmount()
	}

	switch to {
	case ui.RouteProfile:
		// A failed fetch is already logged and reflected in the view.
		_ = a.profile.Mount(ctx)
		a.renderProfile()
	case ui.RouteLanding:
		fmt.Fprintln(a.out, "You are signed out.")
	default:
		fmt.Fprintf(a.out, "[%s]\n", to)
	}
}
