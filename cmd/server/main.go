package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/interviewprep/internal/logging"
	"github.com/dmitrijs2005/interviewprep/internal/server"
	"github.com/dmitrijs2005/interviewprep/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "server start failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if len(os.Args) > 1 && os.Args[1] == "provision" {
		if err := provision(ctx, app, os.Args[2:]); err != nil {
			logger.Error(ctx, "provision failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped with error", "error", err)
		os.Exit(1)
	}

}

// provision handles `server provision -email a@b.c [-name Alice]` and prints
// a bearer token for the client's `token` command.
func provision(ctx context.Context, app *server.App, args []string) error {
	fs := flag.NewFlagSet("provision", flag.ContinueOnError)
	email := fs.String("email", "", "user email")
	name := fs.String("name", "", "display name")
	fs.SetOutput(os.Stderr)

	known := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-email", "--email", "-name", "--name":
			known = append(known, args[i])
			if i+1 < len(args) {
				known = append(known, args[i+1])
				i++
			}
		}
	}
	if err := fs.Parse(known); err != nil {
		return err
	}

	u, token, err := app.Provision(ctx, *name, *email)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "user %s <%s>\n%s\n", u.ID, u.Email, token)
	return nil
}
