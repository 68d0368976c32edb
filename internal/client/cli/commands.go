package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/interviewprep/internal/client/models"
	"github.com/dmitrijs2005/interviewprep/internal/client/profile"
	"github.com/dmitrijs2005/interviewprep/internal/client/ui"
	"github.com/dmitrijs2005/interviewprep/internal/client/widget"
)

// getSecret is an indirection used to facilitate testing.
var getSecret = GetSecret

// Profile opens the profile page. Opening it again re-runs hydration.
func (a *App) Profile(ctx context.Context) error {
	return a.router.Navigate(ui.RouteProfile)
}

func (a *App) Edit(ctx context.Context) error {
	if err := a.profile.BeginEdit(); err != nil {
		return err
	}
	a.renderProfile()
	return nil
}

func (a *App) SetName(ctx context.Context, value string) error {
	return a.setField(models.FieldName, value)
}

func (a *App) SetEmail(ctx context.Context, value string) error {
	return a.setField(models.FieldEmail, value)
}

func (a *App) setField(f models.Field, value string) error {
	if err := a.profile.SetField(f, value); err != nil {
		return err
	}
	a.renderProfile()
	return nil
}

func (a *App) SelectImage(ctx context.Context, path string) error {
	if err := a.profile.SelectImage(ctx, path); err != nil {
		return err
	}
	a.renderProfile()
	return nil
}

// Save runs the two-phase save and prints the outcome.
func (a *App) Save(ctx context.Context) error {
	if err := a.profile.Save(ctx); err != nil {
		if a.profile.State() == profile.SaveFailed {
			a.renderProfile()
		}
		return err
	}
	fmt.Fprintln(a.out, "Profile updated successfully!")
	a.renderProfile()
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	if err := a.profile.Cancel(); err != nil {
		return err
	}
	a.renderProfile()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.profile.Refresh(ctx); err != nil {
		return err
	}
	a.renderProfile()
	return nil
}

// Menu toggles the user menu, the same as clicking the widget.
func (a *App) Menu(ctx context.Context) error {
	return a.Click(ctx, widget.Region)
}

// Click delivers a pointer event to the bus, then acts on it if it hit the
// widget itself or one of its menu entries.
func (a *App) Click(ctx context.Context, target string) error {
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	a.bus.Publish(ui.PointerEvent{Target: target})

	if target == widget.Region {
		if !a.widget.Render().Visible {
			return nil
		}
		a.widget.ToggleMenu()
		a.renderWidget()
		return nil
	}

	for _, item := range a.widget.Render().Items {
		if item.Target == target {
			return a.widget.Select(ctx, item.Item)
		}
	}
	a.renderWidget()
	return nil
}

// Go navigates to a route given with or without the leading slash.
func (a *App) Go(ctx context.Context, route string) error {
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return a.router.Navigate(route)
}

// ImportToken reads a bearer token without echo and stores it.
func (a *App) ImportToken(ctx context.Context) error {
	token, err := getSecret(a.out, "Paste bearer token: ")
	if err != nil {
		return err
	}
	if err := a.session.ImportToken(ctx, token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Token saved.")
	return nil
}

// Logout wipes the local session and returns to the landing page.
func (a *App) Logout(ctx context.Context) error {
	a.widget.Logout(ctx)
	return nil
}
