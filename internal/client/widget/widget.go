// Package widget renders the signed-in user in the navigation bar: name,
// avatar and a small menu with navigation entries and logout.
package widget

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/interviewprep/internal/client/identity"
	"github.com/dmitrijs2005/interviewprep/internal/client/ui"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
)

// Region is the slash path of the widget on screen. Pointer events targeting
// it or anything beneath it count as inside.
const Region = "/navbar/user"

// Item is a menu entry.
type Item string

const (
	ItemDashboard Item = "dashboard"
	ItemProfile   Item = "profile"
	ItemSettings  Item = "settings"
	ItemLogout    Item = "logout"
)

var menu = []struct {
	item  Item
	label string
	route string
}{
	{ItemDashboard, "Dashboard", ui.RouteDashboard},
	{ItemProfile, "Profile", ui.RouteProfile},
	{ItemSettings, "Settings", ui.RouteSettings},
	{ItemLogout, "Logout", ""},
}

// Target returns the pointer target of a menu entry.
func (i Item) Target() string {
	return Region + "/menu/" + string(i)
}

// Session ends the current session.
type Session interface {
	Logout(ctx context.Context)
}

type Navigator interface {
	Navigate(route string) error
}

type EventSource interface {
	Subscribe(fn func(ui.PointerEvent)) (unsubscribe func())
}

// Widget is safe for concurrent use.
type Widget struct {
	identity *identity.Context
	session  Session
	nav      Navigator
	events   EventSource
	log      logging.Logger

	mu          sync.Mutex
	open        bool
	unsubscribe func()
}

func New(ident *identity.Context, session Session, nav Navigator, events EventSource, log logging.Logger) *Widget {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Widget{
		identity: ident,
		session:  session,
		nav:      nav,
		events:   events,
		log:      log.With("component", "widget"),
	}
}

// Mount starts listening for pointer events. Mounting twice is a no-op.
func (w *Widget) Mount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unsubscribe != nil {
		return
	}
	w.unsubscribe = w.events.Subscribe(w.onPointer)
}

// Unmount stops listening and closes the menu. It is safe to call at any
// time, including while the menu is open or when not mounted.
func (w *Widget) Unmount() {
	w.mu.Lock()
	unsubscribe := w.unsubscribe
	w.unsubscribe = nil
	w.open = false
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (w *Widget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unsubscribe != nil
}

func (w *Widget) onPointer(ev ui.PointerEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unsubscribe == nil || !w.open {
		return
	}
	if !ev.Within(Region) {
		w.open = false
	}
}

func (w *Widget) ToggleMenu() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = !w.open
}

func (w *Widget) MenuOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// MenuItem is one rendered menu entry.
type MenuItem struct {
	Item   Item
	Label  string
	Target string
}

// Rendering is the render model of the widget. Visible is false when nobody
// is signed in; every other field is then empty.
type Rendering struct {
	Visible   bool
	Name      string
	AvatarURL string
	MenuOpen  bool
	Items     []MenuItem
}

func (w *Widget) Render() Rendering {
	id, ok := w.identity.Current()
	if !ok {
		return Rendering{}
	}

	r := Rendering{
		Visible:   true,
		Name:      id.Name,
		AvatarURL: id.AvatarURL(),
		MenuOpen:  w.MenuOpen(),
	}
	if r.MenuOpen {
		for _, m := range menu {
			r.Items = append(r.Items, MenuItem{Item: m.item, Label: m.label, Target: m.item.Target()})
		}
	}
	return r
}

// Select closes the menu and acts on item.
func (w *Widget) Select(ctx context.Context, item Item) error {
	for _, m := range menu {
		if m.item != item {
			continue
		}

		w.mu.Lock()
		w.open = false
		w.mu.Unlock()

		if item == ItemLogout {
			w.Logout(ctx)
			return nil
		}
		return w.nav.Navigate(m.route)
	}
	return fmt.Errorf("unknown menu item %q", item)
}

// Logout clears the durable store and the identity context, then sends the
// user to the landing page. It cannot fail.
func (w *Widget) Logout(ctx context.Context) {
	w.session.Logout(ctx)

	w.mu.Lock()
	w.open = false
	w.mu.Unlock()

	if err := w.nav.Navigate(ui.RouteLanding); err != nil {
		w.log.Warn(ctx, "navigate after logout failed", "error", err)
	}
}
