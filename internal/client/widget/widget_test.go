package widget

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/interviewprep/internal/client/client"
	"github.com/dmitrijs2005/interviewprep/internal/client/identity"
	"github.com/dmitrijs2005/interviewprep/internal/client/models"
	"github.com/dmitrijs2005/interviewprep/internal/client/services"
	"github.com/dmitrijs2005/interviewprep/internal/client/store"
	"github.com/dmitrijs2005/interviewprep/internal/client/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	widget *Widget
	ident  *identity.Context
	store  *store.Store
	bus    *ui.EventBus
	router *ui.Router
}

func setup(t *testing.T) fixture {
	t.Helper()

	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "widget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st := store.New(db, nil)
	ident := identity.New()
	bus := ui.NewEventBus()
	router := ui.NewRouter()
	session := services.NewSessionService(client.NewHTTPClient("http://127.0.0.1:0", 0, nil), ident, st, nil)

	return fixture{
		widget: New(ident, session, router, bus, nil),
		ident:  ident,
		store:  st,
		bus:    bus,
		router: router,
	}
}

func TestRender_HiddenWithoutIdentity(t *testing.T) {
	f := setup(t)
	assert.Equal(t, Rendering{}, f.widget.Render())
}

func TestRender_PlaceholderAvatar(t *testing.T) {
	f := setup(t)
	f.ident.Replace(models.Identity{Name: "Ada"})

	r := f.widget.Render()
	assert.True(t, r.Visible)
	assert.Equal(t, "Ada", r.Name)
	assert.Equal(t, "/default.jpeg", r.AvatarURL)
	assert.False(t, r.MenuOpen)
	assert.Empty(t, r.Items)

	f.ident.Replace(models.Identity{Name: "Ada", ProfileImageURL: "https://x/img1.png"})
	assert.Equal(t, "https://x/img1.png", f.widget.Render().AvatarURL)
}

func TestToggleAndOutsideClick(t *testing.T) {
	f := setup(t)
	f.ident.Replace(models.Identity{Name: "Ada"})
	f.widget.Mount()

	f.widget.ToggleMenu()
	r := f.widget.Render()
	require.True(t, r.MenuOpen)
	require.Len(t, r.Items, 4)
	assert.Equal(t, "/navbar/user/menu/logout", r.Items[3].Target)

	f.bus.Publish(ui.PointerEvent{Target: Region})
	assert.True(t, f.widget.MenuOpen(), "click inside keeps the menu open")

	f.bus.Publish(ui.PointerEvent{Target: "/profile/form"})
	assert.False(t, f.widget.MenuOpen())

	f.widget.ToggleMenu()
	f.widget.ToggleMenu()
	assert.False(t, f.widget.MenuOpen())
}

func TestUnmount_ReleasesSubscription(t *testing.T) {
	f := setup(t)
	f.widget.Mount()
	f.widget.Mount()
	require.Equal(t, 1, f.bus.Subscribers())

	f.widget.ToggleMenu()
	f.widget.Unmount()
	assert.Equal(t, 0, f.bus.Subscribers())
	assert.False(t, f.widget.MenuOpen())

	f.widget.Unmount()
	assert.False(t, f.widget.Mounted())

	// events after unmount never reach the widget
	f.widget.ToggleMenu()
	f.bus.Publish(ui.PointerEvent{Target: "/elsewhere"})
	assert.True(t, f.widget.MenuOpen())
}

func TestSelect_Navigates(t *testing.T) {
	f := setup(t)
	f.ident.Replace(models.Identity{Name: "Ada"})

	for item, route := range map[Item]string{
		ItemDashboard: ui.RouteDashboard,
		ItemProfile:   ui.RouteProfile,
		ItemSettings:  ui.RouteSettings,
	} {
		f.widget.ToggleMenu()
		require.NoError(t, f.widget.Select(context.Background(), item))
		assert.Equal(t, route, f.router.Current())
		assert.False(t, f.widget.MenuOpen())
	}

	assert.Error(t, f.widget.Select(context.Background(), Item("nope")))
}

func TestLogout_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	ada := models.Identity{Name: "Ada", Email: "ada@x.io", Token: "tok"}
	f.ident.Replace(ada)
	f.store.SaveSession(ctx, ada)
	require.NoError(t, f.router.Navigate(ui.RouteProfile))
	f.widget.Mount()
	f.widget.ToggleMenu()

	require.NoError(t, f.widget.Select(ctx, ItemLogout))

	_, ok := f.ident.Current()
	assert.False(t, ok)
	for _, k := range []string{store.KeyUser, store.KeyToken} {
		_, ok := f.store.Get(ctx, k)
		assert.False(t, ok, k)
	}
	assert.Equal(t, ui.RouteLanding, f.router.Current())
	assert.False(t, f.widget.Render().Visible)
}
