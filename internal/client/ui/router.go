package ui

import (
	"fmt"
	"sync"
)

// Routes known to the client.
const (
	RouteLanding   = "/"
	RouteDashboard = "/dashboard"
	RouteProfile   = "/profile"
	RouteSettings  = "/settings"
)

var knownRoutes = map[string]bool{
	RouteLanding:   true,
	RouteDashboard: true,
	RouteProfile:   true,
	RouteSettings:  true,
}

// Router tracks the current route and notifies listeners on every change.
type Router struct {
	mu        sync.Mutex
	current   string
	nextID    int
	listeners map[int]func(from, to string)
}

func NewRouter() *Router {
	return &Router{current: RouteLanding, listeners: make(map[int]func(from, to string))}
}

// Navigate switches to route. Navigating to the current route still notifies
// listeners, so a forced redirect always re-renders.
func (r *Router) Navigate(route string) error {
	if !knownRoutes[route] {
		return fmt.Errorf("unknown route %q", route)
	}

	r.mu.Lock()
	from := r.current
	r.current = route
	listeners := make([]func(from, to string), 0, len(r.listeners))
	for _, fn := range r.listeners {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(from, route)
	}
	return nil
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// OnNavigate registers fn and returns the function that removes it.
func (r *Router) OnNavigate(fn func(from, to string)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}
