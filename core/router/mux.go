package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/dmitrymomot/landing/core/handler"
)

// route is a single registered endpoint.
type route struct {
	method  string
	pattern string // exact path, or prefix when wildcard is set
	wild    bool
}

// mux is the private implementation of the Router interface.
type mux[C handler.Context] struct {
	routes       map[route]handler.HandlerFunc[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger

	parent *mux[C] // set on router views created by With/Group
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		routes:       make(map[route]handler.HandlerFunc[C]),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // no-op by default
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// completionKey keys the per-request completion callback.
type completionKey struct{}

// OnComplete registers fn to run once the mux finishes serving the request,
// after the error handler has rendered any failure. fn receives the status
// code actually sent to the client. Multiple registrations run in order.
func OnComplete(ctx handler.Context, fn func(status int)) {
	if prev, ok := ctx.Value(completionKey{}).(func(int)); ok {
		next := fn
		fn = func(status int) {
			prev(status)
			next(status)
		}
	}
	ctx.SetValue(completionKey{}, fn)
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	root := m.root()
	ww := newResponseWriter(w)
	ctx := root.newContext(ww, r)

	// Registered first so it runs after the recovery defer: completion
	// callbacks must observe the status the error handler wrote.
	defer func() {
		fn, ok := ctx.Value(completionKey{}).(func(int))
		if !ok {
			return
		}
		status := ww.Status()
		if status == 0 {
			// Nothing written; net/http sends 200 on return.
			status = http.StatusOK
		}
		fn(status)
	}()

	// Recover from handler panics to keep the server alive.
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				root.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			root.errorHandler(ctx, panicErr)
		}
	}()

	fn, found, pathKnown := root.match(r.Method, r.URL.Path)
	if !found {
		if pathKnown {
			if !ww.Written() {
				ww.Header().Set("Allow", strings.Join(root.allowedMethods(r.URL.Path), ", "))
			}
			root.errorHandler(ctx, ErrMethodNotAllowed)
		} else {
			root.errorHandler(ctx, ErrNotFound)
		}
		return
	}

	resp := fn(ctx)
	if resp == nil {
		root.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, r); err != nil {
		root.errorHandler(ctx, err)
	}
}

func (m *mux[C]) match(method, path string) (fn handler.HandlerFunc[C], found, pathKnown bool) {
	if path == "" {
		path = "/"
	}

	if fn, ok := m.routes[route{method: method, pattern: path}]; ok {
		return fn, true, true
	}
	// HEAD falls back to GET handlers; net/http suppresses the body.
	if method == http.MethodHead {
		if fn, ok := m.routes[route{method: http.MethodGet, pattern: path}]; ok {
			return fn, true, true
		}
	}

	var (
		best    handler.HandlerFunc[C]
		bestLen = -1
	)
	for rt, h := range m.routes {
		if !rt.wild || !strings.HasPrefix(path, rt.pattern) {
			continue
		}
		pathKnown = true
		if rt.method == method || (method == http.MethodHead && rt.method == http.MethodGet) {
			// Longest prefix wins when mounts overlap.
			if len(rt.pattern) > bestLen {
				best = h
				bestLen = len(rt.pattern)
			}
		}
	}
	if best != nil {
		return best, true, true
	}

	for rt := range m.routes {
		if rt.pattern == path {
			pathKnown = true
			break
		}
	}
	return nil, false, pathKnown
}

func (m *mux[C]) allowedMethods(path string) []string {
	seen := map[string]struct{}{}
	for rt := range m.routes {
		if rt.pattern == path || (rt.wild && strings.HasPrefix(path, rt.pattern)) {
			seen[rt.method] = struct{}{}
		}
	}
	allowed := make([]string, 0, len(seen))
	for method := range seen {
		allowed = append(allowed, method)
	}
	sort.Strings(allowed)
	return allowed
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Handle(http.MethodPost, pattern, h)
}

// Handle registers a handler for the given method and pattern.
// A pattern ending in "/*" registers a prefix match.
func (m *mux[C]) Handle(method, pattern string, h handler.HandlerFunc[C]) {
	if pattern == "" || pattern[0] != '/' {
		panic(ErrInvalidPattern)
	}
	if h == nil {
		panic(ErrNilHandler)
	}

	rt := route{method: method, pattern: pattern}
	if strings.HasSuffix(pattern, "/*") {
		rt.pattern = strings.TrimSuffix(pattern, "*")
		rt.wild = true
	}

	// Middleware from the full view chain wraps the handler at registration
	// time, so views stay cheap and request dispatch does no chaining.
	wrapped := h
	for v := m; v != nil; v = v.parent {
		wrapped = chain(v.middlewares, wrapped)
	}

	m.root().routes[rt] = wrapped
}

// Use appends middleware to this router view.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// With returns a router view that applies additional middleware.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		parent:      m,
		middlewares: middlewares,
	}
}

// Group calls fn with a scoped router view.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	view := m.With()
	if fn != nil {
		fn(view)
	}
	return view
}

// root walks up the view chain to the mux holding the route table.
func (m *mux[C]) root() *mux[C] {
	r := m
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// chain wraps the handler with middlewares in registration order.
func chain[C handler.Context](middlewares []handler.Middleware[C], h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
