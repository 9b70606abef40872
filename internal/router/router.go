// Package router dispatches parsed requests to handler functions by
// method and path.
package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/YoDarkol23/Absolute-Service/internal/httpx"
)

// HandlerFunc handles a request for a fixed path.
type HandlerFunc func(req *httpx.Request) httpx.Response

// IDHandlerFunc handles a request whose path ends in a numeric id
// segment.
type IDHandlerFunc func(req *httpx.Request, id int) httpx.Response

type route struct {
	method  string
	path    string
	handler HandlerFunc
}

type idRoute struct {
	method  string
	prefix  string // includes the trailing slash, e.g. "/admin/cars/"
	handler IDHandlerFunc
}

// Router maps (method, path) to handlers. Exact paths win over id
// patterns; an id pattern matches when the path extends the prefix by
// exactly one segment.
type Router struct {
	routes   []route
	idRoutes []idRoute
}

// New returns an empty Router.
func New() *Router {
	return &Router{}
}

// Handle registers a handler for an exact (method, path) pair.
func (r *Router) Handle(method, path string, h HandlerFunc) {
	r.routes = append(r.routes, route{method: method, path: path, handler: h})
}

// HandleID registers a handler for paths of the form path/{id}. The id
// segment must be a positive integer; anything else is answered with
// a 400.
func (r *Router) HandleID(method, path string, h IDHandlerFunc) {
	prefix := path
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	r.idRoutes = append(r.idRoutes, idRoute{method: method, prefix: prefix, handler: h})
}

// Dispatch routes req to the matching handler. Unmatched method/path
// combinations produce the canonical 404 body.
func (r *Router) Dispatch(req *httpx.Request) httpx.Response {
	for _, rt := range r.routes {
		if rt.method == req.Method && rt.path == req.Path {
			return rt.handler(req)
		}
	}

	for _, rt := range r.idRoutes {
		if rt.method != req.Method || !strings.HasPrefix(req.Path, rt.prefix) {
			continue
		}
		rest := req.Path[len(rt.prefix):]
		if strings.Contains(rest, "/") {
			continue
		}
		// An empty segment falls through Atoi and gets the same 400 as a
		// non-numeric one.
		id, err := strconv.Atoi(rest)
		if err != nil || id <= 0 {
			return httpx.Error(http.StatusBadRequest, "Invalid id in path")
		}
		return rt.handler(req, id)
	}

	return httpx.Error(http.StatusNotFound, "Endpoint not supported")
}
