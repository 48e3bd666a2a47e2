// Package router implements the client-style routing core: a path
// matcher over a small ordered route table and a navigation controller
// that keeps a rendered view consistent with an address.  The matcher
// is pure; the controller talks to its display surface only through
// callbacks, so the same core serves the HTTP binding and embedded
// callers alike.
package router

import "strings"

// ParamPrefix marks a pattern segment as a named parameter.
const ParamPrefix = ":"

// Params maps route parameter names to the path segments they captured.
type Params map[string]string

// Route is one entry of the route table.  Pattern is a path template
// whose segments are either literals or ":name" parameters.  Name
// identifies the view the route dispatches to.
type Route struct {
	Pattern string
	Name    string
}

// Match resolves a path against the table.  Exact whole-string equality
// against every pattern is tried first, so a literal entry always beats
// a parameterized one regardless of table order.  Otherwise the first
// route with the same segment count whose literal segments all match
// wins, with parameter segments capturing their path segment.  The
// boolean result is false when nothing matches; that is a normal
// outcome (the caller shows its not-found view), not an error.
func Match(routes []Route, path string) (Route, Params, bool) {
	for _, r := range routes {
		if r.Pattern == path {
			return r, Params{}, true
		}
	}
	segs := strings.Split(path, "/")
	for _, r := range routes {
		psegs := strings.Split(r.Pattern, "/")
		if len(psegs) != len(segs) {
			continue
		}
		if params, ok := matchSegments(psegs, segs); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

func matchSegments(pattern, path []string) (Params, bool) {
	params := Params{}
	for i, ps := range pattern {
		if strings.HasPrefix(ps, ParamPrefix) {
			params[ps[len(ParamPrefix):]] = path[i]
			continue
		}
		if ps != path[i] {
			return nil, false
		}
	}
	return params, true
}
