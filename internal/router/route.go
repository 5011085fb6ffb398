package router

import "slices"

// Request is anything a route can be asked to match.
// Requests that carry a URL implement URIRequest.
type Request interface{}

// URIRequest is a request that exposes the URL it was made for.
type URIRequest interface {
	URI() URI
}

// URI is any URL.
type URI interface {
	String() string
}

// HTTPURI is a mutable http(s) URL.
// An empty host and a zero port mean the component is absent.
type HTTPURI interface {
	URI
	Host() string
	Port() int
	SetHost(host string) error
	SetPort(port int)
}

// Params holds route parameters.
type Params map[string]any

// RouteMatch is the result of a successful match.
type RouteMatch struct {
	Route  string // name of the matched route in a Router, empty for direct matches
	Params Params

	// Host and Port hold the authority the route matched on.
	// Host is raw, percent escapes included. Port is 0 when the URL had none.
	Host string
	Port int
}

// Param returns a single match parameter.
func (m *RouteMatch) Param(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.Params[key]
	return v, ok
}

// AssembleOptions controls how a route is assembled.
type AssembleOptions struct {
	// URI is the builder to write into. Nothing is written unless it is an HTTPURI.
	URI URI
	// Match is the result of a prior match, nil if there was none.
	Match *RouteMatch
}

// Assembly is the outcome of a single assemble call.
type Assembly struct {
	Path   string
	params []string
}

// Record notes that param was written into the URL.
func (a *Assembly) Record(param string) {
	a.params = append(a.params, param)
}

// AssembledParams returns the URL fields written, in write order.
func (a Assembly) AssembledParams() []string {
	if len(a.params) == 0 {
		return []string{}
	}
	return slices.Clone(a.params)
}

// Route matches requests and assembles URLs.
type Route interface {
	Match(req Request) *RouteMatch
	Assemble(params Params, opts AssembleOptions) (Assembly, error)
}
