// Package hostname provides a route that matches requests by URL host.
//
// A route holds an ordered list of accepted hosts and a set of default
// parameters. Matching compares the request host against every configured
// host after Unicode lower-casing; there are no wildcards and no suffix
// matching. A match yields the defaults plus a "host" parameter holding the
// percent-decoded request host.
//
// Assembling writes a host (and the matched port, if any) into an HTTP URL
// builder. The route never contributes to the path.
//
// # State
//
// A Route is immutable. The host and port seen by Match travel in the
// returned RouteMatch, which callers hand back through AssembleOptions.Match,
// so one Route may serve concurrent requests.
package hostname

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/simman/go-hostroute/internal/router"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Route matches requests whose URL host is one of a fixed set of hosts.
type Route struct {
	hosts    []string
	lowered  []string
	defaults router.Params
}

var _ router.Route = (*Route)(nil)

// New creates a route for the given hosts and default parameters.
func New(hosts []string, defaults router.Params) *Route {
	r := &Route{
		hosts:    slices.Clone(hosts),
		lowered:  make([]string, len(hosts)),
		defaults: maps.Clone(defaults),
	}
	if r.defaults == nil {
		r.defaults = router.Params{}
	}

	lower := cases.Lower(language.Und)
	for i, h := range hosts {
		r.lowered[i] = lower.String(h)
	}

	return r
}

// Hosts returns the configured hosts in order.
func (r *Route) Hosts() []string {
	return slices.Clone(r.hosts)
}

// Defaults returns the default parameters.
func (r *Route) Defaults() router.Params {
	return maps.Clone(r.defaults)
}

// Match returns nil unless the request carries an HTTP URL whose host is one
// of the configured hosts. Requests without a URL never match.
//
// Match panics if the request's URL is not an HTTP URL: that is a wiring
// mistake, not bad input.
func (r *Route) Match(req router.Request) *router.RouteMatch {
	ur, ok := req.(router.URIRequest)
	if !ok {
		return nil
	}

	u, ok := ur.URI().(router.HTTPURI)
	if !ok || isNil(u) {
		panic(fmt.Sprintf("hostname: request URI must be a non-nil HTTP URI, got %T", ur.URI()))
	}

	host := u.Host()
	if host == "" || !r.accepts(host) {
		return nil
	}

	params := make(router.Params, len(r.defaults)+1)
	maps.Copy(params, r.defaults)
	params["host"] = rawDecode(host)

	return &router.RouteMatch{
		Params: params,
		Host:   host,
		Port:   u.Port(),
	}
}

// Assemble writes the host into opts.URI when it is an HTTP URL builder.
// The host comes from opts.Match or, failing that, from the only configured
// host. The matched port is written after the host. params are not used.
func (r *Route) Assemble(_ router.Params, opts router.AssembleOptions) (router.Assembly, error) {
	var asm router.Assembly

	u, ok := opts.URI.(router.HTTPURI)
	if !ok {
		return asm, nil
	}

	var (
		host  string
		write bool
	)
	switch {
	case opts.Match != nil && opts.Match.Host != "":
		host, write = opts.Match.Host, true
	case len(r.hosts) == 1:
		host, write = r.hosts[0], true
	}

	if write {
		if err := u.SetHost(rawEncode(host)); err != nil {
			return router.Assembly{}, &AssemblyError{Host: host, Err: err}
		}
		asm.Record("host")
	}

	if opts.Match != nil && opts.Match.Port != 0 {
		u.SetPort(opts.Match.Port)
		asm.Record("port")
	}

	return asm, nil
}

// isNil reports whether u wraps a nil pointer.
func isNil(u router.HTTPURI) bool {
	v := reflect.ValueOf(u)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (r *Route) accepts(host string) bool {
	return slices.Contains(r.lowered, cases.Lower(language.Und).String(host))
}
