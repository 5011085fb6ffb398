package uri

import (
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ErrUnsupportedScheme is returned by Parse for URLs that are not http or https.
var ErrUnsupportedScheme = errors.New("uri: unsupported scheme")

// HTTP is a mutable http(s) URL builder.
// The host is kept exactly as it appears in the URL, percent escapes included.
// An empty host and a zero port mean "absent".
type HTTP struct {
	scheme string
	host   string
	port   int
	rest   string // path, query and fragment, as given
}

// New returns an empty builder for the given scheme.
func New(scheme string) *HTTP {
	return &HTTP{scheme: strings.ToLower(scheme)}
}

// Parse parses an absolute http(s) URL without decoding its host.
func Parse(raw string) (*HTTP, error) {
	scheme, tail, ok := strings.Cut(raw, "://")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no scheme", ErrUnsupportedScheme, raw)
	}
	scheme = strings.ToLower(scheme)
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}

	authority, rest := tail, ""
	if idx := strings.IndexAny(tail, "/?#"); idx != -1 {
		authority, rest = tail[:idx], tail[idx:]
	}

	// Drop userinfo
	if idx := strings.LastIndex(authority, "@"); idx != -1 {
		authority = authority[idx+1:]
	}

	host, port, err := splitAuthority(authority)
	if err != nil {
		return nil, err
	}

	u := &HTTP{scheme: scheme, rest: rest}
	if err := u.SetHost(host); err != nil {
		return nil, err
	}
	u.SetPort(port)

	return u, nil
}

// FromRequest builds a URL from the request's Host header, TLS state and request URI.
func FromRequest(r *http.Request) *HTTP {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	host := r.Host
	if host == "" {
		host = r.URL.Host
	}

	u := &HTTP{scheme: scheme, rest: r.URL.RequestURI()}
	if h, p, err := splitAuthority(host); err == nil {
		u.host, u.port = h, p
	} else {
		u.host = host
	}

	return u
}

// Scheme returns the lower-cased scheme.
func (u *HTTP) Scheme() string {
	return u.scheme
}

// SetScheme replaces the scheme.
func (u *HTTP) SetScheme(scheme string) {
	u.scheme = strings.ToLower(scheme)
}

// Host returns the raw host, or "" if the URL has none.
func (u *HTTP) Host() string {
	return u.host
}

// SetHost replaces the host. Hosts that are not valid URI host syntax
// are rejected with an *InvalidPartError and leave the URL unchanged.
func (u *HTTP) SetHost(host string) error {
	if err := validateHost(host); err != nil {
		return &InvalidPartError{Part: "host", Value: host, Reason: err.Error()}
	}
	u.host = host
	return nil
}

// Port returns the port, or 0 if the URL has none.
func (u *HTTP) Port() int {
	return u.port
}

// SetPort replaces the port. Zero removes it.
func (u *HTTP) SetPort(port int) {
	if port < 0 {
		port = 0
	}
	u.port = port
}

// Path returns the path, query and fragment exactly as given.
func (u *HTTP) Path() string {
	return u.rest
}

// SetPath replaces the path, query and fragment.
func (u *HTTP) SetPath(path string) {
	if path != "" && !strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "?") && !strings.HasPrefix(path, "#") {
		path = "/" + path
	}
	u.rest = path
}

// String renders the URL.
func (u *HTTP) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.scheme != "" || u.host != "" || u.port != 0 {
		b.WriteString("//")
	}
	b.WriteString(u.host)
	if u.port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	b.WriteString(u.rest)
	return b.String()
}

// splitAuthority splits "host[:port]" keeping IPv6 brackets on the host.
func splitAuthority(authority string) (string, int, error) {
	host, portStr := authority, ""

	if strings.HasPrefix(authority, "[") {
		end := strings.Index(authority, "]")
		if end == -1 {
			return "", 0, &InvalidPartError{Part: "host", Value: authority, Reason: "missing ']'"}
		}
		host = authority[:end+1]
		if tail := authority[end+1:]; tail != "" {
			if !strings.HasPrefix(tail, ":") {
				return "", 0, &InvalidPartError{Part: "host", Value: authority, Reason: "unexpected characters after ']'"}
			}
			portStr = tail[1:]
		}
	} else if idx := strings.LastIndex(authority, ":"); idx != -1 {
		host, portStr = authority[:idx], authority[idx+1:]
	}

	if portStr == "" {
		return host, 0, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return "", 0, &InvalidPartError{Part: "port", Value: portStr, Reason: "not a port number"}
	}

	return host, port, nil
}

func validateHost(host string) error {
	if host == "" {
		return nil
	}

	if !httpguts.ValidHostHeader(host) {
		return errors.New("contains characters not allowed in a host")
	}

	if strings.HasPrefix(host, "[") {
		if !strings.HasSuffix(host, "]") {
			return errors.New("unterminated IP literal")
		}
		addr, err := netip.ParseAddr(host[1 : len(host)-1])
		if err != nil || !addr.Is6() {
			return errors.New("invalid IPv6 literal")
		}
		return nil
	}

	if strings.ContainsAny(host, ":[]") {
		return errors.New("':', '[' and ']' are only allowed in IP literals")
	}

	for i := 0; i < len(host); i++ {
		if host[i] != '%' {
			continue
		}
		if i+2 >= len(host) || !isHex(host[i+1]) || !isHex(host[i+2]) {
			return errors.New("malformed percent escape")
		}
		i += 2
	}

	return nil
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
