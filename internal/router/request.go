package router

import (
	"net/http"

	"github.com/simman/go-hostroute/internal/uri"
)

// HTTPRequest adapts an *http.Request to URIRequest.
type HTTPRequest struct {
	*http.Request
	uri *uri.HTTP
}

// NewHTTPRequest wraps r. The URL is taken from the Host header and TLS state.
func NewHTTPRequest(r *http.Request) *HTTPRequest {
	return &HTTPRequest{Request: r, uri: uri.FromRequest(r)}
}

// URI implements URIRequest.
func (r *HTTPRequest) URI() URI {
	return r.uri
}

// ConsoleRequest is a request with no URL, such as a command line invocation.
type ConsoleRequest struct {
	Args []string
}

// URLRequest is a request known only by its URL.
type URLRequest struct {
	URL URI
}

// URI implements URIRequest.
func (r URLRequest) URI() URI {
	return r.URL
}
