package webserver

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/waypoint/uri"
)

// A Request wraps a single inbound HTTP request with the parsed form of its
// URL and the Response it replies with.
type Request struct {
	method   string
	url      uri.Parsed
	httpReq  *http.Request
	response Response
}

func newRequest(w http.ResponseWriter, r *http.Request) *Request {
	return &Request{
		method:   r.Method,
		url:      uri.Parse(r.URL.String()),
		httpReq:  r,
		response: &httpResponse{w: w},
	}
}

// Method returns the HTTP method of the request.
func (r *Request) Method() string { return r.method }

// URL returns the parsed request URL.
func (r *Request) URL() uri.Parsed { return r.url }

// Response returns the Response bound to the request.
func (r *Request) Response() Response { return r.response }

// Context returns the request's context,
// carrying values set by the middleware stack.
func (r *Request) Context() context.Context { return r.httpReq.Context() }

// CookieValue looks up the named cookie,
// reporting whether the request carries it.
func (r *Request) CookieValue(name string) (string, bool) {
	c, err := r.httpReq.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// HeaderValue looks up the named header,
// reporting whether the request carries it.
func (r *Request) HeaderValue(name string) (string, bool) {
	vals, ok := r.httpReq.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
