package webserver

import (
	"fmt"
	"io"
	"net/http"

	"github.com/xy-planning-network/waypoint"
)

// A Response replies to the request that produced it.
//
// Exactly one reply goes out per Response: SendReply and the conveniences
// built over it fail with a failed-precondition status once a reply is sent.
// Headers and cookies must be added before replying.
type Response interface {
	// SendReply sends the reply with the given Content-Type, HTTP status
	// code, and body. An empty contentType leaves the header unset.
	SendReply(contentType string, httpCode int, body string) error

	// AddHeader adds the header to the eventual reply.
	AddHeader(name, value string) error

	// AddCookie adds a cookie with the given name and value to the eventual reply.
	AddCookie(name, value string) error
}

// SendHTML replies with a text/html body.
func SendHTML(r Response, httpCode int, body string) error {
	return r.SendReply("text/html", httpCode, body)
}

// SendText replies with a text/plain body.
func SendText(r Response, httpCode int, body string) error {
	return r.SendReply("text/plain", httpCode, body)
}

// SendRedirect replies with a redirect to url using the given HTTP status
// code, usually in the 3xx range.
func SendRedirect(r Response, httpCode int, url string) error {
	if err := r.AddHeader("Location", url); err != nil {
		return err
	}

	return r.SendReply("", httpCode, "")
}

// httpResponse implements Response over an http.ResponseWriter.
type httpResponse struct {
	w    http.ResponseWriter
	sent bool
}

func (hr *httpResponse) SendReply(contentType string, httpCode int, body string) error {
	if hr.sent {
		return waypoint.FailedPrecondition("reply already sent")
	}
	hr.sent = true

	if contentType != "" {
		hr.w.Header().Set("Content-Type", contentType)
	}
	hr.w.WriteHeader(httpCode)
	if _, err := io.WriteString(hr.w, body); err != nil {
		return waypoint.Unknown(fmt.Sprintf("writing reply: %s", err))
	}

	return nil
}

func (hr *httpResponse) AddHeader(name, value string) error {
	if hr.sent {
		return waypoint.FailedPrecondition("reply already sent")
	}

	hr.w.Header().Add(name, value)
	return nil
}

func (hr *httpResponse) AddCookie(name, value string) error {
	if hr.sent {
		return waypoint.FailedPrecondition("reply already sent")
	}

	http.SetCookie(hr.w, &http.Cookie{Name: name, Value: value, Path: "/"})
	return nil
}
