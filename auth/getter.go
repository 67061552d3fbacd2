package auth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/webserver"
	"golang.org/x/oauth2"
)

// An AuthorizationCodeGetter runs the receiving half of a three-legged OAuth2
// flow over a webserver: it renders authorization URLs carrying a pending
// state key and services the redirect that delivers the authorization code.
type AuthorizationCodeGetter struct {
	config  *oauth2.Config
	pending *PendingAuthorizations
}

func NewAuthorizationCodeGetter(config *oauth2.Config) (*AuthorizationCodeGetter, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", ErrNotValid)
	}

	return &AuthorizationCodeGetter{
		config:  config,
		pending: NewPendingAuthorizations(),
	}, nil
}

// AuthorizationURL registers handler for an eventual redirect and renders the
// URL to direct the user to, with the pending state key encoded in the state
// query parameter.
func (g *AuthorizationCodeGetter) AuthorizationURL(handler AuthorizationHandler) string {
	state := g.pending.Add(handler)
	return g.config.AuthCodeURL(strconv.Itoa(state), oauth2.AccessTypeOffline)
}

// AddReceiveAuthorizationCodePath registers the redirect endpoint on s under path.
func (g *AuthorizationCodeGetter) AddReceiveAuthorizationCodePath(path string, s *webserver.Server) {
	s.AddPathHandler(path, g.ReceiveAuthorizationCode)
}

// ReceiveAuthorizationCode is the webserver.PathHandler servicing the OAuth2
// redirect. It extracts the code, state, and error query parameters,
// dispatches the outcome to the pending handler the state maps to, and
// confirms receipt back to the user's browser.
func (g *AuthorizationCodeGetter) ReceiveAuthorizationCode(r *webserver.Request) error {
	parsed := r.URL()
	code, haveCode := parsed.QueryParameter("code")
	errMsg, haveErr := parsed.QueryParameter("error")

	var status error
	if haveErr {
		status = waypoint.Unknown("did not authorize: " + errMsg)
	}

	if val, ok := parsed.QueryParameter("state"); ok {
		if state, err := strconv.Atoi(val); err == nil {
			if handler, ok := g.pending.FindAndRemove(state); ok {
				handler(code, status)
			}
		}
	}

	// The application continues in the handler's goroutine;
	// confirm back to the browser that the message arrived.
	body, httpCode := "Thanks!", http.StatusOK
	if !haveCode {
		body, httpCode = "No authorization code.", http.StatusNotFound
	}
	html := fmt.Sprintf("<html><body><p>%s</p><p>You can close this browser now.</p></body></html>", body)

	return webserver.SendHTML(r.Response(), httpCode, html)
}

// Exchange trades an authorization code for a token.
func (g *AuthorizationCodeGetter) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpected, err)
	}

	return token, nil
}

// Close cancels all outstanding authorization handlers.
func (g *AuthorizationCodeGetter) Close() {
	g.pending.Close()
}
