package auth_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/webserver"
	"golang.org/x/oauth2"
)

func newTestGetter(t *testing.T) (*auth.AuthorizationCodeGetter, *webserver.Server) {
	t.Helper()

	g, err := auth.NewAuthorizationCodeGetter(&oauth2.Config{
		ClientID: "test-client",
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://example.com/o/oauth2/auth",
			TokenURL: "https://example.com/o/oauth2/token",
		},
		RedirectURL: "http://localhost:8080/oauth2callback",
		Scopes:      []string{"email"},
	})
	require.Nil(t, err)

	quiet := logger.NewLogger(logger.WithLogger(log.New(io.Discard, "", 0)))
	s, err := webserver.New(
		webserver.WithEnv("TESTING"),
		webserver.WithLogger(quiet),
		webserver.WithProtocol("http"),
	)
	require.Nil(t, err)

	g.AddReceiveAuthorizationCodePath("/oauth2callback", s)
	return g, s
}

// stateFromAuthURL pulls the state query parameter back out of an authorization URL.
func stateFromAuthURL(t *testing.T, authURL string) string {
	t.Helper()

	u, err := url.Parse(authURL)
	require.Nil(t, err)
	state := u.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func TestNewAuthorizationCodeGetterNilConfig(t *testing.T) {
	_, err := auth.NewAuthorizationCodeGetter(nil)
	require.ErrorIs(t, err, auth.ErrNotValid)
}

func TestReceiveAuthorizationCode(t *testing.T) {
	// Arrange
	g, s := newTestGetter(t)

	var gotCode string
	var gotErr error
	authURL := g.AuthorizationURL(func(code string, err error) {
		gotCode, gotErr = code, err
	})
	state := stateFromAuthURL(t, authURL)

	w := httptest.NewRecorder()

	// Act
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/oauth2callback?code=4%2Fabc&state="+state, nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Thanks!")
	require.Equal(t, "4/abc", gotCode)
	require.Nil(t, gotErr)

	// Act: replaying the redirect does not re-fire the handler
	gotCode = ""
	s.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/oauth2callback?code=4%2Fabc&state="+state, nil))

	// Assert
	require.Empty(t, gotCode)
}

func TestReceiveAuthorizationCodeDenied(t *testing.T) {
	// Arrange
	g, s := newTestGetter(t)

	var gotErr error
	authURL := g.AuthorizationURL(func(code string, err error) { gotErr = err })
	state := stateFromAuthURL(t, authURL)

	w := httptest.NewRecorder()

	// Act
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/oauth2callback?error=access_denied&state="+state, nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "No authorization code.")
	require.Equal(t, waypoint.CodeUnknown, waypoint.StatusCode(gotErr))
	require.Contains(t, gotErr.Error(), "access_denied")
}

func TestReceiveAuthorizationCodeUnknownState(t *testing.T) {
	// Arrange
	_, s := newTestGetter(t)

	w := httptest.NewRecorder()

	// Act
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/oauth2callback?code=abc&state="+strconv.Itoa(99), nil))

	// Assert: receipt is still confirmed even with nothing pending
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Thanks!")
}

func TestAuthorizationURL(t *testing.T) {
	// Arrange
	g, _ := newTestGetter(t)

	// Act
	authURL := g.AuthorizationURL(func(code string, err error) {})

	// Assert
	u, err := url.Parse(authURL)
	require.Nil(t, err)
	require.Equal(t, "https", u.Scheme)
	require.Equal(t, "example.com", u.Host)
	require.Equal(t, "test-client", u.Query().Get("client_id"))
	_, err = strconv.Atoi(u.Query().Get("state"))
	require.Nil(t, err)
}
