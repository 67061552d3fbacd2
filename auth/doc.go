/*
Package auth supports OAuth2 three-legged authorization flows that receive
their authorization codes over a waypoint webserver.

# Pending authorizations

An OAuth2 redirect comes back on a different goroutine than the one that asked
for authorization. [PendingAuthorizations] bridges the two: registering an
[AuthorizationHandler] yields a random state key to thread through the
authorization URL, and the redirect handler uses that key to find and fire the
callback exactly once.

# Receiving codes

[AuthorizationCodeGetter] ties the pieces together: it renders authorization
URLs for an oauth2.Config, registers a [webserver.PathHandler] for the
redirect endpoint, dispatches received codes to their pending handlers, and
exchanges codes for tokens.

# Assertions

[MakeAssertion] builds the RS256-signed JWT assertion a service-account style
grant presents in place of a user authorization.
*/
package auth
