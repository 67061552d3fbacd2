/*
Package webserver provides a minimal, embeddable web server for waypoint apps
and the tools needed to service requests against it.

# Overview

A [*Server] binds a port and dispatches incoming requests to [PathHandler]
functions. Handlers register under a path prefix with [*Server.AddPathHandler]
and are searched in registration order; the first prefix matching the request's
URL path wins. Requests matching no handler receive a plain 404 reply.

A [PathHandler] receives a [*Request], which wraps the HTTP method, the parsed
request URL, and header/cookie lookup, alongside the [Response] the handler
replies with. [Response] sends exactly one reply; [SendHTML], [SendText] and
[SendRedirect] are conveniences over [Response.SendReply].

# Middleware

Every request passes through a middleware stack in the form of [Adapter]
functions glued together by [Chain]: a request ID, the originating IP address,
request logging and IP-based rate limiting by default, plus whatever
[WithMiddlewares] supplies.

# Lifecycle

[*Server.Startup] runs the server until [*Server.Shutdown] is called or an
interrupt/termination signal arrives, then drains in-flight requests
gracefully.
*/
package webserver
