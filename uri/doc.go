/*

Package uri splits, joins, and resolves URLs without reaching for a full
net/url round trip.

[Parse] breaks a URL into the components named by RFC 1808 section 2.4 -
scheme, netloc, path, params, query, fragment - keeping each component as the
raw text found in the URL. Query parameter values are the only components
percent-decoded, and only when read through QueryParameter or
QueryParameterAssignments.

[Resolve] implements relative URL resolution per RFC 1808 section 4,
including folding "." and ".." path segments.

*/
package uri
