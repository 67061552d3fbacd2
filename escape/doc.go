/*

Package escape collects the string encoding primitives shared across waypoint:
percent-encoding for URI components and standard/web-safe base64.

Both percent-encoding flavors operate on raw bytes,
so arbitrary UTF-8 byte sequences round-trip through [URL] or
[ReservedExpansion] and [Unescape] without any text-encoding assumptions.

[URL] is the strict form used in query and path-segment positions:
every byte outside the RFC 3986 unreserved set is encoded.
[ReservedExpansion] additionally passes through the RFC 3986 reserved set,
matching the "reserved expansion" mode of RFC 6570 operators.

*/
package escape
