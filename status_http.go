package waypoint

import "strconv"

// httpCodePair resolves an HTTP response status code into the canonical Code
// and standard error phrase to report it with.
//
// The mapping is a suggestion rather than definitive; codes without a better
// fit map to CodeUnknown.
func httpCodePair(httpCode int) (Code, string) {
	switch httpCode {
	case 400:
		return CodeInvalidArgument, "Bad Request"
	case 401:
		return CodePermissionDenied, "Unauthorized"
	case 402:
		return CodeUnknown, "Payment Required"
	case 403:
		return CodePermissionDenied, "Forbidden"
	case 404:
		return CodeNotFound, "Not Found"
	case 405:
		return CodeUnimplemented, "Method Not Allowed"
	case 408:
		return CodeDeadlineExceeded, "Request Timeout"
	case 409:
		return CodeFailedPrecondition, "Conflict"
	case 410:
		return CodeNotFound, "Gone"
	case 411:
		return CodeInvalidArgument, "Length Required"
	case 412:
		return CodeFailedPrecondition, "Precondition Failed"
	case 413:
		return CodeInvalidArgument, "Request Entity Too Large"
	case 414:
		return CodeInvalidArgument, "Request URI Too Long"
	case 415:
		return CodeInvalidArgument, "Unsupported Media Type"
	case 416:
		return CodeOutOfRange, "Requested Range Not Satisfiable"
	case 500:
		return CodeInternal, "Internal Server Error"
	case 501:
		return CodeUnimplemented, "Not Implemented"
	case 502:
		return CodeInternal, "Bad Gateway"
	case 503:
		return CodeUnavailable, "Unavailable"
	case 504:
		return CodeDeadlineExceeded, "Gateway Timeout"
	case 505:
		return CodeUnimplemented, "HTTP Version Not Supported"
	case 507:
		return CodeResourceExhausted, "Insufficient Storage"
	case 509:
		return CodeResourceExhausted, "Bandwidth Limit Exceeded"
	default:
		if httpCode >= 200 && httpCode < 300 {
			return CodeOK, "OK"
		}

		return CodeUnknown, "Unknown"
	}
}

// CodeFromHTTP suggests the canonical Code for an HTTP response status code.
func CodeFromHTTP(httpCode int) Code {
	code, _ := httpCodePair(httpCode)
	return code
}

// HTTPErrorMessage formats the standard error phrase for an HTTP response
// status code, e.g., "Http(404) Not Found".
func HTTPErrorMessage(httpCode int) string {
	_, msg := httpCodePair(httpCode)
	return "Http(" + strconv.Itoa(httpCode) + ") " + msg
}

// StatusFromHTTP constructs a *Status from an HTTP response status code.
// 2xx series codes return nil; all others return a failure whose message
// is msg, or a generic explanation based on httpCode when msg is empty.
func StatusFromHTTP(httpCode int, msg string) *Status {
	code, _ := httpCodePair(httpCode)
	if code == CodeOK {
		return nil
	}

	if msg == "" {
		msg = HTTPErrorMessage(httpCode)
	}

	return NewStatus(code, msg)
}
