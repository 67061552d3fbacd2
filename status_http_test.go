package waypoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestCodeFromHTTP(t *testing.T) {
	for _, tc := range []struct {
		httpCode int
		expected waypoint.Code
	}{
		{200, waypoint.CodeOK},
		{204, waypoint.CodeOK},
		{299, waypoint.CodeOK},
		{400, waypoint.CodeInvalidArgument},
		{401, waypoint.CodePermissionDenied},
		{402, waypoint.CodeUnknown},
		{403, waypoint.CodePermissionDenied},
		{404, waypoint.CodeNotFound},
		{405, waypoint.CodeUnimplemented},
		{408, waypoint.CodeDeadlineExceeded},
		{409, waypoint.CodeFailedPrecondition},
		{410, waypoint.CodeNotFound},
		{416, waypoint.CodeOutOfRange},
		{500, waypoint.CodeInternal},
		{501, waypoint.CodeUnimplemented},
		{502, waypoint.CodeInternal},
		{503, waypoint.CodeUnavailable},
		{504, waypoint.CodeDeadlineExceeded},
		{507, waypoint.CodeResourceExhausted},
		{509, waypoint.CodeResourceExhausted},
		{301, waypoint.CodeUnknown},
		{418, waypoint.CodeUnknown},
	} {
		require.Equal(t, tc.expected, waypoint.CodeFromHTTP(tc.httpCode), "http %d", tc.httpCode)
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	require.Equal(t, "Http(404) Not Found", waypoint.HTTPErrorMessage(404))
	require.Equal(t, "Http(503) Unavailable", waypoint.HTTPErrorMessage(503))
	require.Equal(t, "Http(418) Unknown", waypoint.HTTPErrorMessage(418))
}

func TestStatusFromHTTP(t *testing.T) {
	// Arrange + Act
	ok := waypoint.StatusFromHTTP(200, "")
	notFound := waypoint.StatusFromHTTP(404, "")
	custom := waypoint.StatusFromHTTP(400, "missing variable")

	// Assert
	require.Nil(t, ok)

	require.Equal(t, waypoint.CodeNotFound, notFound.Code())
	require.Equal(t, "Http(404) Not Found", notFound.Message())

	require.Equal(t, waypoint.CodeInvalidArgument, custom.Code())
	require.Equal(t, "missing variable", custom.Message())
}
