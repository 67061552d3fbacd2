package waypoint_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestCodeEnumerable(t *testing.T) {
	for _, tc := range []struct {
		input    waypoint.Code
		expected string
	}{
		{waypoint.CodeOK, "OK"},
		{waypoint.CodeCancelled, "CANCELLED"},
		{waypoint.CodeUnknown, "UNKNOWN"},
		{waypoint.CodeInvalidArgument, "INVALID_ARGUMENT"},
		{waypoint.CodeDeadlineExceeded, "DEADLINE_EXCEEDED"},
		{waypoint.CodeNotFound, "NOT_FOUND"},
		{waypoint.CodeAlreadyExists, "ALREADY_EXISTS"},
		{waypoint.CodePermissionDenied, "PERMISSION_DENIED"},
		{waypoint.CodeResourceExhausted, "RESOURCE_EXHAUSTED"},
		{waypoint.CodeFailedPrecondition, "FAILED_PRECONDITION"},
		{waypoint.CodeAborted, "ABORTED"},
		{waypoint.CodeOutOfRange, "OUT_OF_RANGE"},
		{waypoint.CodeUnimplemented, "UNIMPLEMENTED"},
		{waypoint.CodeInternal, "INTERNAL"},
		{waypoint.CodeUnavailable, "UNAVAILABLE"},
		{waypoint.CodeDataLoss, "DATA_LOSS"},
	} {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.input.String())
			require.Nil(t, tc.input.Valid())
		})
	}

	require.ErrorIs(t, waypoint.Code(-1).Valid(), waypoint.ErrNotValid)
	require.ErrorIs(t, waypoint.Code(99).Valid(), waypoint.ErrNotValid)
}

func TestStatusError(t *testing.T) {
	// Arrange
	err := waypoint.InvalidArgument("bad template")

	// Assert
	require.Equal(t, waypoint.CodeInvalidArgument, err.Code())
	require.Equal(t, "bad template", err.Message())
	require.Contains(t, err.Error(), "INVALID_ARGUMENT")
	require.Contains(t, err.Error(), "bad template")
}

func TestStatusIsMatchesByCode(t *testing.T) {
	// Arrange
	err := fmt.Errorf("wrapped: %w", waypoint.NotFound("no such variable"))

	// Assert
	require.True(t, errors.Is(err, waypoint.NotFound("different message")))
	require.False(t, errors.Is(err, waypoint.Internal("no such variable")))
}

func TestStatusCode(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    error
		expected waypoint.Code
	}{
		{"Nil", nil, waypoint.CodeOK},
		{"Status", waypoint.Aborted("gone"), waypoint.CodeAborted},
		{"Wrapped", fmt.Errorf("outer: %w", waypoint.Unavailable("down")), waypoint.CodeUnavailable},
		{"Plain-Error", errors.New("plain"), waypoint.CodeUnknown},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, waypoint.StatusCode(tc.input))
		})
	}
}
