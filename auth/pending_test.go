package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/auth"
)

func TestPendingAuthorizationsAddFindAndRemove(t *testing.T) {
	// Arrange
	p := auth.NewPendingAuthorizations()

	var got string
	first := p.Add(func(code string, err error) { got = code })
	second := p.Add(func(code string, err error) {})

	require.NotEqual(t, first, second)

	// Act
	handler, ok := p.FindAndRemove(first)

	// Assert
	require.True(t, ok)
	handler("4/abc", nil)
	require.Equal(t, "4/abc", got)

	// Act: a handler comes back at most once
	_, ok = p.FindAndRemove(first)

	// Assert
	require.False(t, ok)
}

func TestPendingAuthorizationsUnknownState(t *testing.T) {
	// Arrange
	p := auth.NewPendingAuthorizations()

	// Act
	handler, ok := p.FindAndRemove(42)

	// Assert
	require.False(t, ok)
	require.Nil(t, handler)
}

func TestPendingAuthorizationsClose(t *testing.T) {
	// Arrange
	p := auth.NewPendingAuthorizations()

	var codes []string
	var errs []error
	callback := func(code string, err error) {
		codes = append(codes, code)
		errs = append(errs, err)
	}
	first := p.Add(callback)
	p.Add(callback)

	// Act
	p.Close()

	// Assert
	require.Len(t, codes, 2)
	require.Equal(t, []string{"", ""}, codes)
	for _, err := range errs {
		require.Equal(t, waypoint.CodeCancelled, waypoint.StatusCode(err))
	}

	// Act: closed handlers are gone
	_, ok := p.FindAndRemove(first)

	// Assert
	require.False(t, ok)
}
