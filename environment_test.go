package waypoint_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		input waypoint.Environment
		valid bool
	}{
		{waypoint.Development, true},
		{waypoint.Production, true},
		{waypoint.Staging, true},
		{waypoint.Testing, true},
		{waypoint.Environment("QA"), false},
		{waypoint.Environment(""), false},
	} {
		t.Run(tc.input.String(), func(t *testing.T) {
			err := tc.input.Valid()
			if tc.valid {
				require.Nil(t, err)
				return
			}
			require.ErrorIs(t, err, waypoint.ErrNotValid)
		})
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	require.True(t, waypoint.Development.IsDevelopment())
	require.True(t, waypoint.Production.IsProduction())
	require.True(t, waypoint.Staging.IsStaging())
	require.True(t, waypoint.Testing.IsTesting())
	require.False(t, waypoint.Testing.IsProduction())
}

func TestEnvVarOrBool(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_BOOL", "TRUE")
	require.True(t, waypoint.EnvVarOrBool("WAYPOINT_TEST_BOOL", false))
	require.False(t, waypoint.EnvVarOrBool("WAYPOINT_TEST_UNSET", false))
}

func TestEnvVarOrDuration(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_DURATION", "90s")
	require.Equal(t, 90*time.Second, waypoint.EnvVarOrDuration("WAYPOINT_TEST_DURATION", time.Minute))
	require.Equal(t, time.Minute, waypoint.EnvVarOrDuration("WAYPOINT_TEST_UNSET", time.Minute))
}

func TestEnvVarOrEnv(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_ENV", "staging")
	require.Equal(t, waypoint.Staging, waypoint.EnvVarOrEnv("WAYPOINT_TEST_ENV", waypoint.Development))

	t.Setenv("WAYPOINT_TEST_ENV", "not-an-env")
	require.Equal(t, waypoint.Development, waypoint.EnvVarOrEnv("WAYPOINT_TEST_ENV", waypoint.Development))
}

func TestEnvVarOrInt(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_INT", "8081")
	require.Equal(t, 8081, waypoint.EnvVarOrInt("WAYPOINT_TEST_INT", 8080))

	t.Setenv("WAYPOINT_TEST_INT", "not-a-number")
	require.Equal(t, 8080, waypoint.EnvVarOrInt("WAYPOINT_TEST_INT", 8080))
}

func TestEnvVarOrString(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_STRING", "custom")
	require.Equal(t, "custom", waypoint.EnvVarOrString("WAYPOINT_TEST_STRING", "default"))
	require.Equal(t, "default", waypoint.EnvVarOrString("WAYPOINT_TEST_UNSET", "default"))
}

func TestEnvVarOrURL(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_URL", "https://example.com/base")
	require.Equal(t, "https://example.com/base", waypoint.EnvVarOrURL("WAYPOINT_TEST_URL", "http://localhost:8080").String())
	// the default URL gets a root path when it lacks one
	require.Equal(t, "http://localhost:8080/", waypoint.EnvVarOrURL("WAYPOINT_TEST_UNSET", "http://localhost:8080").String())
}
