package escape_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/escape"
)

func TestURL(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		output string
	}{
		{"Zero", "", ""},
		{"Unreserved", "AZaz09-._~", "AZaz09-._~"},
		{"Space", "i/am a/path", "i%2Fam%20a%2Fpath"},
		{"Reserved", ":/?#[]@", "%3A%2F%3F%23%5B%5D%40"},
		{"Sub-Delims", "!$&'()*+,;=", "%21%24%26%27%28%29%2A%2B%2C%3B%3D"},
		{"Percent", "100%", "100%25"},
		{"UTF-8", "über", "%C3%BCber"},
		{"NUL", "a\x00b", "a%00b"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.output, escape.URL(tc.input))
		})
	}
}

func TestReservedExpansion(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		output string
	}{
		{"Zero", "", ""},
		{"Path", "i/am a/path", "i/am%20a/path"},
		{"Reserved", ":/?#[]@!$&'()*+,;=", ":/?#[]@!$&'()*+,;="},
		{"Percent", "100%", "100%25"},
		{"Space-And-Quote", `a "b"`, "a%20%22b%22"},
		{"UTF-8", "über", "%C3%BCber"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.output, escape.ReservedExpansion(tc.input))
		})
	}
}

func TestUnescape(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		output string
		err    error
	}{
		{"Zero", "", "", nil},
		{"Plain", "abc", "abc", nil},
		{"Escaped", "i%2Fam%20a%2Fpath", "i/am a/path", nil},
		{"Lowercase-Hex", "%2f", "/", nil},
		{"NUL", "a%00b", "a\x00b", nil},
		{"Truncated-One", "abc%2", "", waypoint.InvalidArgument("")},
		{"Truncated-Zero", "abc%", "", waypoint.InvalidArgument("")},
		{"Non-Hex", "%ZZ", "", waypoint.InvalidArgument("")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := escape.Unescape(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.output, actual)
		})
	}
}

func TestPercentRoundTrip(t *testing.T) {
	for _, tc := range []string{
		"",
		"plain",
		"i/am a/path",
		"\x00\x01\x02\xff\xfe",
		"über & Unter?",
		":/?#[]@!$&'()*+,;=",
	} {
		t.Run("URL", func(t *testing.T) {
			actual, err := escape.Unescape(escape.URL(tc))
			require.NoError(t, err)
			require.Equal(t, tc, actual)
		})

		t.Run("ReservedExpansion", func(t *testing.T) {
			actual, err := escape.Unescape(escape.ReservedExpansion(tc))
			require.NoError(t, err)
			require.Equal(t, tc, actual)
		})
	}
}
