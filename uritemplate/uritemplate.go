package uritemplate

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/waypoint"
)

// A Provider resolves one template variable, emitting zero or more values
// into out through [AppendValue], [AppendListFirst] and the other Append
// helpers, and returning nil on success or a descriptive failure.
//
// Expand invokes the Provider once per {expr} in left-to-right order, never
// concurrently within a single expansion. A Provider must be repeatable:
// stateless, or pure with respect to the template being expanded, so hosts
// may safely reuse one Provider across concurrent independent expansions.
type Provider func(name string, cfg Config, out *strings.Builder) error

// Expand resolves every {expr} in tmpl through provider, appending literal
// text and substituted values to out in template order.
//
// Expansion is best-effort. A variable the provider fails on keeps its
// literal {expr} text in the output and expansion continues; Expand then
// returns the last such failure. An unterminated "{" aborts immediately
// with an invalid-argument *waypoint.Status and no guarantee about partial
// output. Callers treating partial expansion as acceptable should discard
// the returned error explicitly.
func Expand(tmpl string, provider Provider, out *strings.Builder) error {
	return expand(tmpl, provider, out, nil)
}

// ExpandVars is [Expand], additionally recording each successfully resolved
// variable name into found. Failed variables are not recorded.
func ExpandVars(tmpl string, provider Provider, out *strings.Builder, found map[string]struct{}) error {
	return expand(tmpl, provider, out, found)
}

func expand(tmpl string, provider Provider, out *strings.Builder, found map[string]struct{}) error {
	// A Provider is required up front, even for templates that turn out
	// to hold no expressions.
	if provider == nil {
		return waypoint.FailedPrecondition("uritemplate: nil Provider")
	}

	var finalErr error
	cur := 0
	for cur < len(tmpl) {
		open := strings.IndexByte(tmpl[cur:], '{')
		if open < 0 {
			out.WriteString(tmpl[cur:])
			return finalErr
		}
		open += cur
		out.WriteString(tmpl[cur:open])

		end := strings.IndexByte(tmpl[open+1:], '}')
		if end < 0 {
			return waypoint.InvalidArgument(
				fmt.Sprintf("malformed variable near %d in %q", open, tmpl))
		}
		end += open + 1

		cfg := makeConfig(tmpl[open+1 : end])
		cur = end + 1

		if err := provider(cfg.Name, cfg, out); err != nil {
			// Remember the last failure and keep the variable
			// reference since we could not resolve it, making a
			// best effort expanding the rest.
			finalErr = err
			out.WriteString(tmpl[open : end+1])
			continue
		}

		if found != nil {
			found[cfg.Name] = struct{}{}
		}
	}

	return finalErr
}
