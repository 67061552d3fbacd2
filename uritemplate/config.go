package uritemplate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xy-planning-network/waypoint/escape"
)

// nonExplodeJoiner separates values collapsed into a single substitution,
// regardless of operator.
const nonExplodeJoiner = ","

// A Config describes how one {expr} expression emits its values:
// what to write before the first value, how to join subsequent ones,
// whether each value needs a "name=" assignment, and which escaping mode
// applies. Expand constructs one per expression and passes it through the
// Provider back to the Append helpers.
type Config struct {
	// Name is the bare variable name, operator sigil and explode
	// decorators stripped.
	Name string

	// Prefix is emitted once before the first substituted value.
	Prefix string

	// Joiner separates substituted values when exploding.
	Joiner string

	// RequiresAssignment marks operators whose substitutions are
	// name=value pairs rather than bare values.
	RequiresAssignment bool

	// Reserved selects reserved-expansion escaping, which passes
	// RFC 3986 reserved characters through unencoded.
	Reserved bool

	// Explode is set when the expression ends in "*".
	Explode bool
}

// makeConfig resolves the raw text between braces into the operator Config
// it selects, with the bare variable name in Config.Name.
func makeConfig(expr string) Config {
	explode := strings.HasSuffix(expr, "*")
	expr = strings.TrimSuffix(expr, "*")

	var cfg Config
	if expr == "" {
		return Config{Joiner: nonExplodeJoiner, Explode: explode}
	}

	name := expr[1:]
	switch expr[0] {
	// Reserved expansion.
	case '+':
		cfg = Config{Joiner: ",", Reserved: true}

	// Fragment expansion.
	case '#':
		cfg = Config{Prefix: "#", Joiner: ",", Reserved: true}

	// Label with dot-prefix.
	case '.':
		cfg = Config{Prefix: ".", Joiner: "."}

	// Path segment expansion.
	case '/':
		cfg = Config{Prefix: "/", Joiner: "/"}

	// Path segment parameter expansion.
	case ';':
		cfg = Config{Prefix: ";", Joiner: ";", RequiresAssignment: true}

	// Form-style query expansion.
	case '?':
		cfg = Config{Prefix: "?", Joiner: "&", RequiresAssignment: true}

	// Form-style query continuation.
	case '&':
		cfg = Config{Prefix: "&", Joiner: "&", RequiresAssignment: true}

	// Simple expansion.
	default:
		cfg = Config{Joiner: ","}
		name = expr
	}

	cfg.Name = name
	cfg.Explode = explode

	return cfg
}

// joiner resolves the separator between substituted values:
// the operator's own when exploding, otherwise the fixed ",".
func (c Config) joiner() string {
	if c.Explode {
		return c.Joiner
	}

	return nonExplodeJoiner
}

// appendEscaped is the single escaping entry point for substituted text.
func (c Config) appendEscaped(value string, out *strings.Builder) {
	if c.Reserved {
		out.WriteString(escape.ReservedExpansion(value))
		return
	}

	out.WriteString(escape.URL(value))
}

// appendAssignment emits the escaped variable name and "=".
func (c Config) appendAssignment(out *strings.Builder) {
	out.WriteString(escape.URL(c.Name))
	out.WriteByte('=')
}

// appendKeyValue emits one map entry: key=value when exploding,
// key,value when collapsed.
func (c Config) appendKeyValue(key, value string, out *strings.Builder) {
	c.appendEscaped(key, out)
	if c.Explode {
		out.WriteByte('=')
	} else {
		out.WriteString(nonExplodeJoiner)
	}
	c.appendEscaped(value, out)
}

// AppendValue escapes a scalar per cfg and appends it to out.
// Values that are not strings are first formatted to their canonical
// decimal text.
func AppendValue(value any, cfg Config, out *strings.Builder) {
	cfg.appendEscaped(formatScalar(value), out)
}

// AppendListFirst appends the first element of a list value,
// led by the operator's prefix and, where required, a "name=" assignment.
func AppendListFirst(value string, cfg Config, out *strings.Builder) {
	out.WriteString(cfg.Prefix)
	if cfg.RequiresAssignment {
		cfg.appendAssignment(out)
	}
	cfg.appendEscaped(value, out)
}

// AppendListNext appends a subsequent list element, joined to the previous
// one and, when exploding an assignment operator, led by its own "name=".
func AppendListNext(value string, cfg Config, out *strings.Builder) {
	out.WriteString(cfg.joiner())
	if cfg.Explode && cfg.RequiresAssignment {
		cfg.appendAssignment(out)
	}
	cfg.appendEscaped(value, out)
}

// AppendMapFirst appends the first entry of a map value.
// Collapsed assignment operators emit "name=" once here; exploded ones
// emit each key as its own assignment instead.
func AppendMapFirst(key, value string, cfg Config, out *strings.Builder) {
	out.WriteString(cfg.Prefix)
	if !cfg.Explode && cfg.RequiresAssignment {
		cfg.appendAssignment(out)
	}
	cfg.appendKeyValue(key, value, out)
}

// AppendMapNext appends a subsequent map entry joined to the previous one.
func AppendMapNext(key, value string, cfg Config, out *strings.Builder) {
	out.WriteString(cfg.joiner())
	cfg.appendKeyValue(key, value, out)
}

// formatScalar renders a non-string scalar as canonical decimal text.
func formatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
