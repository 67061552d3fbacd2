package uri

import (
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/escape"
)

// A QueryParameterAssignment is one name=value pair from a query string.
// Value holds the percent-decoded text.
type QueryParameterAssignment struct {
	Name  string
	Value string
}

// A Parsed is a URL broken into the components of RFC 1808 section 2.4.
//
// Components hold the raw text from the URL with their delimiters stripped;
// only query parameter values read through [Parsed.QueryParameter] or
// [Parsed.QueryParameterAssignments] are percent-decoded.
type Parsed struct {
	url      string
	scheme   string
	netloc   string
	path     string
	params   string
	query    string
	fragment string

	assignments []QueryParameterAssignment
	valid       bool
}

// Parse splits url into its components.
//
// Parse never fails outright; a url whose query parameters carry malformed
// percent escapes produces a Parsed whose Valid reports the problem.
func Parse(url string) Parsed {
	p := Parsed{url: url, path: url, valid: true}

	// Section 2.4.1
	if hash := strings.IndexByte(p.path, '#'); hash >= 0 && hash != len(p.path)-1 {
		p.fragment = p.path[hash+1:]
		p.path = p.path[:hash]
	}

	// Section 2.4.2
	if colon := strings.IndexByte(p.path, ':'); colon >= 0 {
		p.scheme = p.path[:colon]
		p.path = p.path[colon+1:]
	}

	// Section 2.4.3. The spec just mentions the slash (for the path) but
	// we'll look for the other component separators as well so we can
	// handle things like scheme://netloc?query. The scan skips the first
	// character after "//" so scheme:///path keeps "/path" as its netloc.
	if strings.HasPrefix(p.path, "//") {
		rest := p.path[2:]
		slash := -1
		if len(rest) > 1 {
			if i := strings.IndexAny(rest[1:], "/;?#"); i >= 0 {
				slash = i + 1
			}
		}
		if slash >= 0 {
			p.netloc = rest[:slash]
			p.path = rest[slash:]
		} else {
			p.netloc = rest
			p.path = ""
		}
	}

	// Section 2.4.4
	if question := strings.IndexByte(p.path, '?'); question >= 0 {
		p.query = p.path[question+1:]
		p.path = p.path[:question]
	}

	// Section 2.4.5
	if semi := strings.IndexByte(p.path, ';'); semi >= 0 {
		p.params = p.path[semi+1:]
		p.path = p.path[:semi]
	}

	p.assignments, p.valid = splitQuery(p.query)

	return p
}

func (p Parsed) URL() string      { return p.url }
func (p Parsed) Scheme() string   { return p.scheme }
func (p Parsed) Netloc() string   { return p.netloc }
func (p Parsed) Path() string     { return p.path }
func (p Parsed) Params() string   { return p.params }
func (p Parsed) Query() string    { return p.query }
func (p Parsed) Fragment() string { return p.fragment }

// Valid asserts whether every query parameter value percent-decoded cleanly.
func (p Parsed) Valid() error {
	if !p.valid {
		return waypoint.ErrNotValid
	}

	return nil
}

// QueryParameterAssignments lists the query parameters in the order they
// appear in the URL. Repeated names are listed repeatedly.
func (p Parsed) QueryParameterAssignments() []QueryParameterAssignment {
	return p.assignments
}

// QueryParameter retrieves the decoded value of the first query parameter
// with the given name, and whether the name was present at all.
func (p Parsed) QueryParameter(name string) (string, bool) {
	for _, qpa := range p.assignments {
		if qpa.Name == name {
			return qpa.Value, true
		}
	}

	return "", false
}

// splitQuery breaks a raw query string on "&" into assignments,
// percent-decoding values. A parameter without "=" carries an empty value.
func splitQuery(query string) ([]QueryParameterAssignment, bool) {
	if query == "" {
		return nil, true
	}

	valid := true
	parts := strings.Split(query, "&")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	assignments := make([]QueryParameterAssignment, 0, len(parts))
	for _, part := range parts {
		name, rawVal, found := strings.Cut(part, "=")
		if !found {
			assignments = append(assignments, QueryParameterAssignment{Name: part})
			continue
		}

		val, err := escape.Unescape(rawVal)
		if err != nil {
			valid = false
		}
		assignments = append(assignments, QueryParameterAssignment{Name: name, Value: val})
	}

	return assignments, valid
}

// JoinPath appends path to base, deduplicating or inserting the "/"
// between them as needed.
func JoinPath(base, path string) string {
	if base == "" {
		return path
	}
	if path == "" {
		return base
	}

	baseHasSlash := base[len(base)-1] == '/'
	pathHasSlash := path[0] == '/'
	switch {
	case baseHasSlash != pathHasSlash:
		return base + path
	case pathHasSlash:
		return base + path[1:]
	default:
		return base + "/" + path
	}
}
