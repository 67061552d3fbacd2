package uri

import "strings"

// segmentOrEmpty joins the two pieces when check holds, else contributes nothing.
func segmentOrEmpty(check bool, first, second string) string {
	if !check {
		return ""
	}

	return first + second
}

// Resolve resolves relativeURL against baseURL per RFC 1808 section 4.
//
// A relativeURL containing ":" is treated as already absolute and returned
// as-is. Resolve returns "" when the merged path backs up past its root.
func Resolve(baseURL, relativeURL string) string {
	// Step 1
	if baseURL == "" {
		return relativeURL
	}

	// Step 2a
	if relativeURL == "" {
		return baseURL
	}

	// Step 2b
	if strings.Contains(relativeURL, ":") {
		return relativeURL
	}

	base := Parse(baseURL)
	rel := Parse(relativeURL)

	// Step 2c
	result := segmentOrEmpty(base.Scheme() != "", base.Scheme(), ":")

	// finish appends the remaining components from the relative URL,
	// starting at the numbered step where resolution stopped consulting
	// the base: 0 netloc, 1 path, 2 params, 3 query, then the fragment.
	finish := func(from int) string {
		if from <= 0 {
			result += segmentOrEmpty(rel.Netloc() != "", "//", rel.Netloc())
		}
		if from <= 1 {
			result += rel.Path()
		}
		if from <= 2 {
			result += segmentOrEmpty(rel.Params() != "", ";", rel.Params())
		}
		if from <= 3 {
			result += segmentOrEmpty(rel.Query() != "", "?", rel.Query())
		}
		result += segmentOrEmpty(rel.Fragment() != "", "#", rel.Fragment())

		return result
	}

	// Step 3
	if rel.Netloc() != "" {
		return finish(0)
	}
	result += segmentOrEmpty(base.Netloc() != "", "//", base.Netloc())

	// Step 4
	if strings.HasPrefix(rel.Path(), "/") {
		return finish(1)
	}

	// Step 5
	if rel.Path() == "" {
		result += base.Path()
		if rel.Params() != "" {
			return finish(2)
		}
		result += segmentOrEmpty(base.Params() != "", ";", base.Params())

		if rel.Query() != "" {
			return finish(3)
		}
		result += segmentOrEmpty(base.Query() != "", "?", base.Query())

		return finish(4)
	}

	// Step 6: merge the base path's directory with the relative path.
	var path string
	if slash := strings.LastIndexByte(base.Path(), '/'); slash >= 0 {
		path = base.Path()[:slash+1]
	}
	path += rel.Path()

	path, ok := foldDotSegments(path)
	if !ok {
		return ""
	}
	result += path

	return finish(2)
}

// foldDotSegments collapses "." and ".." segments out of path per
// RFC 1808 section 4 step 6. It reports false when ".." backs up past
// the start of the path.
func foldDotSegments(path string) (string, bool) {
	// a
	for {
		dot := strings.Index(path, "/./")
		if dot < 0 {
			break
		}
		path = path[:dot] + path[dot+2:]
	}

	// b
	if strings.HasSuffix(path, "/.") {
		path = path[:len(path)-1]
	} else if path == "." {
		path = ""
	}

	// c
	for {
		dotdot := strings.Index(path, "/../")
		if dotdot < 0 {
			break
		}
		if dotdot == 0 {
			return "", false
		}

		slash := strings.LastIndexByte(path[:dotdot], '/')
		if slash < 0 {
			path = path[dotdot+4:]
			continue
		}
		path = path[:slash] + path[dotdot+3:]
	}

	// d
	if strings.HasSuffix(path, "/..") {
		slash := strings.LastIndexByte(path[:len(path)-3], '/')
		if slash < 0 {
			return "", false
		}
		path = path[:slash+1]
	}

	return path, true
}
