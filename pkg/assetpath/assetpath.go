// Package assetpath provides the filename helpers used to derive model and
// material names from paths.
//
// The helpers deliberately keep string semantics rather than path algebra:
// a stem is everything in the last segment before the FIRST dot, and the
// containing directory is computed by removing the last segment text from
// the whole path. Texture matching depends on these exact rules.
package assetpath

import "strings"

// segments is a file-system or virtual path split on its separators.
type segments []string

// split splits p on "/" after converting backslashes.
func split(p string) segments {
	return strings.Split(strings.ReplaceAll(p, `\`, "/"), "/")
}

func (s segments) base() string {
	return s[len(s)-1]
}

// Stem returns the last path segment truncated at its first dot.
// "C:\models\Chair.v2.obj" yields "Chair".
func Stem(p string) string {
	base := split(p).base()
	name, _, _ := strings.Cut(base, ".")
	return name
}

// Extension returns the piece of the last segment between its first and
// second dot, or "" when the segment has no dot. Backslashes are not
// treated as separators here.
func Extension(p string) string {
	parts := strings.Split(p, "/")
	pieces := strings.Split(parts[len(parts)-1], ".")
	if len(pieces) < 2 {
		return ""
	}
	return pieces[1]
}

// ContainingDir removes every occurrence of the last segment from p.
// For "/src/Chair.obj" this is "/src/"; a segment value that also appears
// earlier in the path is stripped there too.
func ContainingDir(p string) string {
	parts := strings.Split(p, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return p
	}
	return strings.ReplaceAll(p, last, "")
}

// Join joins virtual path elements with "/", skipping empty elements and
// collapsing duplicate separators at the joints.
func Join(elem ...string) string {
	var b strings.Builder
	for _, e := range elem {
		if e == "" {
			continue
		}
		if b.Len() > 0 {
			if !strings.HasSuffix(b.String(), "/") {
				b.WriteByte('/')
			}
			e = strings.TrimLeft(e, "/")
		}
		b.WriteString(e)
	}
	return b.String()
}
