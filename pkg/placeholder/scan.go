package placeholder

import (
	"iter"
	"strings"
)

const (
	openDelim  = "${"
	closeDelim = '}'
)

// Match is a well-formed placeholder occurrence.
// Start and End are byte offsets of the whole marker, delimiters included; End is exclusive.
type Match struct {
	Name  string
	Start int
	End   int
}

// Scan yields every well-formed placeholder in tmpl from left to right.
// Matches never overlap. Malformed markers are skipped.
func Scan(tmpl string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(tmpl) {
			idx := strings.Index(tmpl[pos:], openDelim)
			if idx < 0 {
				return
			}
			start := pos + idx
			nameStart := start + len(openDelim)

			end := nameStart
			for end < len(tmpl) && isNameByte(tmpl[end]) {
				end++
			}

			if end == nameStart || end >= len(tmpl) || tmpl[end] != closeDelim {
				// Not a placeholder; the next opener may start inside this one ("${${x}").
				pos = start + 1
				continue
			}

			if !yield(Match{Name: tmpl[nameStart:end], Start: start, End: end + 1}) {
				return
			}
			pos = end + 1
		}
	}
}

// Names returns the distinct placeholder names in tmpl in order of first appearance.
func Names(tmpl string) []string {
	var names []string
	seen := make(map[string]struct{})
	for m := range Scan(tmpl) {
		if _, ok := seen[m.Name]; ok {
			continue
		}
		seen[m.Name] = struct{}{}
		names = append(names, m.Name)
	}
	return names
}

// IsValidName reports whether name can be used inside a placeholder.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
