package placeholder

import "strings"

// Render replaces every placeholder whose name is present in vars with its value.
// Placeholders without a matching key are left verbatim, delimiters included.
// Values are inserted as given and never rescanned.
func Render(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}

	var b strings.Builder
	last := 0
	for m := range Scan(tmpl) {
		value, ok := vars[m.Name]
		if !ok {
			continue
		}
		if last == 0 {
			b.Grow(len(tmpl))
		}
		b.WriteString(tmpl[last:m.Start])
		b.WriteString(value)
		last = m.End
	}

	if last == 0 {
		return tmpl
	}
	b.WriteString(tmpl[last:])
	return b.String()
}
