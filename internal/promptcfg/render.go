package promptcfg

import "strings"

// RenderTemplate replaces {name} placeholders with values from vars.
// Unknown placeholders are left intact so misconfigured templates stay
// visible instead of silently losing text. "{{" escapes a literal brace.
func RenderTemplate(tmpl string, vars map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	i := 0
	for i < len(tmpl) {
		c := tmpl[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '{' {
			b.WriteByte('{')
			i += 2
			continue
		}

		end := strings.IndexByte(tmpl[i:], '}')
		if end == -1 {
			b.WriteString(tmpl[i:])
			break
		}
		name := tmpl[i+1 : i+end]
		if val, ok := vars[name]; ok {
			b.WriteString(val)
		} else {
			b.WriteString(tmpl[i : i+end+1])
		}
		i += end + 1
	}

	return b.String()
}
