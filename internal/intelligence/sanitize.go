package intelligence

import "strings"

// SanitizeUserText neutralizes the delimiters our templates use before
// user text is embedded inside them: angle-bracket tags are converted
// to full-width brackets and backtick fences are collapsed. This is a
// best-effort boundary against prompt injection via user input, not a
// guarantee; template sections remain a known-weak trust boundary.
func SanitizeUserText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	backticks := 0
	for _, r := range text {
		if r == '`' {
			backticks++
			if backticks > 1 {
				continue
			}
		} else {
			backticks = 0
		}

		switch r {
		case '<':
			b.WriteRune('＜')
		case '>':
			b.WriteRune('＞')
		case 0:
			// drop NUL
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
