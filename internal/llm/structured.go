package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type Validator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw backend text.
// Models wrap JSON in markdown fences, prose, and stray comments; this
// strips fences, locates the first balanced { ... } block, and as a
// last resort takes the span from the first '{' to the last '}'.
// If validator is non-nil, the extracted value is validated before return.
func ExtractJSON[T any](raw string, validator Validator[T]) (T, error) {
	var zero T

	cleaned := stripCodeFences(raw)

	candidates := []string{}
	if block := balancedJSONBlock(cleaned); block != "" {
		candidates = append(candidates, block)
	}
	if span := outerBraceSpan(cleaned); span != "" {
		candidates = append(candidates, span)
	}
	if len(candidates) == 0 {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var lastErr error
	for _, candidate := range candidates {
		var result T
		if err := json.Unmarshal([]byte(stripJSONComments(candidate)), &result); err != nil {
			lastErr = err
			continue
		}
		if validator != nil {
			if err := validator(result); err != nil {
				lastErr = fmt.Errorf("validation failed: %v", err)
				continue
			}
		}
		return result, nil
	}

	return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, lastErr)
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var result []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// balancedJSONBlock finds the first balanced { ... } block in the text,
// respecting string literals and escapes.
func balancedJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// outerBraceSpan returns the span from the first '{' to the last '}',
// the crude fallback for truncated or unbalanced output.
func outerBraceSpan(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// stripJSONComments removes C-style comments outside of JSON string
// values. Models sometimes emit comments despite instructions not to.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}
		if inString {
			b.WriteByte(c)
			continue
		}

		// Line comment: skip to end of line
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment: skip to closing */
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}
