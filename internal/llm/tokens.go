package llm

import "unicode"

// EstimateTokens approximates the token count of text when the backend
// reports no usage. Roughly four ASCII characters per token; CJK
// characters count as one token each, which matches how most tokenizers
// treat them.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	ascii := 0
	wide := 0
	for _, r := range text {
		if r < 128 {
			ascii++
		} else if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			wide++
		} else {
			ascii += 2
		}
	}
	n := ascii/4 + wide
	if n == 0 {
		n = 1
	}
	return n
}
