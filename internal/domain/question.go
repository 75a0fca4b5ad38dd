package domain

// QuestionOption is one choice of a select-type question.
type QuestionOption struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// Question is a clarifying question generated from an analysis result.
// Type doubles as the slot key under which the answer is stored.
type Question struct {
	Question   string           `json:"question"`
	Type       string           `json:"type"`
	Input      QuestionInput    `json:"input"`
	Priority   int              `json:"priority"`
	Options    []QuestionOption `json:"options,omitempty"`
	DefaultKey string           `json:"default_key,omitempty"`
}

// Answers maps slot keys to answer values. Values are strings for
// text/select questions and bools for confirm questions.
type Answers map[string]any

// Merge returns a copy of a with every entry of delta applied on top.
// Keys present in both maps take delta's value; nothing is removed.
func (a Answers) Merge(delta Answers) Answers {
	merged := make(Answers, len(a)+len(delta))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range delta {
		merged[k] = v
	}
	return merged
}

// Has reports whether slot key holds a usable value: a non-empty string
// or a true bool.
func (a Answers) Has(key string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	switch val := v.(type) {
	case string:
		return val != ""
	case bool:
		return val
	default:
		return false
	}
}

// Text returns the string value of slot key, or "" when absent or non-string.
func (a Answers) Text(key string) string {
	if s, ok := a[key].(string); ok {
		return s
	}
	return ""
}
