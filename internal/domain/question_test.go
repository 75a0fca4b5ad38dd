package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswers_Merge_DeltaWins(t *testing.T) {
	base := Answers{"role": "teacher", "format": "json"}
	delta := Answers{"format": "table", "reasoning": true}

	merged := base.Merge(delta)

	assert.Equal(t, "teacher", merged["role"])
	assert.Equal(t, "table", merged["format"])
	assert.Equal(t, true, merged["reasoning"])

	// Merge must not mutate either input.
	assert.Equal(t, "json", base["format"])
	assert.Len(t, delta, 2)
}

func TestAnswers_Merge_Monotonic(t *testing.T) {
	base := Answers{"role": "teacher"}
	merged := base.Merge(Answers{"scope": "beginners"})

	assert.Len(t, merged, 2)
	for k := range base {
		assert.Contains(t, merged, k)
	}
}

func TestAnswers_Has(t *testing.T) {
	a := Answers{
		"role":      "teacher",
		"format":    "",
		"reasoning": true,
		"scope":     false,
		"detail":    42,
	}

	assert.True(t, a.Has("role"))
	assert.False(t, a.Has("format"), "empty string is not a usable answer")
	assert.True(t, a.Has("reasoning"))
	assert.False(t, a.Has("scope"), "false bool is not a usable answer")
	assert.False(t, a.Has("detail"), "non string/bool values are ignored")
	assert.False(t, a.Has("missing"))
}

func TestAnswers_Text(t *testing.T) {
	a := Answers{"role": "teacher", "reasoning": true}
	assert.Equal(t, "teacher", a.Text("role"))
	assert.Empty(t, a.Text("reasoning"))
	assert.Empty(t, a.Text("missing"))
}
