package promptcfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/domain"
)

// Condition is a compiled question-gating predicate evaluated against
// an analysis result. Conditions come from configuration as strings
// ("completeness_score < 7", "complexity_level in ['complex', '複雜']",
// "a OR b") and are parsed once at load time.
type Condition interface {
	Eval(a *domain.AnalysisResult) bool
}

// neverCondition is the fail-closed compilation target for malformed
// condition strings: a question whose condition cannot be parsed is
// never asked.
type neverCondition struct{}

func (neverCondition) Eval(*domain.AnalysisResult) bool { return false }

// orCondition is true when any sub-condition is true, left to right.
type orCondition struct {
	subs []Condition
}

func (c orCondition) Eval(a *domain.AnalysisResult) bool {
	for _, sub := range c.subs {
		if sub.Eval(a) {
			return true
		}
	}
	return false
}

// lessCondition compares a score field against an integer threshold.
// Unknown fields evaluate to false.
type lessCondition struct {
	field     string
	threshold int
}

func (c lessCondition) Eval(a *domain.AnalysisResult) bool {
	score, ok := a.Score(c.field)
	if !ok {
		return false
	}
	return score < c.threshold
}

// inCondition tests whether a label field matches any listed literal.
type inCondition struct {
	field  string
	values []string
}

func (c inCondition) Eval(a *domain.AnalysisResult) bool {
	label, ok := a.Label(c.field)
	if !ok {
		return false
	}
	for _, v := range c.values {
		if label == v {
			return true
		}
	}
	return false
}

// CompileCondition parses expr into a Condition, substituting the
// never-true condition for anything it cannot parse.
func CompileCondition(expr string) Condition {
	cond, err := ParseCondition(expr)
	if err != nil {
		return neverCondition{}
	}
	return cond
}

// ParseCondition parses the condition mini-language. Grammar:
//
//	cond   := clause { "OR" clause }
//	clause := field "<" int | field "in" "[" literal {"," literal} "]"
//
// There is no operator precedence beyond OR over clauses.
func ParseCondition(expr string) (Condition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty condition")
	}

	parts := strings.Split(expr, " OR ")
	if len(parts) == 1 {
		return parseClause(parts[0])
	}

	subs := make([]Condition, 0, len(parts))
	for _, part := range parts {
		sub, err := parseClause(part)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return orCondition{subs: subs}, nil
}

func parseClause(clause string) (Condition, error) {
	clause = strings.TrimSpace(clause)

	if lhs, rhs, ok := strings.Cut(clause, "<"); ok {
		field := strings.TrimSpace(lhs)
		if !isFieldName(field) {
			return nil, fmt.Errorf("invalid field name %q", field)
		}
		threshold, err := strconv.Atoi(strings.TrimSpace(rhs))
		if err != nil {
			return nil, fmt.Errorf("invalid threshold in %q: %w", clause, err)
		}
		return lessCondition{field: field, threshold: threshold}, nil
	}

	if lhs, rhs, ok := strings.Cut(clause, " in "); ok {
		field := strings.TrimSpace(lhs)
		if !isFieldName(field) {
			return nil, fmt.Errorf("invalid field name %q", field)
		}
		values, err := parseLiteralList(strings.TrimSpace(rhs))
		if err != nil {
			return nil, fmt.Errorf("invalid literal list in %q: %w", clause, err)
		}
		return inCondition{field: field, values: values}, nil
	}

	return nil, fmt.Errorf("unrecognized condition clause %q", clause)
}

// parseLiteralList parses ['a', 'b', ...] with single- or double-quoted
// string literals.
func parseLiteralList(s string) ([]string, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("expected bracketed list")
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil, fmt.Errorf("empty list")
	}

	var values []string
	for _, item := range strings.Split(inner, ",") {
		item = strings.TrimSpace(item)
		if len(item) < 2 {
			return nil, fmt.Errorf("bad literal %q", item)
		}
		quote := item[0]
		if (quote != '\'' && quote != '"') || item[len(item)-1] != quote {
			return nil, fmt.Errorf("bad literal %q", item)
		}
		values = append(values, item[1:len(item)-1])
	}
	return values, nil
}

func isFieldName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
