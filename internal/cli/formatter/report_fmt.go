package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/domain"
)

// AnalysisReport renders an analysis result as a scored checklist.
func AnalysisReport(a *domain.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(Header("Analysis"))
	b.WriteString("\n\n")
	b.WriteString(scoreLine("Completeness", a.CompletenessScore))
	b.WriteString(scoreLine("Clarity     ", a.ClarityScore))
	b.WriteString(scoreLine("Structure   ", a.StructureScore))
	b.WriteString(scoreLine("Specificity ", a.SpecificityScore))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("TYPE      "), a.PromptType))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("COMPLEXITY"), a.ComplexityLevel))

	if len(a.MissingElements) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("  Missing:") + "\n")
		for _, m := range a.MissingElements {
			b.WriteString(fmt.Sprintf("    %s %s\n", StyleYellow.Render("•"), m))
		}
	}
	if len(a.ImprovementAreas) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("  Improve:") + "\n")
		for _, m := range a.ImprovementAreas {
			b.WriteString(fmt.Sprintf("    %s %s\n", StyleBlue.Render("•"), m))
		}
	}
	return b.String()
}

func scoreLine(label string, score int) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	bar := strings.Repeat("█", score) + strings.Repeat("░", 10-score)
	return fmt.Sprintf("  %s  %s %s\n",
		Dim(label),
		ScoreStyle(score).Render(bar),
		ScoreStyle(score).Render(fmt.Sprintf("%d/10", score)))
}

// OptimizationReport renders an enhanced prompt with its improvement notes.
func OptimizationReport(o *domain.OptimizationResult) string {
	var b strings.Builder

	b.WriteString(Header("Optimized Prompt"))
	b.WriteString("\n\n")
	b.WriteString(StyleFg.Render(o.EnhancedPrompt))
	b.WriteString("\n")

	if len(o.Improvements) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("  Applied:") + "\n")
		for _, imp := range o.Improvements {
			b.WriteString(fmt.Sprintf("    %s %s\n", StyleGreen.Render("✓"), imp))
		}
	}
	return b.String()
}

// PromptList renders library records as an aligned listing.
func PromptList(records []*domain.PromptRecord) string {
	if len(records) == 0 {
		return Dim("  (library is empty)") + "\n"
	}

	var b strings.Builder
	for _, r := range records {
		b.WriteString(fmt.Sprintf("  %s", Bold(r.Name)))
		if r.Category != "" {
			b.WriteString("  " + StyleBlue.Render(r.Category))
		}
		if len(r.Tags) > 0 {
			b.WriteString("  " + Dim("#"+strings.Join(r.Tags, " #")))
		}
		b.WriteString("  " + Dim(fmt.Sprintf("used %d×", r.UseCount)))
		b.WriteString("\n")
		if r.Description != "" {
			b.WriteString(fmt.Sprintf("    %s\n", Dim(r.Description)))
		}
	}
	return b.String()
}

// TokenUsage renders the advisory context budget line.
func TokenUsage(used, limit int) string {
	pct := 0.0
	if limit > 0 {
		pct = float64(used) / float64(limit) * 100
	}
	style := StyleGreen
	switch {
	case pct >= 90:
		style = StyleRed
	case pct >= 70:
		style = StyleYellow
	}
	return Dim("tokens ") + style.Render(fmt.Sprintf("%d/%d (%.1f%%)", used, limit, pct))
}
