package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/cli/formatter"
	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/flow"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newOptimizeCmd(app *App) *cobra.Command {
	var (
		file      string
		role      string
		format    string
		detail    string
		scope     string
		reasoning bool
		saveName  string
		noInput   bool
	)

	cmd := &cobra.Command{
		Use:   "optimize [prompt]",
		Short: "Analyze a prompt and produce an optimized version",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			promptText, err := readPromptArg(args, file)
			if err != nil {
				return err
			}

			ctx := context.Background()
			session := domain.NewSession("")
			controller := flow.NewController(session, app.Client, app.Store, app.Language)

			spin := formatter.NewSpinner("analyzing prompt...")
			spin.Start()
			turn := controller.HandleInitialPrompt(ctx, promptText)
			spin.Stop()

			if err := turn.Err(); err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			fmt.Println(formatter.AnalysisReport(turn.Analysis.Analysis))

			answers := answersFromFlags(cmd.Flags(), role, format, detail, scope, reasoning)
			pending := session.PendingQuestions

			if len(pending) > 0 && len(answers) == 0 && !noInput && app.IsInteractive() {
				answers, err = askQuestions(pending)
				if err != nil {
					return fmt.Errorf("collecting answers: %w", err)
				}
			}

			spin = formatter.NewSpinner("optimizing prompt...")
			spin.Start()
			turn, err = controller.HandleQuestionsResponse(ctx, answers)
			spin.Stop()
			if err != nil {
				return err
			}
			if stepErr := turn.Err(); stepErr != nil {
				return fmt.Errorf("optimization failed: %w", stepErr)
			}

			fmt.Println(formatter.OptimizationReport(turn.Optimization.Result))
			fmt.Println("  " + formatter.TokenUsage(session.CurrentContextTokens, session.ContextWindowLimit))

			if saveName != "" {
				record := domain.NewPromptRecord(saveName, session.CurrentPrompt)
				record.Description = firstLine(session.OriginalPrompt)
				if err := app.Library.Save(ctx, record); err != nil {
					return fmt.Errorf("saving to library: %w", err)
				}
				fmt.Printf("\nSaved as %s\n", formatter.Bold(saveName))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the prompt from a file instead of the argument")
	cmd.Flags().StringVar(&role, "role", "", "Answer for the role question")
	cmd.Flags().StringVar(&format, "format", "", "Answer for the output format question (json|list|paragraph|table)")
	cmd.Flags().StringVar(&detail, "detail", "", "Answer for the detail/tone question")
	cmd.Flags().StringVar(&scope, "scope", "", "Answer for the scope question")
	cmd.Flags().BoolVar(&reasoning, "reasoning", false, "Request step-by-step reasoning")
	cmd.Flags().StringVar(&saveName, "save", "", "Save the optimized prompt to the library under this name")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt for answers; optimize with what is given")

	return cmd
}

func readPromptArg(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading prompt file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return "", fmt.Errorf("a prompt argument or --file is required")
}

// answersFromFlags collects only the answer flags the user actually set.
func answersFromFlags(flags *pflag.FlagSet, role, format, detail, scope string, reasoning bool) domain.Answers {
	answers := domain.Answers{}
	if role != "" {
		answers[domain.SlotRole] = role
	}
	if format != "" {
		answers[domain.SlotFormat] = format
	}
	if detail != "" {
		answers[domain.SlotDetail] = detail
	}
	if scope != "" {
		answers[domain.SlotScope] = scope
	}
	if flags.Changed("reasoning") {
		answers[domain.SlotReasoning] = reasoning
	}
	return answers
}

// askQuestions renders the pending questions as a huh form and returns
// the collected answers. Blank text answers are omitted.
func askQuestions(questions []domain.Question) (domain.Answers, error) {
	texts := make([]string, len(questions))
	selects := make([]string, len(questions))
	bools := make([]bool, len(questions))

	var fields []huh.Field
	for i, q := range questions {
		switch q.Input {
		case domain.InputSelect:
			options := make([]huh.Option[string], 0, len(q.Options))
			for _, opt := range q.Options {
				options = append(options, huh.NewOption(opt.Label, opt.Key))
			}
			if q.DefaultKey != "" {
				selects[i] = q.DefaultKey
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(q.Question).
				Options(options...).
				Value(&selects[i]))
		case domain.InputBool:
			fields = append(fields, huh.NewConfirm().
				Title(q.Question).
				Value(&bools[i]))
		default:
			fields = append(fields, huh.NewInput().
				Title(q.Question).
				Placeholder("(leave blank to skip)").
				Value(&texts[i]))
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(smithHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	answers := domain.Answers{}
	for i, q := range questions {
		switch q.Input {
		case domain.InputSelect:
			if selects[i] != "" {
				answers[q.Type] = selects[i]
			}
		case domain.InputBool:
			answers[q.Type] = bools[i]
		default:
			if text := strings.TrimSpace(texts[i]); text != "" {
				answers[q.Type] = text
			}
		}
	}
	return answers, nil
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if runes := []rune(text); len(runes) > 120 {
		text = string(runes[:120])
	}
	return text
}
