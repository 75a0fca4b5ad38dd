package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/promptsmith/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage saved chat sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionDeleteCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved session ids, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.Sessions.ListIDs(context.Background())
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Println(formatter.Dim("  (no saved sessions)"))
				return nil
			}
			for _, id := range ids {
				fmt.Println("  " + id)
			}
			return nil
		},
	}
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved session's prompts and progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Load(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Session " + s.ID))
			fmt.Printf("\n  %s  %d\n", formatter.Dim("MESSAGES  "), len(s.Messages))
			fmt.Printf("  %s  %d\n", formatter.Dim("ITERATIONS"), s.IterationCount)
			fmt.Printf("  %s  %s\n", formatter.Dim("TOKENS    "),
				formatter.TokenUsage(s.CurrentContextTokens, s.ContextWindowLimit))
			if s.OriginalPrompt != "" {
				fmt.Printf("\n%s\n%s\n", formatter.Dim("Original:"), s.OriginalPrompt)
			}
			if s.CurrentPrompt != "" && s.CurrentPrompt != s.OriginalPrompt {
				fmt.Printf("\n%s\n%s\n", formatter.Dim("Current:"), s.CurrentPrompt)
			}
			return nil
		},
	}
}

func newSessionDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted session %s\n", args[0])
			return nil
		},
	}
}
