package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/cli/formatter"
	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/spf13/cobra"
)

func newLibraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the saved prompt library",
	}

	cmd.AddCommand(
		newLibrarySaveCmd(app),
		newLibraryShowCmd(app),
		newLibraryListCmd(app),
		newLibrarySearchCmd(app),
		newLibraryDeleteCmd(app),
		newLibraryExportCmd(app),
		newLibraryImportCmd(app),
	)

	return cmd
}

func newLibrarySaveCmd(app *App) *cobra.Command {
	var description, category, file string
	var tags []string

	cmd := &cobra.Command{
		Use:   "save NAME [content]",
		Short: "Save a prompt under a name, overwriting any existing one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ""
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading content file: %w", err)
				}
				content = strings.TrimSpace(string(data))
			case len(args) == 2:
				content = args[1]
			default:
				return fmt.Errorf("prompt content or --file is required")
			}

			record := domain.NewPromptRecord(args[0], content)
			record.Description = description
			record.Category = category
			record.Tags = tags
			if err := app.Library.Save(context.Background(), record); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", formatter.Bold(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&file, "file", "", "Read the content from a file")

	return cmd
}

func newLibraryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a saved prompt's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Library.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.Bold(p.Name))
			if p.Description != "" {
				fmt.Println(formatter.Dim(p.Description))
			}
			fmt.Println()
			fmt.Println(p.Content)
			return nil
		},
	}
}

func newLibraryListCmd(app *App) *cobra.Command {
	var category, tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				records []*domain.PromptRecord
				err     error
			)
			if tag != "" {
				records, err = app.Library.ListByTag(ctx, tag)
			} else {
				records, err = app.Library.List(ctx, category)
			}
			if err != nil {
				return err
			}
			fmt.Print(formatter.PromptList(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")

	return cmd
}

func newLibrarySearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Search prompts by name, description, or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Library.Search(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.PromptList(records))
			return nil
		},
	}
}

func newLibraryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Library.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func newLibraryExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export the whole library to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Library.ExportAll(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d prompts to %s\n", n, args[0])
			return nil
		},
	}
}

func newLibraryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import prompts from a JSON export, skipping existing names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Library.ImportAll(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d, skipped %d\n", result.Imported, result.Skipped)
			for _, e := range result.Errors {
				fmt.Println(formatter.Dim("  " + e))
			}
			return nil
		},
	}
}
