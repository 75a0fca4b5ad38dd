package cli

import (
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
	"github.com/alexanderramin/promptsmith/internal/service"
	"github.com/spf13/cobra"
)

// App holds the shared dependencies used by CLI commands.
type App struct {
	Client   llm.Client
	Store    *promptcfg.Store
	Library  service.LibraryService
	Sessions service.SessionService
	Language string

	// IsInteractive reports whether stdin is a terminal; non-interactive
	// invocations skip forms and the chat UI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "promptsmith" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "promptsmith",
		Short: "Analyze and iteratively optimize LLM prompts",
	}

	root.PersistentFlags().StringVar(&app.Language, "lang", app.Language, "Reply language (zh_TW|en|ja)")

	root.AddCommand(
		newOptimizeCmd(app),
		newChatCmd(app),
		newLibraryCmd(app),
		newSessionCmd(app),
	)

	return root
}
