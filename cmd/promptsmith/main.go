package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/promptsmith/internal/cli"
	"github.com/alexanderramin/promptsmith/internal/db"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
	"github.com/alexanderramin/promptsmith/internal/repository"
	"github.com/alexanderramin/promptsmith/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.promptsmith/promptsmith.db
	dbPath := os.Getenv("PROMPTSMITH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".promptsmith", "promptsmith.db")
	}

	// Prompt configuration: env var, else built-in defaults.
	store, err := promptcfg.Load(os.Getenv("PROMPTSMITH_PROMPTS"))
	if err != nil {
		return fmt.Errorf("loading prompt configuration: %w", err)
	}

	language := os.Getenv("PROMPTSMITH_LANG")
	if language == "" {
		language = promptcfg.FallbackLanguage
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and services
	promptRepo := repository.NewSQLitePromptRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	// Wire the generation backend
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if os.Getenv("PROMPTSMITH_LLM_LOG") != "" {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOllamaClient(llmCfg, observer)

	app := &cli.App{
		Client:   client,
		Store:    store,
		Library:  service.NewLibraryService(promptRepo),
		Sessions: service.NewSessionService(sessionRepo),
		Language: language,
	}

	// Detect interactive terminal for forms and the chat UI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
