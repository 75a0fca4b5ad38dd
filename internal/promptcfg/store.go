package promptcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/promptsmith/internal/domain"
)

// FallbackLanguage is always present in a valid configuration; lookups
// for unsupported languages resolve against it.
const FallbackLanguage = "zh_TW"

// QuestionDef is a question definition with its condition compiled.
type QuestionDef struct {
	Type       string
	Priority   int
	Input      domain.QuestionInput
	Condition  Condition
	Questions  map[string]string
	Options    []OptionConfig
	DefaultKey string
}

// Store provides keyed access to prompt templates, question
// definitions, optimization strategies, and localized messages.
// Immutable after load; safe for concurrent readers.
type Store struct {
	cfg       FileConfig
	questions []QuestionDef
}

// Load reads a prompts YAML file. A missing or unreadable file yields
// the embedded default configuration rather than an error, matching how
// the rest of the system degrades instead of failing.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultStore(), nil
		}
		return nil, fmt.Errorf("reading prompts config: %w", err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing prompts config %s: %w", path, err)
	}
	return store, nil
}

// Parse builds a Store from raw YAML, compiling every question
// condition. Malformed conditions compile fail-closed; they do not
// fail the load.
func Parse(data []byte) (*Store, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Languages) == 0 {
		return nil, fmt.Errorf("prompts config lists no languages")
	}

	s := &Store{cfg: cfg}
	for _, qc := range cfg.DynamicQuestions {
		s.questions = append(s.questions, QuestionDef{
			Type:       qc.Type,
			Priority:   qc.Priority,
			Input:      parseInput(qc.Input),
			Condition:  CompileCondition(qc.Condition),
			Questions:  qc.Questions,
			Options:    qc.Options,
			DefaultKey: qc.DefaultKey,
		})
	}
	return s, nil
}

func parseInput(s string) domain.QuestionInput {
	switch domain.QuestionInput(s) {
	case domain.InputBool:
		return domain.InputBool
	case domain.InputSelect:
		return domain.InputSelect
	default:
		return domain.InputText
	}
}

// Version returns the configuration version string.
func (s *Store) Version() string { return s.cfg.Version }

// Languages returns the configured language codes.
func (s *Store) Languages() []string { return s.cfg.Languages }

// SystemPrompt returns the system instruction for a template kind.
// Returns "" when the kind is unknown.
func (s *Store) SystemPrompt(kind, language string) string {
	return localized(s.cfg.SystemPrompts[kind], language)
}

// UserPrompt renders the user instruction template for a template kind
// with named substitution. Shared sections (output format, scoring
// criteria) are injected as additional variables before rendering.
func (s *Store) UserPrompt(kind, language string, vars map[string]string) string {
	pc, ok := s.cfg.UserPrompts[kind]
	if !ok {
		return ""
	}

	render := make(map[string]string, len(vars)+2)
	for k, v := range vars {
		render[k] = v
	}
	if pc.OutputFormat != nil {
		render["output_format"] = localized(pc.OutputFormat, language)
	}
	if pc.Criteria != nil {
		render["scoring_criteria"] = localized(pc.Criteria, language)
	}

	return RenderTemplate(localized(pc.Template, language), render)
}

// QuestionDefs returns the compiled question definitions in file order.
func (s *Store) QuestionDefs() []QuestionDef { return s.questions }

// OptimizationStrategy renders the insertion template for a strategy.
// ok is false when the strategy is unknown or disabled; callers skip
// the step silently in that case.
func (s *Store) OptimizationStrategy(name, language string, vars map[string]string) (string, bool) {
	sc, found := s.cfg.OptimizationStrategies[name]
	if !found || !sc.Enabled {
		return "", false
	}
	tmpl := localized(sc.Template, language)
	if tmpl == "" {
		return "", false
	}
	return RenderTemplate(tmpl, vars), true
}

// ImprovementMessage returns the localized improvement note for a key.
func (s *Store) ImprovementMessage(key, language string) string {
	return localized(s.cfg.ImprovementMessages[key], language)
}

// ErrorMessage returns the localized user-facing error text for a key,
// with {error} substituted.
func (s *Store) ErrorMessage(key, language, errText string) string {
	msg := localized(s.cfg.ErrorMessages[key], language)
	if msg == "" {
		return "Error: " + errText
	}
	return RenderTemplate(msg, map[string]string{"error": errText})
}

// QuestionText returns the localized text of a question definition.
func (q QuestionDef) QuestionText(language string) string {
	return localized(q.Questions, language)
}

// DomainOptions converts the definition's options for a language.
func (q QuestionDef) DomainOptions(language string) []domain.QuestionOption {
	if len(q.Options) == 0 {
		return nil
	}
	opts := make([]domain.QuestionOption, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, domain.QuestionOption{
			Label: localized(o.Labels, language),
			Key:   o.Key,
		})
	}
	return opts
}

func localized(m map[string]string, language string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[language]; ok && v != "" {
		return v
	}
	return m[FallbackLanguage]
}
