package promptcfg

// FileConfig is the top-level YAML structure of a prompts file. All
// localized fields are maps from language code to text; the store falls
// back to zh_TW for any missing language.
type FileConfig struct {
	Version   string   `yaml:"version"`
	Languages []string `yaml:"languages"`

	// kind -> language -> system instruction
	SystemPrompts map[string]map[string]string `yaml:"system_prompts"`

	// kind -> user prompt template config
	UserPrompts map[string]UserPromptConfig `yaml:"user_prompts"`

	// ordered question definitions; list order breaks priority ties
	DynamicQuestions []QuestionConfig `yaml:"dynamic_questions"`

	// strategy name -> per-slot insertion template
	OptimizationStrategies map[string]StrategyConfig `yaml:"optimization_strategies"`

	// message key -> language -> text
	ImprovementMessages map[string]map[string]string `yaml:"improvement_messages"`

	// message key -> language -> text (with {error} placeholder)
	ErrorMessages map[string]map[string]string `yaml:"error_messages"`
}

// UserPromptConfig is a per-language template with optional shared
// sections injected as {output_format} etc. during rendering.
type UserPromptConfig struct {
	Template     map[string]string `yaml:"template"`
	OutputFormat map[string]string `yaml:"output_format,omitempty"`
	Criteria     map[string]string `yaml:"scoring_criteria,omitempty"`
}

// QuestionConfig is one declarative clarifying-question definition.
type QuestionConfig struct {
	Type       string            `yaml:"type"`
	Condition  string            `yaml:"condition"`
	Priority   int               `yaml:"priority"`
	Input      string            `yaml:"input"` // "text", "bool", "select"
	Questions  map[string]string `yaml:"questions"`
	Options    []OptionConfig    `yaml:"options,omitempty"`
	DefaultKey string            `yaml:"default_key,omitempty"`
}

// OptionConfig is one choice of a select-type question.
type OptionConfig struct {
	Key    string            `yaml:"key"`
	Labels map[string]string `yaml:"labels"`
}

// StrategyConfig is a per-slot structural insertion template.
type StrategyConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Template map[string]string `yaml:"template"`
}
