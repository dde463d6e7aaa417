package mikroconf

import (
	"os"

	"github.com/charmbracelet/log"
)

// Builder provides a fluent interface for building configurations.
type Builder struct {
	settings Settings
}

// NewBuilder creates a new configuration builder seeded with os.Args.
func NewBuilder() *Builder {
	return &Builder{
		settings: Settings{Args: os.Args},
	}
}

// WithOptions appends option declarations.
func (b *Builder) WithOptions(options ...Option) *Builder {
	b.settings.Options = append(b.settings.Options, options...)
	return b
}

// WithRules appends cross-field validation rules.
func (b *Builder) WithRules(rules ...Rule) *Builder {
	b.settings.Rules = append(b.settings.Rules, rules...)
	return b
}

// WithFile sets the JSON configuration file path.
func (b *Builder) WithFile(path string) *Builder {
	b.settings.ConfigFilePath = path
	return b
}

// WithConfig sets the explicit configuration layer.
func (b *Builder) WithConfig(config map[string]any) *Builder {
	b.settings.Config = config
	return b
}

// WithArgs replaces the command-line arguments.
func (b *Builder) WithArgs(args []string) *Builder {
	b.settings.Args = args
	return b
}

// WithAutoValidate makes Get validate before returning the tree.
func (b *Builder) WithAutoValidate() *Builder {
	b.settings.AutoValidate = true
	return b
}

// WithLogger sets the diagnostic logger.
func (b *Builder) WithLogger(logger *log.Logger) *Builder {
	b.settings.Logger = logger
	return b
}

// Build creates the Config instance with all specified options.
func (b *Builder) Build() *Config {
	return New(b.settings)
}

// BuildAndScan builds, validates when auto-validation is enabled, and
// decodes the merged tree into the provided target struct pointer.
func (b *Builder) BuildAndScan(target any) (*Config, error) {
	cfg := b.Build()

	if cfg.autoValidate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Scan("", target); err != nil {
		return nil, err
	}
	return cfg, nil
}
