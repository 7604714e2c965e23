package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/msto63/mLaunch/foundation/cmdline"
	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
	mdwstringx "github.com/msto63/mLaunch/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "MLAUNCH_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Parser    ParserConfig    `toml:"parser" yaml:"parser"`
	Resources ResourcesConfig `toml:"resources" yaml:"resources"`
	Launch    LaunchConfig    `toml:"launch" yaml:"launch"`
	Journal   JournalConfig   `toml:"journal" yaml:"journal"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds the command-line tokenizer settings
type ParserConfig struct {
	Prefixes     []string `toml:"prefixes" yaml:"prefixes"`
	Separators   []string `toml:"separators" yaml:"separators"`
	Quote        string   `toml:"quote" yaml:"quote"`
	ParamOptions []string `toml:"param_options" yaml:"param_options"`
}

// ResourcesConfig locates the shortcut and translation files
type ResourcesConfig struct {
	// ShortcutsFile defaults to shortcuts.json next to the executable
	ShortcutsFile string `toml:"shortcuts_file" yaml:"shortcuts_file"`
	// TranslationsFile is loaded instead of the embedded translations
	TranslationsFile string `toml:"translations_file" yaml:"translations_file"`
	Watch            bool   `toml:"watch" yaml:"watch"`
}

// LaunchConfig holds launch engine settings
type LaunchConfig struct {
	DryRun  bool     `toml:"dry_run" yaml:"dry_run"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// JournalConfig holds launch journal settings
type JournalConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.New("config file not found").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads a .env file if present and then the configuration named
// by MLAUNCH_CONFIG or found in a default location
func LoadFromEnv() (*Config, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, err
	}

	path := mdwstringx.FirstNonBlank(os.Getenv(EnvConfigPath), findDefaultPath())
	if mdwstringx.IsBlank(path) {
		return nil, mdwerror.New("no config file found, set MLAUNCH_CONFIG or create configs/mlaunch.toml").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// LoadOrDefault behaves like LoadFromEnv but falls back to Default when no
// config file exists. An explicit MLAUNCH_CONFIG must point to a file.
func LoadOrDefault() (*Config, error) {
	cfg, err := LoadFromEnv()
	if err == nil {
		return cfg, nil
	}
	if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) && os.Getenv(EnvConfigPath) == "" {
		return Default(), nil
	}
	return nil, err
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return mdwerror.Wrap(err, "failed to load .env file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.loadEnvFile").
			WithDetail("path", path)
	}
	return nil
}

func findDefaultPath() string {
	defaultPaths := []string{
		"./configs/mlaunch.toml",
		"./mlaunch.toml",
		"./mlaunch.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config/mlaunch/mlaunch.toml"))
	}

	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	c.General.Name = mdwstringx.FromBlankDefault(c.General.Name, "mLaunch")
	c.General.Environment = mdwstringx.FromBlankDefault(c.General.Environment, "production")
	c.General.LogLevel = mdwstringx.FromBlankDefault(c.General.LogLevel, "warn")
	c.General.LogFormat = mdwstringx.FromBlankDefault(c.General.LogFormat, "console")

	// Parser
	if c.Parser.Prefixes == nil {
		c.Parser.Prefixes = cmdline.DefaultPrefixes()
	}
	if c.Parser.Separators == nil {
		c.Parser.Separators = cmdline.DefaultSeparators()
	}
	if c.Parser.Quote == "" {
		c.Parser.Quote = `"`
	}

	// Launch
	if c.Launch.Timeout.Duration == 0 {
		c.Launch.Timeout.Duration = 30 * time.Second
	}

	// Journal
	c.Journal.Path = mdwstringx.FromBlankDefault(c.Journal.Path, "./data/journal.db")
	if c.Journal.Retention.Duration == 0 {
		c.Journal.Retention.Duration = 30 * 24 * time.Hour
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Resources.ShortcutsFile = os.ExpandEnv(c.Resources.ShortcutsFile)
	c.Resources.TranslationsFile = os.ExpandEnv(c.Resources.TranslationsFile)
	c.Journal.Path = os.ExpandEnv(c.Journal.Path)
}

// Validate checks the parser settings
func (c *Config) Validate() error {
	invalid := func(field, message string) error {
		return mdwerror.New(message).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field)
	}

	if len(c.Parser.Prefixes) == 0 {
		return invalid("parser.prefixes", "at least one option prefix is required")
	}
	for _, p := range c.Parser.Prefixes {
		if p == "" {
			return invalid("parser.prefixes", "option prefixes must not be empty")
		}
	}
	if len(c.Parser.Separators) == 0 {
		return invalid("parser.separators", "at least one separator is required")
	}
	for _, s := range c.Parser.Separators {
		if s == "" {
			return invalid("parser.separators", "separators must not be empty")
		}
	}
	if len(c.Parser.Quote) != 1 {
		return invalid("parser.quote", "quote must be a single byte")
	}
	if c.Launch.Timeout.Duration < 0 {
		return invalid("launch.timeout", "timeout must not be negative")
	}
	return nil
}

// QuoteByte returns the configured quote character
func (p ParserConfig) QuoteByte() byte {
	if len(p.Quote) == 0 {
		return '"'
	}
	return p.Quote[0]
}
