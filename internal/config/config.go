package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "dealerbooks.yaml"

// Environment variables read from the process or a .env file next to the config.
const (
	EnvBackendURL = "DEALERBOOKS_BACKEND_URL"
	EnvToken      = "DEALERBOOKS_TOKEN"
)

// Source values.
const (
	SourceFile   = "file"
	SourceRemote = "remote"
)

// Config represents the top-level dealerbooks.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Source   string         `yaml:"source" validate:"oneof=file remote"`
	Journal  JournalConfig  `yaml:"journal"`
	Backend  BackendConfig  `yaml:"backend"`
	Log      LogConfig      `yaml:"log"`
	Git      GitConfig      `yaml:"git"`

	// Token is only ever taken from the environment.
	Token string `yaml:"-"`
}

// BusinessConfig identifies the dealership.
type BusinessConfig struct {
	Name string `yaml:"name" validate:"required"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start" validate:"required,datetime=01-02"` // "MM-DD"
}

// JournalConfig locates the local CSV book.
type JournalConfig struct {
	Dir string `yaml:"dir" validate:"required"` // relative to the config file
}

// BackendConfig points at the dealership REST API.
type BackendConfig struct {
	BaseURL     string        `yaml:"base_url" validate:"omitempty,url"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	SessionFile string        `yaml:"session_file"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json logfmt"`
}

// GitConfig controls versioning of the book.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email" validate:"omitempty,email"`
}

// Load reads a dealerbooks.yaml file from disk over the defaults, then applies
// overrides from the environment and an optional .env file in the same
// directory. Relative paths are resolved against the config's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envPath, err)
	}
	cfg.applyEnv()

	if cfg.Journal.Dir != "" && !filepath.IsAbs(cfg.Journal.Dir) {
		cfg.Journal.Dir = filepath.Join(filepath.Dir(path), cfg.Journal.Dir)
	}
	if cfg.Backend.SessionFile != "" && !filepath.IsAbs(cfg.Backend.SessionFile) {
		cfg.Backend.SessionFile = filepath.Join(filepath.Dir(path), cfg.Backend.SessionFile)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBackendURL)); v != "" {
		c.Backend.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		c.Token = v
	}
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Source == SourceRemote && c.Backend.BaseURL == "" {
		return fmt.Errorf("invalid config: backend.base_url is required when source is %q", SourceRemote)
	}
	if c.Git.AutoCommit && (c.Git.AuthorName == "" || c.Git.AuthorEmail == "") {
		return errors.New("invalid config: git.author_name and git.author_email are required when git.auto_commit is set")
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Fiscal:   FiscalConfig{YearStart: "01-01"},
		Source:   SourceFile,
		Journal:  JournalConfig{Dir: "."},
		Backend: BackendConfig{
			Timeout:     15 * time.Second,
			SessionFile: ".dealerbooks-session",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Dealerbooks",
			AuthorEmail: "books@dealerbooks.local",
		},
	}
}
