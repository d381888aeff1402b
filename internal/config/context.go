package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Context represents a deployment target: one bucket plus the distribution
// and build settings that go with it.
type Context struct {
	Bucket         string `yaml:"bucket"`
	Region         string `yaml:"region,omitempty"`
	DistributionID string `yaml:"distribution_id,omitempty"`
	BuildDir       string `yaml:"build_dir,omitempty"`
	Profile        string `yaml:"profile,omitempty"`    // AWS profile name
	SSMPrefix      string `yaml:"ssm_prefix,omitempty"` // parameter prefix for provisioning outputs
	IndexDocument  string `yaml:"index_document,omitempty"`
	ErrorDocument  string `yaml:"error_document,omitempty"`
}

// Config represents the main configuration file (~/.stratus.yaml)
type Config struct {
	CurrentContext string              `yaml:"current_context,omitempty"`
	Contexts       map[string]*Context `yaml:"contexts,omitempty"`
}

// Path returns the config file path. STRATUS_CONFIG overrides the default
// ~/.stratus.yaml location.
func Path() string {
	if p := os.Getenv("STRATUS_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stratus.yaml"
	}
	return filepath.Join(home, ".stratus.yaml")
}

// Load loads the configuration from the config file
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return &Config{Contexts: make(map[string]*Context)}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*Context)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetCurrentContext returns the current active context and its name
func GetCurrentContext() (*Context, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}

	if cfg.CurrentContext == "" {
		return nil, "", nil
	}

	ctx, ok := cfg.Contexts[cfg.CurrentContext]
	if !ok {
		return nil, "", fmt.Errorf("context %q not found", cfg.CurrentContext)
	}

	return ctx, cfg.CurrentContext, nil
}

// GetContext returns a context by name
func GetContext(name string) (*Context, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	ctx, ok := cfg.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("context %q not found", name)
	}

	return ctx, nil
}

// SetCurrentContext sets the current active context
func SetCurrentContext(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}

	cfg.CurrentContext = name
	return Save(cfg)
}

// AddContext adds or updates a context
func AddContext(name string, ctx *Context) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	cfg.Contexts[name] = ctx
	return Save(cfg)
}

// DeleteContext removes a context. Deleting the current context also
// clears the current-context selection.
func DeleteContext(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}

	delete(cfg.Contexts, name)
	if cfg.CurrentContext == name {
		cfg.CurrentContext = ""
	}
	return Save(cfg)
}

// ListContexts returns all contexts and the current context name
func ListContexts() (map[string]*Context, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}
	return cfg.Contexts, cfg.CurrentContext, nil
}

// UpdateContext applies fn to the named context and saves the result.
// Used to record provisioning outputs (e.g. the distribution id).
func UpdateContext(name string, fn func(*Context)) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	ctx, ok := cfg.Contexts[name]
	if !ok {
		return fmt.Errorf("context %q not found", name)
	}

	fn(ctx)
	return Save(cfg)
}
