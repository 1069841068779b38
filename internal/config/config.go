package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/report"
)

// Config holds the application configuration
type Config struct {
	Playground       playground.State `json:"playground"`                  // Last playground state, restored on start
	PlaygroundURL    string           `json:"playground_url,omitempty"`    // Base of shared links
	IssueURL         string           `json:"issue_url,omitempty"`         // Bug report form
	MobileBreakpoint int              `json:"mobile_breakpoint,omitempty"` // Width below which the panel moves to the menu (0 = default)
	Theme            string           `json:"theme,omitempty"`             // UI theme name (e.g., "dark-purple", "nord")

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tsplay"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns a config with defaults that saves to path
func New(path string) *Config {
	return &Config{
		Playground:    playground.DefaultState(),
		PlaygroundURL: report.DefaultPlaygroundURL,
		IssueURL:      report.DefaultIssueURL,
		filePath:      path,
	}
}

// Load reads the config from the default location
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it doesn't exist
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	return cfg, nil
}

// ensureDefaults fills URLs a hand-edited file left empty.
// Only called from LoadFrom before the config is shared.
func (c *Config) ensureDefaults() {
	if c.PlaygroundURL == "" {
		c.PlaygroundURL = report.DefaultPlaygroundURL
	}
	if c.IssueURL == "" {
		c.IssueURL = report.DefaultIssueURL
	}
}

// Validate checks that the config is internally consistent
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MobileBreakpoint < 0 {
		return fmt.Errorf("mobile_breakpoint must not be negative, got %d", c.MobileBreakpoint)
	}
	return playground.Validate(c.Playground)
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// SetFilePath changes where Save writes
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns where Save writes
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetPlayground returns the saved playground state
func (c *Config) GetPlayground() playground.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Playground
}

// SetPlayground records the playground state to save
func (c *Config) SetPlayground(s playground.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Playground = s
}

// GetPlaygroundURL returns the base of shared links
func (c *Config) GetPlaygroundURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.PlaygroundURL
}

// GetIssueURL returns the bug report form URL
func (c *Config) GetIssueURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.IssueURL
}

// GetMobileBreakpoint returns the configured breakpoint, 0 meaning default
func (c *Config) GetMobileBreakpoint() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.MobileBreakpoint
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}
