package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"

	"legalsearch/internal/eventbus"
)

// DefaultEndpoint is the search service address used when nothing else is configured
const DefaultEndpoint = "http://localhost:8000"

// DefaultExamples are the preset questions offered as shortcuts
var DefaultExamples = []string{
	"Which crimes result in amputation?",
	"What happens if I steal?",
}

// Config represents the application configuration
type Config struct {
	Version      int          `toml:"version"`
	Endpoint     string       `toml:"endpoint"`
	Examples     []string     `toml:"examples"`
	StrictSchema bool         `toml:"strict_schema"` // reject bodies missing query, response or citations; false renders them empty
	DiscardStale bool         `toml:"discard_stale"` // drop responses older than the displayed one
	LogFile      string       `toml:"log_file"`
	LogLevel     string       `toml:"log_level"`
	HTTP         HTTPSettings `toml:"http"`
	UISettings   UISettings   `toml:"ui"`
}

// HTTPSettings configures the outbound search request
type HTTPSettings struct {
	Timeout       Duration `toml:"timeout"`         // zero means no timeout
	RatePerSecond float64  `toml:"rate_per_second"` // zero means unlimited
	UserAgent     string   `toml:"user_agent"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title    string `toml:"title"`
	ShowHelp bool   `toml:"show_help"`
}

// Duration is a time.Duration stored as a string such as "30s"
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// Validate checks that the configuration can be used to reach the search service
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("invalid http timeout %s", time.Duration(c.HTTP.Timeout))
	}
	if c.HTTP.RatePerSecond < 0 {
		return fmt.Errorf("invalid rate_per_second %v", c.HTTP.RatePerSecond)
	}
	if len(c.Examples) < MinExamples {
		return fmt.Errorf("at least %d examples are required, got %d", MinExamples, len(c.Examples))
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns ~/.config/legalsearch/config.toml (or the platform equivalent)
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "legalsearch", "config.toml")
}

// NewConfigService creates a config service reading from path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Endpoint: cfg.Endpoint,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Examples = withMinExamples(cfg.Examples)

	return cfg, nil
}

// MinExamples is the fewest example questions the view offers
const MinExamples = 2

// withMinExamples tops examples up from DefaultExamples, skipping duplicates,
// until at least MinExamples are present
func withMinExamples(examples []string) []string {
	out := append([]string(nil), examples...)
	for _, ex := range DefaultExamples {
		if len(out) >= MinExamples {
			break
		}
		if !slices.Contains(out, ex) {
			out = append(out, ex)
		}
	}
	return out
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		Endpoint:     DefaultEndpoint,
		Examples:     append([]string(nil), DefaultExamples...),
		StrictSchema: true,
		LogLevel:     "info",
		HTTP: HTTPSettings{
			UserAgent: "legalsearch/dev",
		},
		UISettings: UISettings{
			Title:    "Norm Ai – Search Demo",
			ShowHelp: true,
		},
	}
}
