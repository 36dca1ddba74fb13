package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the Jellyfin server connection settings.
type Server struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Device contains the identity jellyctl reports to the server.
type Device struct {
	Name    string `toml:"name"`
	Client  string `toml:"client"`
	Version string `toml:"version"`
}

// Session contains persisted session state settings.
type Session struct {
	StatePath string `toml:"state_path"`
}

// Logging contains log output settings for the CLI.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for jellyctl.
type Config struct {
	Server  Server  `toml:"server"`
	Device  Device  `toml:"device"`
	Session Session `toml:"session"`
	Logging Logging `toml:"logging"`
}

const (
	defaultTimeoutSeconds = 30
	defaultClientName     = "jellyctl"
	defaultClientVersion  = "1.0.0"
	defaultStatePath      = "~/.config/jellyctl/session.json"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Device: Device{
			Client:  defaultClientName,
			Version: defaultClientVersion,
		},
		Session: Session{
			StatePath: defaultStatePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the absolute path of the default config location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/jellyctl/config.toml")
}

// Load locates, parses, normalizes, and validates a configuration file. It
// returns the config, the resolved path, and whether the file existed; a
// missing file yields defaults rather than an error.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = defaultTimeoutSeconds
	}

	if strings.TrimSpace(c.Device.Client) == "" {
		c.Device.Client = defaultClientName
	}
	if strings.TrimSpace(c.Device.Version) == "" {
		c.Device.Version = defaultClientVersion
	}

	if strings.TrimSpace(c.Session.StatePath) == "" {
		c.Session.StatePath = defaultStatePath
	}
	statePath, err := ExpandPath(c.Session.StatePath)
	if err != nil {
		return fmt.Errorf("session.state_path: %w", err)
	}
	c.Session.StatePath = statePath

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// Validate ensures the configuration is usable. An empty server URL is
// allowed; commands that need one report it when they run.
func (c *Config) Validate() error {
	if c.Server.URL != "" {
		parsed, err := url.Parse(c.Server.URL)
		if err != nil {
			return fmt.Errorf("server.url: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("server.url: unsupported scheme %q", parsed.Scheme)
		}
		if parsed.Host == "" {
			return fmt.Errorf("server.url: missing host in %q", c.Server.URL)
		}
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

// ExpandPath resolves tilde shortcuts and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
