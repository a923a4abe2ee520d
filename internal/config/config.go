// ABOUTME: Layered settings resolution for the Radarr connection.
// ABOUTME: Precedence per field: flags > environment > config file > bundled default.

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Settings is the resolved Radarr connection configuration. It is immutable
// once constructed; both fields are guaranteed non-empty.
type Settings struct {
	URL    string
	APIKey string
}

// Overrides carries the command-line values, the highest-precedence source.
// Empty fields fall through to lower sources.
type Overrides struct {
	URL        string
	APIKey     string
	ConfigPath string
}

// Error is a fatal configuration failure. The process must not reach the
// serving state when resolution returns one.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Reason, e.Err)
	}
	return "config: " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// placeholderAPIKey is the bundled default's api_key value. It counts as
// unset no matter which source supplied it.
const placeholderAPIKey = "changeme"

//go:embed default.yaml
var bundledDefault []byte

// envValues is the environment layer.
type envValues struct {
	URL        string `env:"RADARR_URL"`
	APIKey     string `env:"RADARR_API_KEY"`
	ConfigPath string `env:"RADARR_CONFIG"`
}

// fileValues is the config file shape: a nested radarr section with url and
// api_key. The same shape parses from YAML and TOML.
type fileValues struct {
	Radarr struct {
		URL    string `yaml:"url" toml:"url"`
		APIKey string `yaml:"api_key" toml:"api_key"`
	} `yaml:"radarr" toml:"radarr"`
}

// Resolve merges the four configuration sources into Settings. Resolution is
// per field: URL and APIKey each take the first non-empty value walking down
// the precedence order, independently of one another.
func Resolve(ov Overrides) (Settings, error) {
	var ev envValues
	if err := env.Parse(&ev); err != nil {
		return Settings{}, &Error{Reason: "parsing environment", Err: err}
	}

	fileVals, err := loadFile(ov.ConfigPath, ev.ConfigPath)
	if err != nil {
		return Settings{}, err
	}

	defaults, err := parse(bundledDefault, "default.yaml")
	if err != nil {
		return Settings{}, &Error{Reason: "parsing bundled default config", Err: err}
	}

	s := Settings{
		URL: firstNonEmpty(ov.URL, ev.URL, fileVals.Radarr.URL, defaults.Radarr.URL),
		APIKey: firstNonEmpty(
			normalizeKey(ov.APIKey),
			normalizeKey(ev.APIKey),
			normalizeKey(fileVals.Radarr.APIKey),
			normalizeKey(defaults.Radarr.APIKey),
		),
	}

	if s.URL == "" {
		return Settings{}, &Error{Reason: "radarr URL not set (flag --url, RADARR_URL, or radarr.url in a config file)"}
	}
	if s.APIKey == "" {
		return Settings{}, &Error{Reason: "radarr API key not set (flag --api-key, RADARR_API_KEY, or radarr.api_key in a config file)"}
	}
	return s, nil
}

// loadFile locates and parses the config file layer. An explicitly named
// path (flag or RADARR_CONFIG) must exist and parse; a searched path is only
// consulted when present. When nothing is found the zero value is returned
// and the bundled default supplies the last layer.
func loadFile(flagPath, envPath string) (fileValues, error) {
	if explicit := firstNonEmpty(flagPath, envPath); explicit != "" {
		data, err := os.ReadFile(explicit)
		if err != nil {
			return fileValues{}, &Error{Reason: fmt.Sprintf("reading config file %s", explicit), Err: err}
		}
		vals, err := parse(data, explicit)
		if err != nil {
			return fileValues{}, &Error{Reason: fmt.Sprintf("parsing config file %s", explicit), Err: err}
		}
		return vals, nil
	}

	for _, candidate := range searchPaths() {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		vals, err := parse(data, candidate)
		if err != nil {
			return fileValues{}, &Error{Reason: fmt.Sprintf("parsing config file %s", candidate), Err: err}
		}
		return vals, nil
	}
	return fileValues{}, nil
}

// searchPaths returns the config file locations in search order: the
// user-scoped config directory, then the current working directory.
func searchPaths() []string {
	var paths []string

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(homeDir, ".config")
		}
	}
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "mcp-radarr", "config.yaml"))
	}

	return append(paths, "config.yaml")
}

// parse decodes a config file by extension: .toml/.tml as TOML, everything
// else as YAML. ${VAR} references are expanded from the environment first.
func parse(data []byte, path string) (fileValues, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var vals fileValues
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		if err := toml.Unmarshal(expanded, &vals); err != nil {
			return fileValues{}, err
		}
	default:
		if err := yaml.Unmarshal(expanded, &vals); err != nil {
			return fileValues{}, err
		}
	}
	return vals, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment values.
// Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// normalizeKey treats the bundled placeholder as unset so it can never leak
// into a live client.
func normalizeKey(key string) string {
	if key == placeholderAPIKey {
		return ""
	}
	return key
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
