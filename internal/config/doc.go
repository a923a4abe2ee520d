// Package config resolves the Radarr connection settings from layered
// sources.
//
// # Precedence
//
// Each field (URL, API key) independently takes the first non-empty value
// from, in order:
//
//  1. Command-line overrides (--url, --api-key)
//  2. Environment variables (RADARR_URL, RADARR_API_KEY)
//  3. A config file: the path named by --config or RADARR_CONFIG, else the
//     first of $XDG_CONFIG_HOME/mcp-radarr/config.yaml (falling back to
//     ~/.config/mcp-radarr/config.yaml) and ./config.yaml that exists
//  4. The bundled default file
//
// Sources are never taken atomically: the URL may come from the environment
// while the API key comes from a file.
//
// # File format
//
// A mapping with a nested radarr section:
//
//	radarr:
//	  url: "http://localhost:7878"
//	  api_key: "${RADARR_API_KEY}"
//
// Files ending in .toml or .tml parse as TOML with the same shape; anything
// else parses as YAML. ${VAR} references expand from the environment.
//
// # Failure
//
// Resolution returns *Error - fatal, the process must not serve - when an
// explicitly named file is missing or unparsable, or when a field is still
// empty after all sources.
package config
