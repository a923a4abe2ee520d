// ABOUTME: Entry point for the mcp-radarr server.
// ABOUTME: Resolves config, builds the tool registry, and serves one transport.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389/mcp-radarr/internal/config"
	"github.com/2389/mcp-radarr/internal/radarr"
	"github.com/2389/mcp-radarr/internal/server"
	"github.com/2389/mcp-radarr/internal/tools"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
                                             _
 _ __ ___   ___ _ __        _ __ __ _  __| | __ _ _ __ _ __
| '_ ' _ \ / __| '_ \ _____| '__/ _' |/ _' |/ _' | '__| '__|
| | | | | | (__| |_) |_____| |  | (_| | (_| | (_| | |  | |
|_| |_| |_|\___| .__/      |_|   \__,_|\__,_|\__,_|_|  |_|
               |_|
`

const instructions = `This server manages a Radarr movie collection. Use lookup_movie to find
movies in external databases, add_movie to start tracking and downloading one,
movie_list and search_for_movie to inspect the library, movie_info or
movie_info_by_tmdb_id for details on a single movie, get_quality_profiles for
the profile ids that add_movie and edit_movie need, and edit_movie to change
monitoring, quality, or availability settings.`

type cliFlags struct {
	mode      string
	host      string
	port      int
	url       string
	apiKey    string
	config    string
	logLevel  string
	logFormat string
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVar(&f.mode, "mode", "stdio", "serving mode: stdio, sse, http, or streamable-http")
	flag.StringVar(&f.host, "host", "0.0.0.0", "bind host for network modes")
	flag.StringVar(&f.host, "H", "0.0.0.0", "shorthand for --host")
	flag.IntVar(&f.port, "port", 8050, "bind port for network modes")
	flag.IntVar(&f.port, "p", 8050, "shorthand for --port")
	flag.StringVar(&f.url, "url", "", "Radarr base URL (overrides RADARR_URL and the config file)")
	flag.StringVar(&f.apiKey, "api-key", "", "Radarr API key (overrides RADARR_API_KEY and the config file)")
	flag.StringVar(&f.config, "config", "", "path to a YAML or TOML config file")
	flag.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, or error")
	flag.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	flag.Parse()
	return f
}

func main() {
	flags := parseFlags()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags cliFlags) error {
	mode, err := server.ParseMode(flags.mode)
	if err != nil {
		return err
	}

	// All human-facing output goes to stderr; stdout carries protocol
	// frames when mode is stdio.
	printBanner(mode, flags)

	settings, err := config.Resolve(config.Overrides{
		URL:        flags.url,
		APIKey:     flags.apiKey,
		ConfigPath: flags.config,
	})
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}

	logger := setupLogger(flags.logLevel, flags.logFormat)

	client, err := radarr.NewClient(settings.URL, settings.APIKey)
	if err != nil {
		return fmt.Errorf("creating Radarr client: %w", err)
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: "mcp-radarr", Version: version},
		&mcp.ServerOptions{Instructions: instructions},
	)
	tools.New(client, logger).Install(mcpServer)

	addr := fmt.Sprintf("%s:%d", flags.host, flags.port)
	binding, err := server.New(mode, mcpServer, addr, logger)
	if err != nil {
		return err
	}

	logger.Info("starting mcp-radarr",
		"version", version,
		"mode", string(mode),
		"radarr_url", settings.URL,
	)

	err = binding.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printBanner(mode server.Mode, flags cliFlags) {
	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	green := color.New(color.FgGreen)

	cyan.Fprint(os.Stderr, banner)
	gray.Fprintf(os.Stderr, "    version: %s\n\n", version)

	green.Fprint(os.Stderr, "    ▶ ")
	fmt.Fprintf(os.Stderr, "Mode:      %s\n", mode)
	if mode != server.ModeStdio {
		green.Fprint(os.Stderr, "    ▶ ")
		fmt.Fprintf(os.Stderr, "Listen:    %s:%d\n", flags.host, flags.port)
	}
	fmt.Fprintln(os.Stderr)
}
