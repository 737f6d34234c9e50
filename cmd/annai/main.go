// Package main is the Annai CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/annai/internal/assist"
	"github.com/hyperjump/annai/internal/cli"
	"github.com/hyperjump/annai/internal/config"
	"github.com/hyperjump/annai/internal/engine"
	"github.com/hyperjump/annai/internal/models"
	"github.com/hyperjump/annai/internal/server"
	"github.com/hyperjump/annai/internal/store"
	"github.com/hyperjump/annai/internal/watcher"
	"github.com/hyperjump/annai/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/annai/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "annai server" from the project dir uses the project's config (including debug).
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "chat":
		runChat()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("annai version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func engineConfig(cfg *config.Config) *engine.Config {
	return &engine.Config{
		TopN:             cfg.Engine.TopN,
		Percentile:       cfg.Engine.Percentile,
		BestMinRating:    cfg.Engine.BestMinRating,
		WorstMaxRating:   cfg.Engine.WorstMaxRating,
		QualityMinRating: cfg.Engine.QualityMinRating,
	}
}

func storeSources(cfg *config.Config) store.Sources {
	return store.Sources{
		RestaurantsPath: cfg.Data.RestaurantsPath,
		HotelsPath:      cfg.Data.HotelsPath,
		VehiclesPath:    cfg.Data.VehiclesPath,
		DatabasePath:    cfg.Data.DatabasePath,
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (dataset reloads, query details, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	st, err := store.NewStore(context.Background(), storeSources(cfg), logger.Named("store"))
	if err != nil {
		logger.Fatal("Failed to load datasets", zap.Error(err))
	}
	assistant := assist.New(st, engineConfig(cfg), logger)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Watch.Enabled && cfg.Data.DatabasePath == "" {
		watchOpts := []watcher.Option{
			watcher.WithDebounce(time.Duration(cfg.Watch.DebounceMS) * time.Millisecond),
		}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc := watcher.NewWatcher(
			[]string{cfg.Data.RestaurantsPath, cfg.Data.HotelsPath, cfg.Data.VehiclesPath},
			func(path string) {
				if err := st.Reload(context.Background()); err != nil {
					logger.Warn("dataset reload failed", zap.String("path", path), zap.Error(err))
				}
			},
			watchOpts...,
		)
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer watchSvc.Stop()
	}

	srv := server.NewServer(assistant, st, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// askArgsReorder moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument.
func askArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func printAskUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: annai ask [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  annai ask cheap italian restaurants in mumbai
  annai ask "best hotels in borivali"
  annai ask --top-n 3 suv for 6 passengers
  annai ask --output json luxury hotels with pool    # structured JSON for other apps
`)
}

func runAsk() {
	askArgs := askArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = load datasets directly)")
	topN := fs.Int("top-n", 0, "number of recommendations (0 = config default)")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printAskUsage(fs) }
	_ = fs.Parse(askArgs)

	if fs.NArg() < 1 {
		printAskUsage(fs)
		os.Exit(1)
	}
	query := buildQuery(fs.Args())
	if query == "" {
		printAskUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	if *serverURL != "" {
		resp, err := askViaHTTP(*serverURL, query, *topN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
			os.Exit(1)
		}
		writeHTTPResponse(os.Stdout, resp, format)
		return
	}

	assistant := mustAssistant(*configPath)
	answer := assistant.Answer(query, *topN)
	if err := cli.WriteAnswer(os.Stdout, answer, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runChat() {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	topN := fs.Int("top-n", 0, "number of recommendations (0 = config default)")
	_ = fs.Parse(os.Args[2:])

	assistant := mustAssistant(*configPath)
	cli.Chat(os.Stdin, os.Stdout, func(query string) *models.Answer {
		return assistant.Answer(query, *topN)
	})
}

// mustAssistant loads config and datasets and builds an Assistant, exiting
// on failure. Used by the direct (serverless) subcommands.
func mustAssistant(configPath string) *assist.Assistant {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	st, err := store.NewStore(context.Background(), storeSources(cfg), logger.Named("store"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load datasets: %v\n", err)
		os.Exit(1)
	}
	return assist.New(st, engineConfig(cfg), logger)
}

func askViaHTTP(serverURL, query string, topN int) (*assist.Response, error) {
	body, err := json.Marshal(map[string]any{"query": query, "top_n": topN})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/recommend", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response assist.Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func writeHTTPResponse(w io.Writer, resp *assist.Response, format cli.OutputFormat) {
	if format == cli.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(resp)
		return
	}
	if resp.Count == 0 {
		fmt.Fprintf(w, "\nNo %s found matching your criteria. Try adjusting your filters.\n", resp.Category)
	} else {
		fmt.Fprintf(w, "\nHere are some recommendations based on your request:\n\n")
		for i, rec := range resp.Recommendations {
			fmt.Fprintf(w, "%d. %s\n\n", i+1, rec)
		}
	}
	for _, alt := range resp.Alternatives {
		fmt.Fprintf(w, "%s\n", alt)
	}
}

// statusResponse is the shape of GET /api/v1/status response.
type statusResponse struct {
	Restaurants int       `json:"restaurants"`
	Hotels      int       `json:"hotels"`
	Vehicles    int       `json:"vehicles"`
	LoadedAt    time.Time `json:"loaded_at"`
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = load datasets directly)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		st, err := store.NewStore(context.Background(), storeSources(cfg), logger.Named("store"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load datasets: %v\n", err)
			os.Exit(1)
		}
		snap := st.Snapshot()
		status = statusResponse{
			Restaurants: len(snap.Restaurants),
			Hotels:      len(snap.Hotels),
			Vehicles:    len(snap.Vehicles),
			LoadedAt:    snap.LoadedAt,
		}
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("restaurants:  %d\n", status.Restaurants)
		fmt.Printf("hotels:       %d\n", status.Hotels)
		fmt.Printf("vehicles:     %d\n", status.Vehicles)
		fmt.Printf("loaded_at:    %s\n", status.LoadedAt.Format(time.RFC3339))
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(serverURL + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

func printUsage() {
	fmt.Println(`annai - Travel recommendation assistant

Usage:
  annai server [flags]          Start the HTTP server
  annai ask [flags] <query>     Answer a single query
  annai chat [flags]            Interactive conversation loop
  annai status [flags]          Show dataset status
  annai version                 Show version
  annai help                    Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/annai/config.yaml)
  --debug            Enable debug logging (dataset reloads, query details, etc.)

Ask Flags:
  --config string    Config file path (for direct mode)
  --server string    Server URL (default: empty = load datasets directly)
  --top-n int        Number of recommendations (0 = config default)
  --output string    Output format: text or json (default: text)

Chat Flags:
  --config string    Config file path
  --top-n int        Number of recommendations (0 = config default)

Status Flags:
  --config string    Config file path (for direct mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") for direct mode.
  --output string    Output format: text or json (default: text)

Examples:
  annai server
  annai ask cheap italian restaurants in mumbai with rating above 4
  annai ask --output json "best hotels in borivali"
  annai chat
  annai status
  annai status --output json`)
}
