package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/dotpro-mcp/internal/archive"
	"github.com/ironsheep/dotpro-mcp/internal/config"
	"github.com/ironsheep/dotpro-mcp/internal/dotpro"
	"github.com/ironsheep/dotpro-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("dotpro-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("dotpro-mcp - MCP server for .pro satellite images")
			fmt.Println()
			fmt.Println("Usage: dotpro-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  DOTPRO_LOG_LEVEL=debug           Log level: debug, info, warn, error")
			fmt.Println("  DOTPRO_REVISION=calibrated       File revision: calibrated or legacy")
			fmt.Println("  DOTPRO_ARCHIVE_DSN=slices.db     Slice archive: SQLite path or postgres:// URL")
			fmt.Println("  DOTPRO_ARCHIVE_DEBUG=true        Log archive SQL")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dotpro-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// Log to stderr (stdout is for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))
	logger.Debug("starting dotpro-mcp", "version", Version, "build_time", BuildTime, "commit", GitCommit,
		"revision", settings.Revision.Name)
	for _, f := range settings.MissingEnvFiles {
		logger.Debug("no .env file found (using environment variables)", "file", f)
	}

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithDecoder(dotpro.NewDecoder(settings.Revision)),
		server.WithVersion(Version),
	}

	if settings.ArchiveEnabled() {
		store, err := archive.Open(settings.ArchiveDSN, settings.ArchiveDebug)
		if err != nil {
			return err
		}
		defer store.Close()

		backend := "sqlite"
		if archive.IsPostgres(settings.ArchiveDSN) {
			backend = "postgres"
		}
		logger.Info("slice archive enabled", "backend", backend)
		opts = append(opts, server.WithArchive(store))
	}

	srv := server.New(opts...)
	if err := srv.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
