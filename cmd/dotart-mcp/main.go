package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/dotart-mcp/internal/config"
	"github.com/ironsheep/dotart-mcp/internal/server"
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
			fmt.Printf("dotart-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("dotart-mcp - MCP server for editing dot art")
			fmt.Println()
			fmt.Println("Usage: dotart-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  DOTART_COLS=16             Initial grid width in cells")
			fmt.Println("  DOTART_ROWS=16             Initial grid height in cells")
			fmt.Println("  DOTART_EXPORT_SCALE=1      Default export pixels per cell")
			fmt.Println("  DOTART_EXPORT_FORMAT=png   Default export format")
			fmt.Println("  DOTART_CELL_SIZE=16        Rendered pixels per cell")
			fmt.Println("  DOTART_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	var debug *log.Logger
	if cfg.Debug {
		debug = log.Default()
		log.Printf("Dot Art MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv, err := server.New(cfg, debug)
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
