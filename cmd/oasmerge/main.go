package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasmerge"
	"github.com/erraggy/oasmerge/cmd/oasmerge/commands"
	"github.com/erraggy/oasmerge/internal/cliutil"
	"github.com/erraggy/oasmerge/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "%s\n%s\n", oasmerge.UserAgent(), oasmerge.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "merge":
		if err := commands.HandleMerge(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	cliutil.Writef(os.Stdout, "oasmerge - merge OpenAPI 3.x documents\n\n")
	cliutil.Writef(os.Stdout, "Usage:\n")
	cliutil.Writef(os.Stdout, "  oasmerge <command> [options]\n\n")
	cliutil.Writef(os.Stdout, "Commands:\n")
	cliutil.Writef(os.Stdout, "  merge      Merge multiple OpenAPI documents into one\n")
	cliutil.Writef(os.Stdout, "  mcp        Run the MCP server over stdio\n")
	cliutil.Writef(os.Stdout, "  version    Show version information\n")
	cliutil.Writef(os.Stdout, "  help       Show this help message\n\n")
	cliutil.Writef(os.Stdout, "Environment:\n")
	cliutil.Writef(os.Stdout, "  OASMERGE_LOG_LEVEL        debug, info, warn or error (default: warn)\n")
	cliutil.Writef(os.Stdout, "  OASMERGE_MAX_SPECS        maximum number of input documents (default: 50)\n")
	cliutil.Writef(os.Stdout, "  OASMERGE_DEFAULT_FORMAT   yaml or json output when -f is not given\n")
	cliutil.Writef(os.Stdout, "  OASMERGE_MERGED_TITLE     info title used when the inputs' info differs\n")
	cliutil.Writef(os.Stdout, "  OASMERGE_MERGED_VERSION   info version used when the inputs' info differs\n\n")
	cliutil.Writef(os.Stdout, "Run 'oasmerge <command> --help' for more information on a command.\n")
}
