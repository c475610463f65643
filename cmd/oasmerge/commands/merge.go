package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/oasmerge/internal/cliutil"
	"github.com/erraggy/oasmerge/internal/config"
	"github.com/erraggy/oasmerge/internal/pathutil"
	"github.com/erraggy/oasmerge/merger"
	"github.com/erraggy/oasmerge/parser"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Output       string
	Format       string
	ContextRoots contextRootFlag
	Quiet        bool
	Title        string
	VersionLabel string
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{
		ContextRoots: make(contextRootFlag),
	}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", "", "output format: yaml or json (default: format of the first input)")
	fs.StringVar(&flags.Format, "format", "", "output format: yaml or json (default: format of the first input)")
	fs.Var(flags.ContextRoots, "r", "context root for an input (format: source=/root, can be repeated)")
	fs.Var(flags.ContextRoots, "context-root", "context root for an input (format: source=/root, can be repeated)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.StringVar(&flags.Title, "title", "", "info title used when the inputs' info objects differ")
	fs.StringVar(&flags.VersionLabel, "version-label", "", "info version used when the inputs' info objects differ")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasmerge merge [flags] <file> [file...]\n\n")
		cliutil.Writef(fs.Output(), "Merge OpenAPI 3.x documents into a single document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRules:\n")
		cliutil.Writef(fs.Output(), "  - Earlier files win. A file declaring a path already declared by an\n")
		cliutil.Writef(fs.Output(), "    earlier file is excluded and reported on stderr.\n")
		cliutil.Writef(fs.Output(), "  - Component names, tags and operationIds that collide with a different\n")
		cliutil.Writef(fs.Output(), "    definition get a numeric suffix; equal definitions are shared.\n")
		cliutil.Writef(fs.Output(), "  - A context root is prepended to a file's paths only when every server\n")
		cliutil.Writef(fs.Output(), "    URL in the file ends with it; the root is then removed from the URLs.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasmerge merge -o merged.yaml pets.yaml store.yaml\n")
		cliutil.Writef(fs.Output(), "  oasmerge merge -r pets.yaml=/pets -r store.yaml=/store -f json pets.yaml store.yaml\n")
		cliutil.Writef(fs.Output(), "  oasmerge merge --title \"Platform API\" --version-label 2.0 a.yaml b.yaml c.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Inputs may be local paths or any URL supported by github.com/viant/afs\n")
		cliutil.Writef(fs.Output(), "  - When -o is specified, file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	return runMerge(context.Background(), args, os.Stdout, os.Stderr)
}

func runMerge(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupMergeFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("merge command requires at least 1 input file")
	}
	filePaths := fs.Args()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if len(filePaths) > cfg.Merge.MaxSpecs {
		return fmt.Errorf("too many input files: got %d, maximum is %d; set OASMERGE_MAX_SPECS to increase",
			len(filePaths), cfg.Merge.MaxSpecs)
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	format := cfg.Merge.Format()
	if flags.Format != "" {
		format = parser.SourceFormat(flags.Format)
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, filePaths); err != nil {
			return err
		}
	}

	startTime := time.Now()
	opts := []merger.Option{
		merger.WithContext(ctx),
		merger.WithMaxSchemaDepth(cfg.Merge.MaxSchemaDepth),
		merger.WithLogger(newLogger(cfg)),
	}
	for i, path := range filePaths {
		result, err := parser.ParseLocation(ctx, path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if i == 0 && format == parser.SourceFormatUnknown {
			format = result.SourceFormat
		}
		opts = append(opts, merger.WithNamedDocument(path, result.Document, flags.ContextRoots.lookup(path)))
	}

	title := firstNonEmpty(flags.Title, cfg.Merge.MergedTitle, merger.DefaultMergedTitle)
	version := firstNonEmpty(flags.VersionLabel, cfg.Merge.MergedVersion, merger.DefaultMergedVersion)
	opts = append(opts, merger.WithMergedInfo(title, version))

	result, err := merger.MergeWithOptions(opts...)
	if err != nil {
		return err
	}
	totalTime := time.Since(startTime)

	data, err := parser.Marshal(result.Document, format)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		cleanPath, err := pathutil.SanitizeOutputPath(flags.Output)
		if err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
		if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	} else if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	printMergeReport(cliutil.NewReporter(stderr, flags.Quiet), result, len(filePaths), flags.Output, totalTime)
	return nil
}

func printMergeReport(r *cliutil.Reporter, result *merger.MergeResult, inputs int, output string, elapsed time.Duration) {
	for _, problem := range result.Problems {
		r.Warnf("%s", problem)
	}
	for _, rename := range result.Renames {
		if rename.Category == merger.CategoryPaths {
			continue
		}
		r.Infof("Renamed: %s", rename)
	}
	r.Infof("Merged %d of %d document(s): %d path(s), %d operation(s), %d schema(s) in %v",
		len(result.Included), inputs, result.Stats.PathCount, result.Stats.OperationCount,
		result.Stats.SchemaCount, elapsed.Round(time.Millisecond))
	if output != "" {
		r.Infof("Output: %s", output)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
