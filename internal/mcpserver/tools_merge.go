package mcpserver

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/oasmerge/internal/pathutil"
	"github.com/erraggy/oasmerge/merger"
	"github.com/erraggy/oasmerge/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mergeInput struct {
	Specs  []specInput `json:"specs"            jsonschema:"OAS documents to merge in priority order (minimum 1)"`
	Format string      `json:"format,omitempty" jsonschema:"Output format: yaml or json. Defaults to OASMERGE_DEFAULT_FORMAT or the format of the first spec."`
	Output string      `json:"output,omitempty" jsonschema:"File path to write the merged document. If omitted the result is returned inline."`
}

type mergeRename struct {
	Spec     int    `json:"spec"`
	Category string `json:"category"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type mergeOutput struct {
	SpecCount   int           `json:"spec_count"`
	Included    []int         `json:"included"`
	Excluded    []int         `json:"excluded,omitempty"`
	PathCount   int           `json:"path_count"`
	SchemaCount int           `json:"schema_count"`
	Problems    []string      `json:"problems,omitempty"`
	Renames     []mergeRename `json:"renames,omitempty"`
	WrittenTo   string        `json:"written_to,omitempty"`
	Document    string        `json:"document,omitempty"`
	Summary     string        `json:"summary"`
}

func handleMerge(ctx context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Specs) == 0 {
		return errResult(fmt.Errorf("at least 1 spec is required for merging")), mergeOutput{}, nil
	}
	if len(input.Specs) > cfg.Merge.MaxSpecs {
		return errResult(fmt.Errorf("too many specs: got %d, maximum is %d; set OASMERGE_MAX_SPECS to increase",
			len(input.Specs), cfg.Merge.MaxSpecs)), mergeOutput{}, nil
	}
	format := cfg.Merge.Format()
	if input.Format != "" {
		f, err := parser.ParseFormat(input.Format)
		if err != nil {
			return errResult(fmt.Errorf("invalid format: %w", err)), mergeOutput{}, nil
		}
		format = f
	}

	// Resolve all specs.
	inputs := make([]merger.Input, 0, len(input.Specs))
	for i, spec := range input.Specs {
		result, err := spec.resolve(ctx, i)
		if err != nil {
			return errResult(fmt.Errorf("spec[%d]: %w", i, err)), mergeOutput{}, nil
		}
		if i == 0 && format == parser.SourceFormatUnknown {
			format = result.SourceFormat
		}
		inputs = append(inputs, merger.Input{
			Document:    result.Document,
			ContextRoot: spec.ContextRoot,
			Name:        spec.displayName(i),
		})
	}

	opts := []merger.Option{
		merger.WithInputs(inputs...),
		merger.WithContext(ctx),
		merger.WithMaxDocuments(cfg.Merge.MaxSpecs),
		merger.WithMaxSchemaDepth(cfg.Merge.MaxSchemaDepth),
		merger.WithMergedInfo(
			cmp.Or(cfg.Merge.MergedTitle, merger.DefaultMergedTitle),
			cmp.Or(cfg.Merge.MergedVersion, merger.DefaultMergedVersion),
		),
	}

	result, err := merger.MergeWithOptions(opts...)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		SpecCount:   len(input.Specs),
		Included:    result.Included,
		Excluded:    result.Excluded,
		PathCount:   result.Stats.PathCount,
		SchemaCount: result.Stats.SchemaCount,
		Problems:    result.Problems,
	}
	for _, r := range result.Renames {
		output.Renames = append(output.Renames, mergeRename{
			Spec:     r.Document,
			Category: string(r.Category),
			From:     r.OldName,
			To:       r.NewName,
		})
	}
	output.Summary = buildMergeSummary(output)

	data, err := parser.Marshal(result.Document, format)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), mergeOutput{}, nil
		}
		if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), mergeOutput{}, nil
		}
		output.WrittenTo = cleanPath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

func buildMergeSummary(output mergeOutput) string {
	summary := "Merged " + strconv.Itoa(len(output.Included)) + " of " + formatCount(output.SpecCount, "spec")
	summary += " into a document with " + formatCount(output.PathCount, "path")
	summary += " and " + formatCount(output.SchemaCount, "schema") + "."

	if len(output.Excluded) > 0 {
		summary += " " + formatCount(len(output.Excluded), "spec") + " excluded because of path clashes."
	}
	if len(output.Renames) > 0 {
		summary += " " + formatCount(len(output.Renames), "name") + " changed."
	}
	return summary
}
