package merger

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasmerge/internal/severity"
)

// Severity is an alias for severity.Severity for convenience.
type Severity = severity.Severity

const (
	// SeverityInfo indicates an informational note about a processing choice.
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates input that was dropped or could not be fully processed.
	SeverityWarning = severity.SeverityWarning
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnPathClash indicates a document declared a path owned by an earlier document.
	WarnPathClash WarningCategory = "path_clash"
	// WarnContextRootApplied indicates a context root was folded into a document's paths.
	WarnContextRootApplied WarningCategory = "context_root_applied"
	// WarnContextRootSkipped indicates a context root was not applied because a
	// server URL does not end with it.
	WarnContextRootSkipped WarningCategory = "context_root_skipped"
	// WarnNameRenamed indicates a name was renamed to avoid a collision.
	WarnNameRenamed WarningCategory = "name_renamed"
	// WarnNameDeduplicated indicates a name was shared with an equal definition.
	WarnNameDeduplicated WarningCategory = "name_deduplicated"
	// WarnAttributePromoted indicates security or servers were pushed down
	// because the documents disagree on them.
	WarnAttributePromoted WarningCategory = "attribute_promoted"
	// WarnSharedSecurityRenamed indicates a document shares the top-level
	// security of the others but renamed a scheme it names, so its security
	// was pushed down to its operations.
	WarnSharedSecurityRenamed WarningCategory = "shared_security_renamed"
	// WarnSingleDocument indicates only one document survived and was returned unmodified.
	WarnSingleDocument WarningCategory = "single_document"
)

// MergeWarning represents a structured warning from the merger package.
type MergeWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Path is the JSON path or name of the affected element.
	Path string
	// Message is a human-readable description.
	Message string
	// Document is the index of the input the warning is about.
	Document int
	// Source is the input's name, if it has one.
	Source string
	// Severity indicates warning severity.
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the warning message.
func (w *MergeWarning) String() string {
	return w.Message
}

// Location returns the most specific location available.
func (w *MergeWarning) Location() string {
	if w.Source != "" && w.Path != "" {
		return w.Source + ": " + w.Path
	}
	if w.Path != "" {
		return w.Path
	}
	if w.Source != "" {
		return w.Source
	}
	return ordinal(w.Document)
}

// newPathClashWarning creates a warning for a clashing path. message is the
// problem string reported in MergeResult.Problems.
func newPathClashWarning(path, message string, doc int, source string, owner int) *MergeWarning {
	return &MergeWarning{
		Category: WarnPathClash,
		Path:     fmt.Sprintf("paths.%s", path),
		Message:  message,
		Document: doc,
		Source:   source,
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"path":  path,
			"owner": owner,
		},
	}
}

func newContextRootAppliedWarning(doc int, source, label, root string, paths int) *MergeWarning {
	return &MergeWarning{
		Category: WarnContextRootApplied,
		Message:  fmt.Sprintf("context root %q prepended to %d path(s) of %s", root, paths, label),
		Document: doc,
		Source:   source,
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"context_root": root,
			"paths":        paths,
		},
	}
}

func newContextRootSkippedWarning(doc int, source, label, root, server string) *MergeWarning {
	return &MergeWarning{
		Category: WarnContextRootSkipped,
		Message: fmt.Sprintf("context root %q not applied to %s: server %q does not end with it",
			root, label, server),
		Document: doc,
		Source:   source,
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"context_root": root,
			"server":       server,
		},
	}
}

func newNameRenamedWarning(doc int, source string, cat Category, oldName, newName string) *MergeWarning {
	return &MergeWarning{
		Category: WarnNameRenamed,
		Path:     fmt.Sprintf("%s.%s", cat, oldName),
		Message:  fmt.Sprintf("%s '%s' from %s renamed to '%s'", cat, oldName, ordinal(doc), newName),
		Document: doc,
		Source:   source,
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"category":      string(cat),
			"original_name": oldName,
			"new_name":      newName,
		},
	}
}

func newNameDeduplicatedWarning(doc int, source string, cat Category, name string) *MergeWarning {
	return &MergeWarning{
		Category: WarnNameDeduplicated,
		Path:     fmt.Sprintf("%s.%s", cat, name),
		Message:  fmt.Sprintf("%s '%s' from %s deduplicated (structurally equal)", cat, name, ordinal(doc)),
		Document: doc,
		Source:   source,
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"category": string(cat),
		},
	}
}

func newAttributePromotedWarning(doc int, source, attribute, target string, count int) *MergeWarning {
	return &MergeWarning{
		Category: WarnAttributePromoted,
		Path:     attribute,
		Message:  fmt.Sprintf("%s of %s pushed down to %d %s", attribute, ordinal(doc), count, target),
		Document: doc,
		Source:   source,
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"attribute": attribute,
			"count":     count,
		},
	}
}

func newSharedSecurityRenamedWarning(doc int, source string, schemes []string) *MergeWarning {
	return &MergeWarning{
		Category: WarnSharedSecurityRenamed,
		Path:     "security",
		Message: fmt.Sprintf("security of %s names renamed scheme(s) %s; pushed down to its operations",
			ordinal(doc), strings.Join(schemes, ", ")),
		Document: doc,
		Source:   source,
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"schemes": schemes,
		},
	}
}

func newSingleDocumentWarning(doc int, source, label string) *MergeWarning {
	return &MergeWarning{
		Category: WarnSingleDocument,
		Message:  fmt.Sprintf("only %s was accepted; returning it unmodified", label),
		Document: doc,
		Source:   source,
		Severity: severity.SeverityInfo,
	}
}

// MergeWarnings is a collection of MergeWarning.
type MergeWarnings []*MergeWarning

// Strings returns warning messages.
func (ws MergeWarnings) Strings() []string {
	result := make([]string, len(ws))
	for i, w := range ws {
		if w == nil {
			continue
		}
		result[i] = w.String()
	}
	return result
}

// ByCategory filters warnings by category.
func (ws MergeWarnings) ByCategory(cat WarningCategory) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}

// BySeverity filters warnings by severity.
func (ws MergeWarnings) BySeverity(sev severity.Severity) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Severity == sev {
			result = append(result, w)
		}
	}
	return result
}

// AtLeast returns the warnings at least as severe as sev.
func (ws MergeWarnings) AtLeast(sev severity.Severity) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Severity.AtLeast(sev) {
			result = append(result, w)
		}
	}
	return result
}

// Summary returns a formatted summary of warnings.
func (ws MergeWarnings) Summary() string {
	if len(ws) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d warning(s):\n", len(ws))
	for _, w := range ws {
		sb.WriteString("  - ")
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
