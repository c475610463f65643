package merger

import (
	"strings"

	"github.com/erraggy/oasmerge/internal/pathutil"
	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
	"github.com/erraggy/oasmerge/walker"
)

// rewriteRef maps a local reference through the document's renames.
// It returns false when the reference does not change.
func (d *docNames) rewriteRef(ref string) (string, bool) {
	if parts, ok := pathutil.SplitComponentRef(ref); ok {
		newName, renamed := d.lookup(Category(parts.Category), parts.Name)
		if !renamed || newName == parts.Name {
			return ref, false
		}
		parts.Name = newName
		return parts.String(), true
	}
	if path, rest, ok := pathutil.SplitPathRef(ref); ok {
		newPath, moved := d.lookup(CategoryPaths, path)
		if !moved || newPath == path {
			return ref, false
		}
		return pathutil.PathRef(newPath) + rest, true
	}
	return ref, false
}

// renameSecurityKeys renames the scheme names of each requirement in place.
func (d *docNames) renameSecurityKeys(reqs []parser.SecurityRequirement) {
	for i, req := range reqs {
		changed := false
		for name := range req {
			if d.resolve(CategorySecuritySchemes, name) != name {
				changed = true
				break
			}
		}
		if !changed {
			continue
		}
		renamed := make(parser.SecurityRequirement, len(req))
		for name, scopes := range req {
			renamed[d.resolve(CategorySecuritySchemes, name)] = scopes
		}
		reqs[i] = renamed
	}
}

// rewriteDiscriminator rewrites mapping values, which are either schema
// references or bare schema names.
func (d *docNames) rewriteDiscriminator(disc *parser.Discriminator) {
	for key, value := range disc.Mapping {
		if strings.HasPrefix(value, "#") {
			if newRef, ok := d.rewriteRef(value); ok {
				disc.Mapping[key] = newRef
			}
			continue
		}
		if !strings.Contains(value, "/") {
			disc.Mapping[key] = d.resolve(CategorySchemas, value)
		}
	}
}

// rewriteReferences updates every reference in one document to follow the
// names allocated for it and the paths moved by its context root.
func (s *session) rewriteReferences(idx int) error {
	doc := s.docs[idx]
	names := s.names[idx]
	rewritten := 0
	var tooDeep string

	err := walker.WalkWithOptions(
		walker.WithDocument(doc),
		walker.WithUserContext(s.ctx),
		walker.WithMaxSchemaDepth(s.config.MaxSchemaDepth),
		walker.WithRefHandler(func(wc *walker.WalkContext, ref *walker.RefInfo) walker.Action {
			if newRef, ok := names.rewriteRef(ref.Ref); ok {
				ref.SetRef(newRef)
				rewritten++
			}
			return walker.Continue
		}),
		walker.WithOperationHandler(func(wc *walker.WalkContext, op *parser.Operation) walker.Action {
			for i, tag := range op.Tags {
				op.Tags[i] = names.resolve(CategoryTags, tag)
			}
			names.renameSecurityKeys(op.Security)
			return walker.Continue
		}),
		walker.WithLinkHandler(func(wc *walker.WalkContext, link *parser.Link) walker.Action {
			link.OperationID = names.resolve(CategoryOperationIDs, link.OperationID)
			return walker.Continue
		}),
		walker.WithSchemaHandler(func(wc *walker.WalkContext, schema *parser.Schema) walker.Action {
			if schema.Discriminator != nil {
				names.rewriteDiscriminator(schema.Discriminator)
			}
			return walker.Continue
		}),
		walker.WithSchemaSkippedHandler(func(wc *walker.WalkContext, reason string, schema *parser.Schema) {
			if reason == "depth" && tooDeep == "" {
				tooDeep = wc.JSONPath
			}
		}),
	)
	if err != nil {
		return err
	}
	if tooDeep != "" {
		return &oaserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        int64(s.config.MaxSchemaDepth),
			Message:      "schema at " + tooDeep + " nests too deeply to rewrite its references",
		}
	}
	names.renameSecurityKeys(doc.Security)

	s.log.Debug("references rewritten", "document", s.label(idx), "refs", rewritten)
	return nil
}
