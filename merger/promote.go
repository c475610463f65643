package merger

import (
	"slices"

	"github.com/erraggy/oasmerge/parser"
)

// promote pushes attributes that differ between documents down to a finer
// granularity. It runs only when more than one document is merged.
func (s *session) promote(idx int, cls classification) {
	doc := s.docs[idx]

	if !cls.security {
		s.pushDownSecurity(idx)
	} else if schemes := s.renamedSecuritySchemes(idx); len(schemes) > 0 {
		// The merged document keeps the first document's requirement, which
		// names the schemes before this document's renames.
		s.result.AddWarning(newSharedSecurityRenamedWarning(idx, s.inputs[idx].Name, schemes))
		s.pushDownSecurity(idx)
	}

	if !cls.servers {
		count := 0
		for _, path := range sortedKeys(doc.Paths) {
			item := doc.Paths[path]
			if item == nil || len(item.Servers) > 0 || len(doc.Servers) == 0 {
				continue
			}
			item.Servers = parser.CopyServers(doc.Servers)
			count++
		}
		doc.Servers = nil
		s.log.Debug("servers pushed down to path items", "document", s.label(idx), "pathItems", count)
		if count > 0 {
			s.result.AddWarning(newAttributePromotedWarning(idx, s.inputs[idx].Name, "servers", "path items", count))
		}
	}

	if !cls.info {
		doc.Info = s.mergedInfo()
	}
	if !cls.externalDocs {
		doc.ExternalDocs = nil
	}
}

// pushDownSecurity copies the document's top-level security into each of its
// operations and webhook operations that declare none, then clears it.
func (s *session) pushDownSecurity(idx int) {
	doc := s.docs[idx]
	count := 0
	for _, items := range []parser.Paths{doc.Paths, doc.Webhooks} {
		for _, name := range sortedKeys(items) {
			for _, mo := range items[name].Operations() {
				if mo.Operation.Security == nil && doc.Security != nil {
					mo.Operation.Security = parser.CopySecurity(doc.Security)
					count++
				}
			}
		}
	}
	doc.Security = nil
	s.log.Debug("security pushed down to operations", "document", s.label(idx), "operations", count)
	if count > 0 {
		s.result.AddWarning(newAttributePromotedWarning(idx, s.inputs[idx].Name, "security", "operations", count))
	}
}

// renamedSecuritySchemes lists, sorted, the schemes named by the document's
// top-level security that this document renamed.
func (s *session) renamedSecuritySchemes(idx int) []string {
	names := s.names[idx]
	seen := make(map[string]bool)
	var renamed []string
	for _, req := range s.docs[idx].Security {
		for _, scheme := range sortedKeys(req) {
			if seen[scheme] || names.resolve(CategorySecuritySchemes, scheme) == scheme {
				continue
			}
			seen[scheme] = true
			renamed = append(renamed, scheme)
		}
	}
	slices.Sort(renamed)
	return renamed
}

// mergedInfo returns the synthetic info used when the inputs' info objects differ.
func (s *session) mergedInfo() *parser.Info {
	return &parser.Info{Title: s.config.MergedTitle, Version: s.config.MergedVersion}
}
