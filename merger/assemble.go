package merger

import "github.com/erraggy/oasmerge/parser"

// assemble folds the processed accepted documents into a new document.
// Entries are added in input order and the first claimant of a name is kept;
// names shared through deduplication hold equal values by construction.
func (s *session) assemble(accepted []int, cls classification) *parser.Document {
	first := s.docs[accepted[0]]
	merged := &parser.Document{
		OpenAPI: first.OpenAPI,
	}

	if cls.info {
		merged.Info = first.Info.DeepCopy()
	} else {
		merged.Info = s.mergedInfo()
	}
	if cls.servers {
		merged.Servers = parser.CopyServers(first.Servers)
	}
	if cls.security {
		merged.Security = parser.CopySecurity(first.Security)
	}
	if cls.externalDocs {
		merged.ExternalDocs = first.ExternalDocs.DeepCopy()
	}

	components := &parser.Components{}
	tagNames := make(map[string]bool)
	for _, idx := range accepted {
		doc := s.docs[idx]

		for path, item := range doc.Paths {
			if merged.Paths == nil {
				merged.Paths = make(parser.Paths)
			}
			if _, exists := merged.Paths[path]; !exists {
				merged.Paths[path] = item
			}
		}

		merged.Webhooks = fold(merged.Webhooks, doc.Webhooks)

		for _, tag := range doc.Tags {
			if tag == nil || tagNames[tag.Name] {
				continue
			}
			tagNames[tag.Name] = true
			merged.Tags = append(merged.Tags, tag)
		}

		if c := doc.Components; c != nil {
			components.Schemas = fold(components.Schemas, c.Schemas)
			components.Responses = fold(components.Responses, c.Responses)
			components.Parameters = fold(components.Parameters, c.Parameters)
			components.Examples = fold(components.Examples, c.Examples)
			components.RequestBodies = fold(components.RequestBodies, c.RequestBodies)
			components.Headers = fold(components.Headers, c.Headers)
			components.SecuritySchemes = fold(components.SecuritySchemes, c.SecuritySchemes)
			components.Links = fold(components.Links, c.Links)
			components.Callbacks = fold(components.Callbacks, c.Callbacks)
			components.PathItems = fold(components.PathItems, c.PathItems)
			components.Extra = fold(components.Extra, c.Extra)
		}

		merged.Extra = fold(merged.Extra, doc.Extra)
	}

	if !components.IsEmpty() {
		merged.Components = components
	}
	return merged
}

// fold adds the entries of src that dst does not have yet.
func fold[V any](dst, src map[string]V) map[string]V {
	for name, value := range src {
		if dst == nil {
			dst = make(map[string]V, len(src))
		}
		if _, exists := dst[name]; !exists {
			dst[name] = value
		}
	}
	return dst
}
