package merger

import (
	"strings"

	"github.com/erraggy/oasmerge/parser"
)

// normalizeContextRoot returns root with a leading slash and no trailing slash.
// An empty root and "/" both normalize to "", meaning no prefix.
func normalizeContextRoot(root string) string {
	root = strings.TrimRight(strings.TrimSpace(root), "/")
	if root == "" {
		return ""
	}
	if !strings.HasPrefix(root, "/") {
		root = "/" + root
	}
	return root
}

// serverScopes returns the top-level servers followed by every path item's
// and operation's servers, in path order.
func serverScopes(doc *parser.Document) [][]*parser.Server {
	scopes := [][]*parser.Server{doc.Servers}
	for _, path := range sortedKeys(doc.Paths) {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		scopes = append(scopes, item.Servers)
		for _, mo := range item.Operations() {
			scopes = append(scopes, mo.Operation.Servers)
		}
	}
	return scopes
}

func endsWithRoot(url, root string) bool {
	return strings.HasSuffix(url, root) || strings.HasSuffix(url, root+"/")
}

func stripRoot(url, root string) string {
	url = strings.TrimSuffix(url, "/")
	url = strings.TrimSuffix(url, root)
	if url == "" {
		return "/"
	}
	return url
}

// prependContextRoot folds root into doc's path keys when every server URL in
// every scope ends with it. It is all or nothing: on failure the document is
// untouched and the first offending server URL is returned.
func prependContextRoot(doc *parser.Document, root string, names *docNames) (applied bool, offending string) {
	scopes := serverScopes(doc)
	for _, servers := range scopes {
		for _, server := range servers {
			if server != nil && !endsWithRoot(server.URL, root) {
				return false, server.URL
			}
		}
	}

	for _, servers := range scopes {
		for _, server := range servers {
			if server != nil {
				server.URL = stripRoot(server.URL, root)
			}
		}
	}

	if doc.Paths != nil {
		paths := make(parser.Paths, len(doc.Paths))
		for _, path := range sortedKeys(doc.Paths) {
			newPath := root + path
			paths[newPath] = doc.Paths[path]
			names.record(CategoryPaths, path, newPath)
		}
		doc.Paths = paths
	}
	return true, ""
}

// applyContextRoot prepends the input's context root to its private copy.
func (s *session) applyContextRoot(idx int) {
	root := normalizeContextRoot(s.inputs[idx].ContextRoot)
	if root == "" {
		return
	}
	applied, offending := prependContextRoot(s.docs[idx], root, s.names[idx])
	if !applied {
		s.log.Info("context root not applied",
			"document", s.label(idx), "contextRoot", root, "server", offending)
		s.result.AddWarning(newContextRootSkippedWarning(idx, s.inputs[idx].Name, s.label(idx), root, offending))
		return
	}
	paths := s.names[idx].memo[CategoryPaths]
	for _, old := range sortedKeys(paths) {
		s.renames = append(s.renames, Rename{Document: idx, Category: CategoryPaths, OldName: old, NewName: paths[old]})
	}
	s.log.Debug("context root applied",
		"document", s.label(idx), "contextRoot", root, "paths", len(s.docs[idx].Paths))
	s.result.AddWarning(newContextRootAppliedWarning(idx, s.inputs[idx].Name, s.label(idx), root, len(s.docs[idx].Paths)))
}
