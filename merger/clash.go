package merger

import "fmt"

// detectClashes accepts documents in input order, rejecting any document that
// declares a path already owned by an accepted one. It returns the indices of
// the accepted documents.
func (s *session) detectClashes() []int {
	owners := make(map[string]int)
	accepted := make([]int, 0, len(s.docs))

	for idx, doc := range s.docs {
		paths := sortedKeys(doc.Paths)

		var problems []string
		for _, path := range paths {
			owner, taken := owners[path]
			if !taken {
				continue
			}
			problem := fmt.Sprintf("path %q in %s clashes with %s; %s excluded from merge",
				path, s.label(idx), s.label(owner), ordinal(idx))
			problems = append(problems, problem)
			s.log.Warn("path clash", "path", path, "document", s.label(idx), "owner", s.label(owner))
			s.result.AddWarning(newPathClashWarning(path, problem, idx, s.inputs[idx].Name, owner))
		}

		if len(problems) > 0 {
			s.result.Problems = append(s.result.Problems, problems...)
			s.result.Excluded = append(s.result.Excluded, idx)
			continue
		}
		for _, path := range paths {
			owners[path] = idx
		}
		accepted = append(accepted, idx)
	}
	return accepted
}
