package merger

import (
	"strconv"

	"github.com/erraggy/oasmerge/parser"
)

// Category names a registry of names that must stay unique in the merged document.
type Category string

const (
	CategoryTags            Category = "tags"
	CategoryOperationIDs    Category = "operationIds"
	CategorySchemas         Category = "schemas"
	CategoryParameters      Category = "parameters"
	CategoryResponses       Category = "responses"
	CategoryRequestBodies   Category = "requestBodies"
	CategoryHeaders         Category = "headers"
	CategoryExamples        Category = "examples"
	CategoryLinks           Category = "links"
	CategoryCallbacks       Category = "callbacks"
	CategorySecuritySchemes Category = "securitySchemes"
	CategoryPathItems       Category = "pathItems"
	CategoryWebhooks        Category = "webhooks"
	// CategoryPaths holds path keys moved by a context root. Paths are never
	// allocated; their uniqueness comes from clash detection.
	CategoryPaths Category = "paths"
)

// equaler is a value the registry can compare for deduplication.
type equaler[V any] interface {
	Equals(V) bool
}

// operationKey identifies an operation by path and method. Accepted documents
// never share a path, so an operationId reused by a later document is always renamed.
type operationKey string

func (k operationKey) Equals(other operationKey) bool {
	return k == other
}

// registry holds, per category, every reserved name and the value it was reserved for.
type registry struct {
	reserved map[Category]map[string]any
}

func newRegistry() *registry {
	return &registry{reserved: make(map[Category]map[string]any)}
}

// claimOutcome reports how a name was claimed.
type claimOutcome int

const (
	claimTaken  claimOutcome = iota // reserved for a different value
	claimNew                        // newly reserved
	claimShared                     // reserved for an equal value
)

// claim reserves name for value, or shares it when it is already reserved for
// an equal value. It panics with a shape error if the comparison does.
func claim[V equaler[V]](r *registry, cat Category, name string, value V) claimOutcome {
	names := r.reserved[cat]
	if names == nil {
		names = make(map[string]any)
		r.reserved[cat] = names
	}
	prev, ok := names[name]
	if !ok {
		names[name] = value
		return claimNew
	}
	if p, ok := prev.(V); ok && p.Equals(value) {
		return claimShared
	}
	return claimTaken
}

// docNames memoizes old name -> new name per category for one document, so a
// name is renamed the same way everywhere in that document.
type docNames struct {
	index int
	memo  map[Category]map[string]string
}

func newDocNames(index int) *docNames {
	return &docNames{index: index, memo: make(map[Category]map[string]string)}
}

func (d *docNames) record(cat Category, oldName, newName string) {
	m := d.memo[cat]
	if m == nil {
		m = make(map[string]string)
		d.memo[cat] = m
	}
	m[oldName] = newName
}

func (d *docNames) lookup(cat Category, oldName string) (string, bool) {
	newName, ok := d.memo[cat][oldName]
	return newName, ok
}

// resolve returns the new name for oldName, or oldName when it was never allocated.
func (d *docNames) resolve(cat Category, oldName string) string {
	if newName, ok := d.lookup(cat, oldName); ok {
		return newName
	}
	return oldName
}

// allocate returns the name oldName gets in the merged document:
//   - an empty name stays empty;
//   - a name already allocated in this document keeps its first allocation,
//     whatever value it is given now;
//   - otherwise the first of oldName, oldName1, oldName2, ... that is free or
//     reserved for an equal value.
func allocate[V equaler[V]](s *session, names *docNames, cat Category, oldName string, value V) (newName string, err error) {
	if oldName == "" {
		return "", nil
	}
	if newName, ok := names.lookup(cat, oldName); ok {
		return newName, nil
	}

	var outcome claimOutcome
	err = catchShape(func() {
		newName = oldName
		for i := 1; ; i++ {
			if outcome = claim(s.registry, cat, newName, value); outcome != claimTaken {
				return
			}
			newName = oldName + strconv.Itoa(i)
		}
	})
	if err != nil {
		return "", err
	}

	names.record(cat, oldName, newName)
	s.noteAllocation(names.index, cat, oldName, newName, outcome)
	return newName, nil
}

func (s *session) noteAllocation(idx int, cat Category, oldName, newName string, outcome claimOutcome) {
	if newName != oldName {
		s.log.Debug("renamed", "document", s.label(idx), "category", string(cat), "from", oldName, "to", newName)
		s.renames = append(s.renames, Rename{Document: idx, Category: cat, OldName: oldName, NewName: newName})
		s.result.AddWarning(newNameRenamedWarning(idx, s.inputs[idx].Name, cat, oldName, newName))
		return
	}
	if outcome == claimShared {
		s.log.Debug("deduplicated", "document", s.label(idx), "category", string(cat), "name", oldName)
		s.result.AddWarning(newNameDeduplicatedWarning(idx, s.inputs[idx].Name, cat, oldName))
	}
}

// renameRegistry allocates every key of m in sorted order and returns the
// registry keyed by the allocated names.
func renameRegistry[V equaler[V]](s *session, names *docNames, cat Category, m map[string]V) (map[string]V, error) {
	if len(m) == 0 {
		return m, nil
	}
	renamed := make(map[string]V, len(m))
	for _, name := range sortedKeys(m) {
		newName, err := allocate(s, names, cat, name, m[name])
		if err != nil {
			return nil, err
		}
		// Two entries deduplicated onto one name are equal; keep the first.
		if _, exists := renamed[newName]; !exists {
			renamed[newName] = m[name]
		}
	}
	return renamed, nil
}

// renameDocument allocates every tag, operationId, webhook and component name
// of one document and renames them in place. References are rewritten separately.
func (s *session) renameDocument(idx int) error {
	doc := s.docs[idx]
	names := s.names[idx]

	for _, tag := range doc.Tags {
		if tag == nil {
			continue
		}
		newName, err := allocate(s, names, CategoryTags, tag.Name, tag)
		if err != nil {
			return err
		}
		tag.Name = newName
	}

	if err := s.renameOperationIDs(names, "", doc.Paths); err != nil {
		return err
	}

	var err error
	if doc.Webhooks, err = renameRegistry(s, names, CategoryWebhooks, doc.Webhooks); err != nil {
		return err
	}
	if err := s.renameOperationIDs(names, "webhooks ", doc.Webhooks); err != nil {
		return err
	}

	c := doc.Components
	if c == nil {
		return nil
	}
	if c.PathItems, err = renameRegistry(s, names, CategoryPathItems, c.PathItems); err != nil {
		return err
	}
	if err := s.renameOperationIDs(names, "pathItems ", c.PathItems); err != nil {
		return err
	}
	if c.Schemas, err = renameRegistry(s, names, CategorySchemas, c.Schemas); err != nil {
		return err
	}
	if c.Parameters, err = renameRegistry(s, names, CategoryParameters, c.Parameters); err != nil {
		return err
	}
	if c.Responses, err = renameRegistry(s, names, CategoryResponses, c.Responses); err != nil {
		return err
	}
	if c.RequestBodies, err = renameRegistry(s, names, CategoryRequestBodies, c.RequestBodies); err != nil {
		return err
	}
	if c.Headers, err = renameRegistry(s, names, CategoryHeaders, c.Headers); err != nil {
		return err
	}
	if c.Examples, err = renameRegistry(s, names, CategoryExamples, c.Examples); err != nil {
		return err
	}
	if c.Links, err = renameRegistry(s, names, CategoryLinks, c.Links); err != nil {
		return err
	}
	if c.Callbacks, err = renameRegistry(s, names, CategoryCallbacks, c.Callbacks); err != nil {
		return err
	}
	if c.SecuritySchemes, err = renameRegistry(s, names, CategorySecuritySchemes, c.SecuritySchemes); err != nil {
		return err
	}
	return nil
}

// renameOperationIDs allocates the operationIds of every operation in items.
// Operations are keyed by prefix, item name and method, so a deduplicated
// item shares its operationIds too.
func (s *session) renameOperationIDs(names *docNames, prefix string, items map[string]*parser.PathItem) error {
	for _, name := range sortedKeys(items) {
		for _, mo := range items[name].Operations() {
			key := operationKey(prefix + name + " " + mo.Method)
			newID, err := allocate(s, names, CategoryOperationIDs, mo.Operation.OperationID, key)
			if err != nil {
				return err
			}
			mo.Operation.OperationID = newID
		}
	}
	return nil
}

// Compile-time checks that every registry value can be compared.
var (
	_ equaler[*parser.Tag]            = (*parser.Tag)(nil)
	_ equaler[*parser.Schema]         = (*parser.Schema)(nil)
	_ equaler[*parser.SecurityScheme] = (*parser.SecurityScheme)(nil)
	_ equaler[*parser.PathItem]       = (*parser.PathItem)(nil)
	_ equaler[operationKey]           = operationKey("")
)
