package merger

import "github.com/erraggy/oasmerge/parser"

// classification records which cross-cutting attributes are identical across
// every accepted document.
type classification struct {
	security     bool
	servers      bool
	info         bool
	externalDocs bool
}

// classify compares each document's security, servers, info and externalDocs
// with the first document's. Structural equality is transitive, so comparing
// against one document is enough.
func classify(docs []*parser.Document) (cls classification, err error) {
	cls = classification{security: true, servers: true, info: true, externalDocs: true}
	if len(docs) == 0 {
		return cls, nil
	}
	err = catchShape(func() {
		first := docs[0]
		for _, doc := range docs[1:] {
			cls.security = cls.security && parser.EqualSecurity(first.Security, doc.Security)
			cls.servers = cls.servers && parser.EqualServers(first.Servers, doc.Servers)
			cls.info = cls.info && first.Info.Equals(doc.Info)
			cls.externalDocs = cls.externalDocs && first.ExternalDocs.Equals(doc.ExternalDocs)
		}
	})
	return cls, err
}
