package parser

// Document-level metadata objects. Every object keeps its specification
// extensions in Extra so they survive a parse/merge/write round trip.

// Info is the API metadata. The merger keeps it only when all inputs agree.
type Info struct {
	Title          string         `yaml:"title" json:"title"`
	Summary        string         `yaml:"summary,omitempty" json:"summary,omitempty"` // 3.1
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string         `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact       `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License       `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string         `yaml:"version" json:"version"`
	Extra          map[string]any `yaml:",inline" json:"-"`
}

// Contact is the API owner's contact information.
type Contact struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Email string         `yaml:"email,omitempty" json:"email,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License is the API license.
type License struct {
	Name       string         `yaml:"name" json:"name"`
	Identifier string         `yaml:"identifier,omitempty" json:"identifier,omitempty"` // 3.1
	URL        string         `yaml:"url,omitempty" json:"url,omitempty"`
	Extra      map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs points at documentation outside the document.
type ExternalDocs struct {
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string         `yaml:"url" json:"url"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Tag describes a tag used by operations. Tag names share one namespace
// across merged documents.
type Tag struct {
	Name         string         `yaml:"name" json:"name"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extra        map[string]any `yaml:",inline" json:"-"`
}

// Server is a base URL the API is served from. Context roots are matched
// against, and stripped from, URL.
type Server struct {
	URL         string                    `yaml:"url" json:"url"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	Extra       map[string]any            `yaml:",inline" json:"-"`
}

// ServerVariable is a substitution variable of a server URL template.
type ServerVariable struct {
	Enum        []string       `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string         `yaml:"default" json:"default"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}
