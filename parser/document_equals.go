package parser

// Equals reports whether two Documents are structurally equal.
// Fields are compared cheapest first so unequal documents return early.
func (d *Document) Equals(other *Document) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.OpenAPI != other.OpenAPI {
		return false
	}
	if !d.Info.Equals(other.Info) {
		return false
	}
	if !d.ExternalDocs.Equals(other.ExternalDocs) {
		return false
	}
	if !equalSlice(d.Servers, other.Servers) {
		return false
	}
	if !equalSlice(d.Tags, other.Tags) {
		return false
	}
	if !equalSecurityRequirements(d.Security, other.Security) {
		return false
	}
	if !equalMap(d.Paths, other.Paths) {
		return false
	}
	if !equalMap(d.Webhooks, other.Webhooks) {
		return false
	}
	if !d.Components.Equals(other.Components) {
		return false
	}
	return equalExtensions(d.Extra, other.Extra)
}

// Equals reports whether two Components are structurally equal.
// A nil Components equals an empty one.
func (c *Components) Equals(other *Components) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return c.IsEmpty() && other.IsEmpty()
	}
	return equalMap(c.Schemas, other.Schemas) &&
		equalMap(c.Responses, other.Responses) &&
		equalMap(c.Parameters, other.Parameters) &&
		equalMap(c.Examples, other.Examples) &&
		equalMap(c.RequestBodies, other.RequestBodies) &&
		equalMap(c.Headers, other.Headers) &&
		equalMap(c.SecuritySchemes, other.SecuritySchemes) &&
		equalMap(c.Links, other.Links) &&
		equalMap(c.Callbacks, other.Callbacks) &&
		equalMap(c.PathItems, other.PathItems) &&
		equalExtensions(c.Extra, other.Extra)
}

// Equals reports whether two Info objects are structurally equal.
func (i *Info) Equals(other *Info) bool {
	if i == other {
		return true
	}
	if i == nil || other == nil {
		return false
	}
	return i.Title == other.Title &&
		i.Version == other.Version &&
		i.Summary == other.Summary &&
		i.Description == other.Description &&
		i.TermsOfService == other.TermsOfService &&
		i.Contact.Equals(other.Contact) &&
		i.License.Equals(other.License) &&
		equalExtensions(i.Extra, other.Extra)
}

// Equals reports whether two Contact objects are structurally equal.
func (c *Contact) Equals(other *Contact) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.Name == other.Name && c.URL == other.URL && c.Email == other.Email &&
		equalExtensions(c.Extra, other.Extra)
}

// Equals reports whether two License objects are structurally equal.
func (l *License) Equals(other *License) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return l.Name == other.Name && l.URL == other.URL && l.Identifier == other.Identifier &&
		equalExtensions(l.Extra, other.Extra)
}

// Equals reports whether two ExternalDocs objects are structurally equal.
func (e *ExternalDocs) Equals(other *ExternalDocs) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.URL == other.URL && e.Description == other.Description &&
		equalExtensions(e.Extra, other.Extra)
}

// Equals reports whether two Tags are structurally equal.
func (t *Tag) Equals(other *Tag) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.Name == other.Name &&
		t.Description == other.Description &&
		t.ExternalDocs.Equals(other.ExternalDocs) &&
		equalExtensions(t.Extra, other.Extra)
}

// Equals reports whether two Servers are structurally equal.
func (s *Server) Equals(other *Server) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.URL == other.URL &&
		s.Description == other.Description &&
		equalServerVariables(s.Variables, other.Variables) &&
		equalExtensions(s.Extra, other.Extra)
}
