package parser

// Equals reports whether two PathItems are structurally equal.
func (p *PathItem) Equals(other *PathItem) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Ref == other.Ref &&
		p.Summary == other.Summary &&
		p.Description == other.Description &&
		p.Get.Equals(other.Get) &&
		p.Put.Equals(other.Put) &&
		p.Post.Equals(other.Post) &&
		p.Delete.Equals(other.Delete) &&
		p.Options.Equals(other.Options) &&
		p.Head.Equals(other.Head) &&
		p.Patch.Equals(other.Patch) &&
		p.Trace.Equals(other.Trace) &&
		equalSlice(p.Servers, other.Servers) &&
		equalSlice(p.Parameters, other.Parameters) &&
		equalExtensions(p.Extra, other.Extra)
}

// Equals reports whether two Operations are structurally equal.
// A nil Security (no override) differs from an empty one (security disabled).
func (o *Operation) Equals(other *Operation) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	if o.OperationID != other.OperationID ||
		o.Summary != other.Summary ||
		o.Description != other.Description ||
		o.Deprecated != other.Deprecated {
		return false
	}
	if (o.Security == nil) != (other.Security == nil) {
		return false
	}
	return equalStringSlice(o.Tags, other.Tags) &&
		o.ExternalDocs.Equals(other.ExternalDocs) &&
		equalSlice(o.Parameters, other.Parameters) &&
		o.RequestBody.Equals(other.RequestBody) &&
		o.Responses.Equals(other.Responses) &&
		equalMap(o.Callbacks, other.Callbacks) &&
		equalSecurityRequirements(o.Security, other.Security) &&
		equalSlice(o.Servers, other.Servers) &&
		equalExtensions(o.Extra, other.Extra)
}

// Equals reports whether two Responses containers are structurally equal.
func (r *Responses) Equals(other *Responses) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.Default.Equals(other.Default) && equalMap(r.Codes, other.Codes)
}

// Equals reports whether two Responses are structurally equal.
func (r *Response) Equals(other *Response) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.Ref == other.Ref &&
		r.Description == other.Description &&
		equalMap(r.Headers, other.Headers) &&
		equalMap(r.Content, other.Content) &&
		equalMap(r.Links, other.Links) &&
		equalExtensions(r.Extra, other.Extra)
}

// Equals reports whether two Callbacks are structurally equal.
func (c *Callback) Equals(other *Callback) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.Ref == other.Ref && equalMap(c.PathItems, other.PathItems)
}

// Equals reports whether two Links are structurally equal.
func (l *Link) Equals(other *Link) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return l.Ref == other.Ref &&
		l.OperationRef == other.OperationRef &&
		l.OperationID == other.OperationID &&
		l.Description == other.Description &&
		equalExtensions(l.Parameters, other.Parameters) &&
		equalJSONValue(l.RequestBody, other.RequestBody, "link.requestBody") &&
		l.Server.Equals(other.Server) &&
		equalExtensions(l.Extra, other.Extra)
}

// Equals reports whether two MediaTypes are structurally equal.
func (m *MediaType) Equals(other *MediaType) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	return m.Schema.Equals(other.Schema) &&
		equalJSONValue(m.Example, other.Example, "mediaType.example") &&
		equalMap(m.Examples, other.Examples) &&
		equalMap(m.Encoding, other.Encoding) &&
		equalExtensions(m.Extra, other.Extra)
}

// Equals reports whether two Examples are structurally equal.
func (e *Example) Equals(other *Example) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.Ref == other.Ref &&
		e.Summary == other.Summary &&
		e.Description == other.Description &&
		e.ExternalValue == other.ExternalValue &&
		equalJSONValue(e.Value, other.Value, "example.value") &&
		equalExtensions(e.Extra, other.Extra)
}

// Equals reports whether two Encodings are structurally equal.
func (e *Encoding) Equals(other *Encoding) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.ContentType == other.ContentType &&
		e.Style == other.Style &&
		e.AllowReserved == other.AllowReserved &&
		equalBoolPtr(e.Explode, other.Explode) &&
		equalMap(e.Headers, other.Headers) &&
		equalExtensions(e.Extra, other.Extra)
}

// Equals reports whether two Parameters are structurally equal.
func (p *Parameter) Equals(other *Parameter) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Ref == other.Ref &&
		p.Name == other.Name &&
		p.In == other.In &&
		p.Description == other.Description &&
		p.Required == other.Required &&
		p.Deprecated == other.Deprecated &&
		p.AllowEmptyValue == other.AllowEmptyValue &&
		p.Style == other.Style &&
		p.AllowReserved == other.AllowReserved &&
		equalBoolPtr(p.Explode, other.Explode) &&
		p.Schema.Equals(other.Schema) &&
		equalJSONValue(p.Example, other.Example, "parameter.example") &&
		equalMap(p.Examples, other.Examples) &&
		equalMap(p.Content, other.Content) &&
		equalExtensions(p.Extra, other.Extra)
}

// Equals reports whether two RequestBodies are structurally equal.
func (r *RequestBody) Equals(other *RequestBody) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.Ref == other.Ref &&
		r.Description == other.Description &&
		r.Required == other.Required &&
		equalMap(r.Content, other.Content) &&
		equalExtensions(r.Extra, other.Extra)
}

// Equals reports whether two Headers are structurally equal.
func (h *Header) Equals(other *Header) bool {
	if h == other {
		return true
	}
	if h == nil || other == nil {
		return false
	}
	return h.Ref == other.Ref &&
		h.Description == other.Description &&
		h.Required == other.Required &&
		h.Deprecated == other.Deprecated &&
		h.Style == other.Style &&
		equalBoolPtr(h.Explode, other.Explode) &&
		h.Schema.Equals(other.Schema) &&
		equalJSONValue(h.Example, other.Example, "header.example") &&
		equalMap(h.Examples, other.Examples) &&
		equalMap(h.Content, other.Content) &&
		equalExtensions(h.Extra, other.Extra)
}
