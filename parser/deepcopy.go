package parser

import (
	"errors"

	"github.com/erraggy/oasmerge/oaserrors"
)

// Copy returns a deep copy of doc that shares no slice, map, or pointer with it.
// A value of a kind the model does not allow is reported as an *oaserrors.ShapeError
// instead of panicking.
func Copy(doc *Document) (cp *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = RecoverShapeError(r)
		}
	}()
	return doc.DeepCopy(), nil
}

// RecoverShapeError converts a recovered panic value into an error.
// Shape errors raised by DeepCopy or Equals are returned as-is; any other
// panic is re-raised since it is not a model problem.
func RecoverShapeError(r any) error {
	if err, ok := r.(error); ok {
		var shapeErr *oaserrors.ShapeError
		if errors.As(err, &shapeErr) {
			return shapeErr
		}
	}
	panic(r)
}

// DeepCopy creates a deep copy of the Document.
func (d *Document) DeepCopy() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		OpenAPI:      d.OpenAPI,
		Info:         d.Info.DeepCopy(),
		Servers:      deepCopySlice(d.Servers),
		Paths:        deepCopyPaths(d.Paths),
		Webhooks:     deepCopyMap(d.Webhooks),
		Components:   d.Components.DeepCopy(),
		Security:     deepCopySecurityRequirements(d.Security),
		Tags:         deepCopySlice(d.Tags),
		ExternalDocs: d.ExternalDocs.DeepCopy(),
		Extra:        deepCopyExtensions(d.Extra),
	}
}

// DeepCopy creates a deep copy of the Components.
func (c *Components) DeepCopy() *Components {
	if c == nil {
		return nil
	}
	return &Components{
		Schemas:         deepCopyMap(c.Schemas),
		Responses:       deepCopyMap(c.Responses),
		Parameters:      deepCopyMap(c.Parameters),
		Examples:        deepCopyMap(c.Examples),
		RequestBodies:   deepCopyMap(c.RequestBodies),
		Headers:         deepCopyMap(c.Headers),
		SecuritySchemes: deepCopyMap(c.SecuritySchemes),
		Links:           deepCopyMap(c.Links),
		Callbacks:       deepCopyMap(c.Callbacks),
		PathItems:       deepCopyMap(c.PathItems),
		Extra:           deepCopyExtensions(c.Extra),
	}
}

// DeepCopy creates a deep copy of the Info.
func (i *Info) DeepCopy() *Info {
	if i == nil {
		return nil
	}
	return &Info{
		Title:          i.Title,
		Description:    i.Description,
		TermsOfService: i.TermsOfService,
		Contact:        i.Contact.DeepCopy(),
		License:        i.License.DeepCopy(),
		Version:        i.Version,
		Summary:        i.Summary,
		Extra:          deepCopyExtensions(i.Extra),
	}
}

// DeepCopy creates a deep copy of the Contact.
func (c *Contact) DeepCopy() *Contact {
	if c == nil {
		return nil
	}
	return &Contact{Name: c.Name, URL: c.URL, Email: c.Email, Extra: deepCopyExtensions(c.Extra)}
}

// DeepCopy creates a deep copy of the License.
func (l *License) DeepCopy() *License {
	if l == nil {
		return nil
	}
	return &License{Name: l.Name, URL: l.URL, Identifier: l.Identifier, Extra: deepCopyExtensions(l.Extra)}
}

// DeepCopy creates a deep copy of the ExternalDocs.
func (e *ExternalDocs) DeepCopy() *ExternalDocs {
	if e == nil {
		return nil
	}
	return &ExternalDocs{Description: e.Description, URL: e.URL, Extra: deepCopyExtensions(e.Extra)}
}

// DeepCopy creates a deep copy of the Tag.
func (t *Tag) DeepCopy() *Tag {
	if t == nil {
		return nil
	}
	return &Tag{
		Name:         t.Name,
		Description:  t.Description,
		ExternalDocs: t.ExternalDocs.DeepCopy(),
		Extra:        deepCopyExtensions(t.Extra),
	}
}

// DeepCopy creates a deep copy of the Server.
func (s *Server) DeepCopy() *Server {
	if s == nil {
		return nil
	}
	return &Server{
		URL:         s.URL,
		Description: s.Description,
		Variables:   deepCopyServerVariables(s.Variables),
		Extra:       deepCopyExtensions(s.Extra),
	}
}

// DeepCopy creates a deep copy of the PathItem.
func (p *PathItem) DeepCopy() *PathItem {
	if p == nil {
		return nil
	}
	return &PathItem{
		Ref:         p.Ref,
		Summary:     p.Summary,
		Description: p.Description,
		Get:         p.Get.DeepCopy(),
		Put:         p.Put.DeepCopy(),
		Post:        p.Post.DeepCopy(),
		Delete:      p.Delete.DeepCopy(),
		Options:     p.Options.DeepCopy(),
		Head:        p.Head.DeepCopy(),
		Patch:       p.Patch.DeepCopy(),
		Trace:       p.Trace.DeepCopy(),
		Servers:     deepCopySlice(p.Servers),
		Parameters:  deepCopySlice(p.Parameters),
		Extra:       deepCopyExtensions(p.Extra),
	}
}

// DeepCopy creates a deep copy of the Operation.
func (o *Operation) DeepCopy() *Operation {
	if o == nil {
		return nil
	}
	return &Operation{
		Tags:         deepCopyStrings(o.Tags),
		Summary:      o.Summary,
		Description:  o.Description,
		ExternalDocs: o.ExternalDocs.DeepCopy(),
		OperationID:  o.OperationID,
		Parameters:   deepCopySlice(o.Parameters),
		RequestBody:  o.RequestBody.DeepCopy(),
		Responses:    o.Responses.DeepCopy(),
		Callbacks:    deepCopyMap(o.Callbacks),
		Deprecated:   o.Deprecated,
		Security:     deepCopySecurityRequirements(o.Security),
		Servers:      deepCopySlice(o.Servers),
		Extra:        deepCopyExtensions(o.Extra),
	}
}

// DeepCopy creates a deep copy of the Responses.
func (r *Responses) DeepCopy() *Responses {
	if r == nil {
		return nil
	}
	return &Responses{Default: r.Default.DeepCopy(), Codes: deepCopyMap(r.Codes)}
}

// DeepCopy creates a deep copy of the Response.
func (r *Response) DeepCopy() *Response {
	if r == nil {
		return nil
	}
	return &Response{
		Ref:         r.Ref,
		Description: r.Description,
		Headers:     deepCopyMap(r.Headers),
		Content:     deepCopyMap(r.Content),
		Links:       deepCopyMap(r.Links),
		Extra:       deepCopyExtensions(r.Extra),
	}
}

// DeepCopy creates a deep copy of the Callback.
func (c *Callback) DeepCopy() *Callback {
	if c == nil {
		return nil
	}
	return &Callback{Ref: c.Ref, PathItems: deepCopyMap(c.PathItems)}
}

// DeepCopy creates a deep copy of the Link.
func (l *Link) DeepCopy() *Link {
	if l == nil {
		return nil
	}
	var params map[string]any
	if l.Parameters != nil {
		params = make(map[string]any, len(l.Parameters))
		for k, v := range l.Parameters {
			params[k] = deepCopyJSONValue(v, "link.parameters."+k)
		}
	}
	return &Link{
		Ref:          l.Ref,
		OperationRef: l.OperationRef,
		OperationID:  l.OperationID,
		Parameters:   params,
		RequestBody:  deepCopyJSONValue(l.RequestBody, "link.requestBody"),
		Description:  l.Description,
		Server:       l.Server.DeepCopy(),
		Extra:        deepCopyExtensions(l.Extra),
	}
}

// DeepCopy creates a deep copy of the MediaType.
func (m *MediaType) DeepCopy() *MediaType {
	if m == nil {
		return nil
	}
	return &MediaType{
		Schema:   m.Schema.DeepCopy(),
		Example:  deepCopyJSONValue(m.Example, "mediaType.example"),
		Examples: deepCopyMap(m.Examples),
		Encoding: deepCopyMap(m.Encoding),
		Extra:    deepCopyExtensions(m.Extra),
	}
}

// DeepCopy creates a deep copy of the Example.
func (e *Example) DeepCopy() *Example {
	if e == nil {
		return nil
	}
	return &Example{
		Ref:           e.Ref,
		Summary:       e.Summary,
		Description:   e.Description,
		Value:         deepCopyJSONValue(e.Value, "example.value"),
		ExternalValue: e.ExternalValue,
		Extra:         deepCopyExtensions(e.Extra),
	}
}

// DeepCopy creates a deep copy of the Encoding.
func (e *Encoding) DeepCopy() *Encoding {
	if e == nil {
		return nil
	}
	return &Encoding{
		ContentType:   e.ContentType,
		Headers:       deepCopyMap(e.Headers),
		Style:         e.Style,
		Explode:       deepCopyBoolPtr(e.Explode),
		AllowReserved: e.AllowReserved,
		Extra:         deepCopyExtensions(e.Extra),
	}
}

// DeepCopy creates a deep copy of the Parameter.
func (p *Parameter) DeepCopy() *Parameter {
	if p == nil {
		return nil
	}
	return &Parameter{
		Ref:             p.Ref,
		Name:            p.Name,
		In:              p.In,
		Description:     p.Description,
		Required:        p.Required,
		Deprecated:      p.Deprecated,
		AllowEmptyValue: p.AllowEmptyValue,
		Style:           p.Style,
		Explode:         deepCopyBoolPtr(p.Explode),
		AllowReserved:   p.AllowReserved,
		Schema:          p.Schema.DeepCopy(),
		Example:         deepCopyJSONValue(p.Example, "parameter.example"),
		Examples:        deepCopyMap(p.Examples),
		Content:         deepCopyMap(p.Content),
		Extra:           deepCopyExtensions(p.Extra),
	}
}

// DeepCopy creates a deep copy of the RequestBody.
func (r *RequestBody) DeepCopy() *RequestBody {
	if r == nil {
		return nil
	}
	return &RequestBody{
		Ref:         r.Ref,
		Description: r.Description,
		Content:     deepCopyMap(r.Content),
		Required:    r.Required,
		Extra:       deepCopyExtensions(r.Extra),
	}
}

// DeepCopy creates a deep copy of the Header.
func (h *Header) DeepCopy() *Header {
	if h == nil {
		return nil
	}
	return &Header{
		Ref:         h.Ref,
		Description: h.Description,
		Required:    h.Required,
		Deprecated:  h.Deprecated,
		Style:       h.Style,
		Explode:     deepCopyBoolPtr(h.Explode),
		Schema:      h.Schema.DeepCopy(),
		Example:     deepCopyJSONValue(h.Example, "header.example"),
		Examples:    deepCopyMap(h.Examples),
		Content:     deepCopyMap(h.Content),
		Extra:       deepCopyExtensions(h.Extra),
	}
}

// DeepCopy creates a deep copy of the Schema.
func (s *Schema) DeepCopy() *Schema {
	if s == nil {
		return nil
	}
	return &Schema{
		Ref:                   s.Ref,
		Schema:                s.Schema,
		Title:                 s.Title,
		Description:           s.Description,
		Default:               deepCopyJSONValue(s.Default, "schema.default"),
		Example:               deepCopyJSONValue(s.Example, "schema.example"),
		Examples:              deepCopyAnySlice(s.Examples, "schema.examples"),
		Type:                  deepCopySchemaType(s.Type),
		Format:                s.Format,
		Enum:                  deepCopyAnySlice(s.Enum, "schema.enum"),
		Const:                 deepCopyJSONValue(s.Const, "schema.const"),
		MultipleOf:            deepCopyFloat64Ptr(s.MultipleOf),
		Maximum:               deepCopyFloat64Ptr(s.Maximum),
		ExclusiveMaximum:      deepCopyJSONValue(s.ExclusiveMaximum, "schema.exclusiveMaximum"),
		Minimum:               deepCopyFloat64Ptr(s.Minimum),
		ExclusiveMinimum:      deepCopyJSONValue(s.ExclusiveMinimum, "schema.exclusiveMinimum"),
		MaxLength:             deepCopyIntPtr(s.MaxLength),
		MinLength:             deepCopyIntPtr(s.MinLength),
		Pattern:               s.Pattern,
		ContentEncoding:       s.ContentEncoding,
		ContentMediaType:      s.ContentMediaType,
		ContentSchema:         s.ContentSchema.DeepCopy(),
		Items:                 s.Items.DeepCopy(),
		PrefixItems:           deepCopySlice(s.PrefixItems),
		AdditionalItems:       deepCopySchemaOrBool(s.AdditionalItems, "additionalItems"),
		UnevaluatedItems:      deepCopySchemaOrBool(s.UnevaluatedItems, "unevaluatedItems"),
		MaxItems:              deepCopyIntPtr(s.MaxItems),
		MinItems:              deepCopyIntPtr(s.MinItems),
		UniqueItems:           s.UniqueItems,
		Contains:              s.Contains.DeepCopy(),
		MaxContains:           deepCopyIntPtr(s.MaxContains),
		MinContains:           deepCopyIntPtr(s.MinContains),
		Properties:            deepCopyMap(s.Properties),
		PatternProperties:     deepCopyMap(s.PatternProperties),
		AdditionalProperties:  deepCopySchemaOrBool(s.AdditionalProperties, "additionalProperties"),
		UnevaluatedProperties: deepCopySchemaOrBool(s.UnevaluatedProperties, "unevaluatedProperties"),
		Required:              deepCopyStrings(s.Required),
		PropertyNames:         s.PropertyNames.DeepCopy(),
		MaxProperties:         deepCopyIntPtr(s.MaxProperties),
		MinProperties:         deepCopyIntPtr(s.MinProperties),
		DependentRequired:     deepCopyStringSliceMap(s.DependentRequired),
		DependentSchemas:      deepCopyMap(s.DependentSchemas),
		If:                    s.If.DeepCopy(),
		Then:                  s.Then.DeepCopy(),
		Else:                  s.Else.DeepCopy(),
		AllOf:                 deepCopySlice(s.AllOf),
		AnyOf:                 deepCopySlice(s.AnyOf),
		OneOf:                 deepCopySlice(s.OneOf),
		Not:                   s.Not.DeepCopy(),
		Nullable:              s.Nullable,
		Discriminator:         s.Discriminator.DeepCopy(),
		ReadOnly:              s.ReadOnly,
		WriteOnly:             s.WriteOnly,
		ExternalDocs:          s.ExternalDocs.DeepCopy(),
		Deprecated:            s.Deprecated,
		ID:                    s.ID,
		Anchor:                s.Anchor,
		DynamicRef:            s.DynamicRef,
		DynamicAnchor:         s.DynamicAnchor,
		Comment:               s.Comment,
		Defs:                  deepCopyMap(s.Defs),
		Extra:                 deepCopyExtensions(s.Extra),
	}
}

// DeepCopy creates a deep copy of the Discriminator.
func (d *Discriminator) DeepCopy() *Discriminator {
	if d == nil {
		return nil
	}
	return &Discriminator{
		PropertyName: d.PropertyName,
		Mapping:      deepCopyStringMap(d.Mapping),
		Extra:        deepCopyExtensions(d.Extra),
	}
}

// DeepCopy creates a deep copy of the SecurityScheme.
func (s *SecurityScheme) DeepCopy() *SecurityScheme {
	if s == nil {
		return nil
	}
	return &SecurityScheme{
		Ref:              s.Ref,
		Type:             s.Type,
		Description:      s.Description,
		Name:             s.Name,
		In:               s.In,
		Scheme:           s.Scheme,
		BearerFormat:     s.BearerFormat,
		Flows:            s.Flows.DeepCopy(),
		OpenIDConnectURL: s.OpenIDConnectURL,
		Extra:            deepCopyExtensions(s.Extra),
	}
}

// DeepCopy creates a deep copy of the OAuthFlows.
func (f *OAuthFlows) DeepCopy() *OAuthFlows {
	if f == nil {
		return nil
	}
	return &OAuthFlows{
		Implicit:          f.Implicit.DeepCopy(),
		Password:          f.Password.DeepCopy(),
		ClientCredentials: f.ClientCredentials.DeepCopy(),
		AuthorizationCode: f.AuthorizationCode.DeepCopy(),
		Extra:             deepCopyExtensions(f.Extra),
	}
}

// DeepCopy creates a deep copy of the OAuthFlow.
func (f *OAuthFlow) DeepCopy() *OAuthFlow {
	if f == nil {
		return nil
	}
	return &OAuthFlow{
		AuthorizationURL: f.AuthorizationURL,
		TokenURL:         f.TokenURL,
		RefreshURL:       f.RefreshURL,
		Scopes:           deepCopyStringMap(f.Scopes),
		Extra:            deepCopyExtensions(f.Extra),
	}
}
