package parser

// Equals reports whether two Schemas are structurally equal.
// Scalar fields are compared before nested schemas.
func (s *Schema) Equals(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.Ref != other.Ref ||
		s.Title != other.Title ||
		s.Description != other.Description ||
		s.Format != other.Format ||
		s.Pattern != other.Pattern ||
		s.UniqueItems != other.UniqueItems ||
		s.Nullable != other.Nullable ||
		s.ReadOnly != other.ReadOnly ||
		s.WriteOnly != other.WriteOnly ||
		s.Deprecated != other.Deprecated ||
		s.Schema != other.Schema ||
		s.ContentEncoding != other.ContentEncoding ||
		s.ContentMediaType != other.ContentMediaType ||
		s.ID != other.ID ||
		s.Anchor != other.Anchor ||
		s.DynamicRef != other.DynamicRef ||
		s.DynamicAnchor != other.DynamicAnchor ||
		s.Comment != other.Comment {
		return false
	}
	if !equalFloat64Ptr(s.MultipleOf, other.MultipleOf) ||
		!equalFloat64Ptr(s.Maximum, other.Maximum) ||
		!equalFloat64Ptr(s.Minimum, other.Minimum) ||
		!equalIntPtr(s.MaxLength, other.MaxLength) ||
		!equalIntPtr(s.MinLength, other.MinLength) ||
		!equalIntPtr(s.MaxItems, other.MaxItems) ||
		!equalIntPtr(s.MinItems, other.MinItems) ||
		!equalIntPtr(s.MaxProperties, other.MaxProperties) ||
		!equalIntPtr(s.MinProperties, other.MinProperties) ||
		!equalIntPtr(s.MaxContains, other.MaxContains) ||
		!equalIntPtr(s.MinContains, other.MinContains) {
		return false
	}
	if !equalSchemaType(s.Type, other.Type) ||
		!equalStringSlice(s.Required, other.Required) ||
		!equalAnySlice(s.Enum, other.Enum, "schema.enum") ||
		!equalJSONValue(s.Default, other.Default, "schema.default") ||
		!equalJSONValue(s.Example, other.Example, "schema.example") ||
		!equalJSONValue(s.Const, other.Const, "schema.const") ||
		!equalAnySlice(s.Examples, other.Examples, "schema.examples") ||
		!equalJSONValue(s.ExclusiveMaximum, other.ExclusiveMaximum, "schema.exclusiveMaximum") ||
		!equalJSONValue(s.ExclusiveMinimum, other.ExclusiveMinimum, "schema.exclusiveMinimum") ||
		!equalStringSliceMap(s.DependentRequired, other.DependentRequired) {
		return false
	}
	return s.Items.Equals(other.Items) &&
		s.Not.Equals(other.Not) &&
		s.Contains.Equals(other.Contains) &&
		s.PropertyNames.Equals(other.PropertyNames) &&
		s.ContentSchema.Equals(other.ContentSchema) &&
		s.If.Equals(other.If) &&
		s.Then.Equals(other.Then) &&
		s.Else.Equals(other.Else) &&
		equalSlice(s.PrefixItems, other.PrefixItems) &&
		equalMap(s.Properties, other.Properties) &&
		equalMap(s.PatternProperties, other.PatternProperties) &&
		equalMap(s.DependentSchemas, other.DependentSchemas) &&
		equalMap(s.Defs, other.Defs) &&
		equalSchemaOrBool(s.AdditionalProperties, other.AdditionalProperties, "additionalProperties") &&
		equalSchemaOrBool(s.AdditionalItems, other.AdditionalItems, "additionalItems") &&
		equalSchemaOrBool(s.UnevaluatedItems, other.UnevaluatedItems, "unevaluatedItems") &&
		equalSchemaOrBool(s.UnevaluatedProperties, other.UnevaluatedProperties, "unevaluatedProperties") &&
		equalSlice(s.AllOf, other.AllOf) &&
		equalSlice(s.AnyOf, other.AnyOf) &&
		equalSlice(s.OneOf, other.OneOf) &&
		s.Discriminator.Equals(other.Discriminator) &&
		s.ExternalDocs.Equals(other.ExternalDocs) &&
		equalExtensions(s.Extra, other.Extra)
}

// Equals reports whether two Discriminators are structurally equal.
func (d *Discriminator) Equals(other *Discriminator) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return d.PropertyName == other.PropertyName &&
		equalStringMap(d.Mapping, other.Mapping) &&
		equalExtensions(d.Extra, other.Extra)
}

// Equals reports whether two SecuritySchemes are structurally equal.
func (s *SecurityScheme) Equals(other *SecurityScheme) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.Ref == other.Ref &&
		s.Type == other.Type &&
		s.Description == other.Description &&
		s.Name == other.Name &&
		s.In == other.In &&
		s.Scheme == other.Scheme &&
		s.BearerFormat == other.BearerFormat &&
		s.OpenIDConnectURL == other.OpenIDConnectURL &&
		s.Flows.Equals(other.Flows) &&
		equalExtensions(s.Extra, other.Extra)
}

// Equals reports whether two OAuthFlows are structurally equal.
func (f *OAuthFlows) Equals(other *OAuthFlows) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.Implicit.Equals(other.Implicit) &&
		f.Password.Equals(other.Password) &&
		f.ClientCredentials.Equals(other.ClientCredentials) &&
		f.AuthorizationCode.Equals(other.AuthorizationCode) &&
		equalExtensions(f.Extra, other.Extra)
}

// Equals reports whether two OAuthFlows are structurally equal.
func (f *OAuthFlow) Equals(other *OAuthFlow) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.AuthorizationURL == other.AuthorizationURL &&
		f.TokenURL == other.TokenURL &&
		f.RefreshURL == other.RefreshURL &&
		equalStringMap(f.Scopes, other.Scopes) &&
		equalExtensions(f.Extra, other.Extra)
}
