package parser

// Schema represents a JSON Schema as used by OAS 3.0 and 3.1
type Schema struct {
	Ref    string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Schema string `yaml:"$schema,omitempty" json:"$schema,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`
	Examples    []any  `yaml:"examples,omitempty" json:"examples,omitempty"` // OAS 3.1+

	// Type validation
	Type   any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const  any    `yaml:"const,omitempty" json:"const,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in 3.0, number in 3.1+
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"` // bool in 3.0, number in 3.1+

	// String validation
	MaxLength        *int    `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int    `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          string  `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	ContentEncoding  string  `yaml:"contentEncoding,omitempty" json:"contentEncoding,omitempty"`
	ContentMediaType string  `yaml:"contentMediaType,omitempty" json:"contentMediaType,omitempty"`
	ContentSchema    *Schema `yaml:"contentSchema,omitempty" json:"contentSchema,omitempty"`

	// Array validation
	Items            *Schema   `yaml:"items,omitempty" json:"items,omitempty"`
	PrefixItems      []*Schema `yaml:"prefixItems,omitempty" json:"prefixItems,omitempty"`         // OAS 3.1+
	AdditionalItems  any       `yaml:"additionalItems,omitempty" json:"additionalItems,omitempty"` // *Schema or bool
	UnevaluatedItems any       `yaml:"unevaluatedItems,omitempty" json:"unevaluatedItems,omitempty"`
	MaxItems         *int      `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int      `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      bool      `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	Contains         *Schema   `yaml:"contains,omitempty" json:"contains,omitempty"`
	MaxContains      *int      `yaml:"maxContains,omitempty" json:"maxContains,omitempty"`
	MinContains      *int      `yaml:"minContains,omitempty" json:"minContains,omitempty"`

	// Object validation
	Properties            map[string]*Schema  `yaml:"properties,omitempty" json:"properties,omitempty"`
	PatternProperties     map[string]*Schema  `yaml:"patternProperties,omitempty" json:"patternProperties,omitempty"`
	AdditionalProperties  any                 `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool
	UnevaluatedProperties any                 `yaml:"unevaluatedProperties,omitempty" json:"unevaluatedProperties,omitempty"`
	Required              []string            `yaml:"required,omitempty" json:"required,omitempty"`
	PropertyNames         *Schema             `yaml:"propertyNames,omitempty" json:"propertyNames,omitempty"`
	MaxProperties         *int                `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties         *int                `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	DependentRequired     map[string][]string `yaml:"dependentRequired,omitempty" json:"dependentRequired,omitempty"`
	DependentSchemas      map[string]*Schema  `yaml:"dependentSchemas,omitempty" json:"dependentSchemas,omitempty"`

	// Conditional schemas (OAS 3.1+)
	If   *Schema `yaml:"if,omitempty" json:"if,omitempty"`
	Then *Schema `yaml:"then,omitempty" json:"then,omitempty"`
	Else *Schema `yaml:"else,omitempty" json:"else,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific
	Nullable      bool           `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly     bool           `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Deprecated    bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// JSON Schema 2020-12 identifiers and local definitions
	ID            string             `yaml:"$id,omitempty" json:"$id,omitempty"`
	Anchor        string             `yaml:"$anchor,omitempty" json:"$anchor,omitempty"`
	DynamicRef    string             `yaml:"$dynamicRef,omitempty" json:"$dynamicRef,omitempty"`
	DynamicAnchor string             `yaml:"$dynamicAnchor,omitempty" json:"$dynamicAnchor,omitempty"`
	Comment       string             `yaml:"$comment,omitempty" json:"$comment,omitempty"`
	Defs          map[string]*Schema `yaml:"$defs,omitempty" json:"$defs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// UnmarshalYAML decodes a schema, turning a mapping under a schema-or-bool
// keyword into a *Schema so those fields only ever hold a bool or a *Schema.
func (s *Schema) UnmarshalYAML(unmarshal func(any) error) error {
	type plain Schema
	if err := unmarshal((*plain)(s)); err != nil {
		return err
	}
	if !isMapping(s.AdditionalProperties) && !isMapping(s.AdditionalItems) &&
		!isMapping(s.UnevaluatedItems) && !isMapping(s.UnevaluatedProperties) {
		return nil
	}
	var sub struct {
		AdditionalProperties  schemaOrBool `yaml:"additionalProperties"`
		AdditionalItems       schemaOrBool `yaml:"additionalItems"`
		UnevaluatedItems      schemaOrBool `yaml:"unevaluatedItems"`
		UnevaluatedProperties schemaOrBool `yaml:"unevaluatedProperties"`
	}
	if err := unmarshal(&sub); err != nil {
		return err
	}
	sub.AdditionalProperties.assign(&s.AdditionalProperties)
	sub.AdditionalItems.assign(&s.AdditionalItems)
	sub.UnevaluatedItems.assign(&s.UnevaluatedItems)
	sub.UnevaluatedProperties.assign(&s.UnevaluatedProperties)
	return nil
}

func isMapping(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// schemaOrBool decodes a keyword that holds either a boolean or a schema.
type schemaOrBool struct {
	schema *Schema
}

func (x *schemaOrBool) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		return nil
	}
	var schema Schema
	if err := unmarshal(&schema); err != nil {
		return err
	}
	x.schema = &schema
	return nil
}

// assign replaces *dst with the decoded schema when the keyword was a mapping.
func (x schemaOrBool) assign(dst *any) {
	if x.schema != nil {
		*dst = x.schema
	}
}

// Discriminator represents a discriminator for polymorphism
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Extra        map[string]any    `yaml:",inline" json:"-"`
}
