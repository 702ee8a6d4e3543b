package llm

// ToolDefinition declares one callable function a model may invoke.
type ToolDefinition struct {
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	ParametersSchema map[string]any `json:"parameters_schema"`
}

// ToolChoiceKind discriminates the closed ToolChoice variant set.
type ToolChoiceKind string

const (
	ToolChoiceNone     ToolChoiceKind = "none"
	ToolChoiceAuto     ToolChoiceKind = "auto"
	ToolChoiceRequired ToolChoiceKind = "required"
	ToolChoiceSpecific ToolChoiceKind = "specific"
)

// ToolChoice controls how a model may use the declared tools. Build one with
// NewToolChoiceAuto et al; the zero value (empty Kind) behaves as Auto.
type ToolChoice struct {
	Kind ToolChoiceKind `json:"kind"`
	Name string         `json:"name,omitempty"` // set only when Kind == ToolChoiceSpecific
}

// DefaultToolChoice returns the default tool choice, Auto.
func DefaultToolChoice() ToolChoice {
	return ToolChoice{Kind: ToolChoiceAuto}
}

func NewToolChoiceNone() ToolChoice     { return ToolChoice{Kind: ToolChoiceNone} }
func NewToolChoiceAuto() ToolChoice     { return ToolChoice{Kind: ToolChoiceAuto} }
func NewToolChoiceRequired() ToolChoice { return ToolChoice{Kind: ToolChoiceRequired} }

// NewToolChoiceSpecific builds a ToolChoice forcing invocation of the named tool.
func NewToolChoiceSpecific(name string) ToolChoice {
	return ToolChoice{Kind: ToolChoiceSpecific, Name: name}
}

// effectiveKind returns the choice's kind, defaulting an empty Kind to Auto so callers
// who build a zero-value ToolChoice still get sensible behavior.
func (c ToolChoice) effectiveKind() ToolChoiceKind {
	if c.Kind == "" {
		return ToolChoiceAuto
	}
	return c.Kind
}

// ResponseFormatKind discriminates the closed ResponseFormat variant set.
type ResponseFormatKind string

const (
	ResponseFormatText       ResponseFormatKind = "text"
	ResponseFormatJsonObject ResponseFormatKind = "json_object"
	ResponseFormatJsonSchema ResponseFormatKind = "json_schema"
)

// ResponseFormat controls how the model is asked to shape its output. The zero value
// behaves as Text (the default).
type ResponseFormat struct {
	Kind ResponseFormatKind `json:"kind"`

	// JsonSchema holds the JsonSchema{name, schema} variant's payload.
	JsonSchema *JsonSchemaFormat `json:"json_schema,omitempty"`
}

// JsonSchemaFormat is the payload of the ResponseFormat::JsonSchema variant.
type JsonSchemaFormat struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

// DefaultResponseFormat returns the default response format, Text.
func DefaultResponseFormat() ResponseFormat {
	return ResponseFormat{Kind: ResponseFormatText}
}

func NewResponseFormatText() ResponseFormat       { return ResponseFormat{Kind: ResponseFormatText} }
func NewResponseFormatJsonObject() ResponseFormat { return ResponseFormat{Kind: ResponseFormatJsonObject} }

// NewResponseFormatJsonSchema builds a ResponseFormat requesting schema-constrained JSON.
func NewResponseFormatJsonSchema(name string, schema map[string]any) ResponseFormat {
	return ResponseFormat{Kind: ResponseFormatJsonSchema, JsonSchema: &JsonSchemaFormat{Name: name, Schema: schema}}
}

// effectiveKind returns the format's kind, defaulting an empty Kind to Text.
func (f ResponseFormat) effectiveKind() ResponseFormatKind {
	if f.Kind == "" {
		return ResponseFormatText
	}
	return f.Kind
}

// IsText reports whether f is the Text variant (including the zero value).
func (f ResponseFormat) IsText() bool {
	return f.effectiveKind() == ResponseFormatText
}

// EffectiveKind returns the effective ToolChoice kind, defaulting an unset Kind to Auto.
func (c ToolChoice) EffectiveKind() ToolChoiceKind { return c.effectiveKind() }

// EffectiveKind returns the effective ResponseFormat kind, defaulting an unset Kind to Text.
func (f ResponseFormat) EffectiveKind() ResponseFormatKind { return f.effectiveKind() }
