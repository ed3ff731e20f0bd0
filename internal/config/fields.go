package config

import "github.com/conn-castle/deck-builder/internal/messages"

// FieldType classifies the kind of value a config field accepts.
type FieldType string

const (
	// FieldEnum accepts one of a fixed set of options.
	FieldEnum FieldType = "enum"
	// FieldFreetext accepts arbitrary string input.
	FieldFreetext FieldType = "freetext"
	// FieldPath accepts a filesystem path; "~" expands to the home directory.
	FieldPath FieldType = "path"
)

// FieldOption describes a single selectable value for a field.
type FieldOption struct {
	Value       string
	Description string // empty for options without descriptions
}

// FieldDef describes a single config field's type and valid options.
type FieldDef struct {
	Key     string
	Type    FieldType
	Options []FieldOption
}

// fields is the ordered registry of config fields with constrained values.
var fields = []FieldDef{
	{Key: "profiles_dir", Type: FieldPath},
	{Key: "default_template", Type: FieldPath},
	{Key: "theme.brand_name", Type: FieldFreetext},
	{Key: "theme.font", Type: FieldFreetext},
	{
		Key:  "logging.level",
		Type: FieldEnum,
		Options: []FieldOption{
			{Value: "debug", Description: messages.ConfigLogLevelDebugDescription},
			{Value: "info", Description: messages.ConfigLogLevelInfoDescription},
			{Value: "warn"},
			{Value: "error"},
		},
	},
	{
		Key:     "logging.format",
		Type:    FieldEnum,
		Options: []FieldOption{{Value: "console"}, {Value: "json"}},
	},
	{
		Key:  "warnings.noise_mode",
		Type: FieldEnum,
		Options: []FieldOption{
			{Value: "default", Description: messages.ConfigNoiseDefaultDescription},
			{Value: "reduce", Description: messages.ConfigNoiseReduceDescription},
			{Value: "quiet", Description: messages.ConfigNoiseQuietDescription},
		},
	},
}

// Fields returns a copy of the field registry.
func Fields() []FieldDef {
	out := make([]FieldDef, len(fields))
	copy(out, fields)
	return out
}

// LookupField returns the definition for key.
func LookupField(key string) (FieldDef, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDef{}, false
}

// OptionValues lists the allowed values of an enum field.
func (f FieldDef) OptionValues() []string {
	out := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		out = append(out, o.Value)
	}
	return out
}

// allows reports whether value is a valid option for the enum field key.
func allows(key, value string) bool {
	field, ok := LookupField(key)
	if !ok {
		return false
	}
	for _, opt := range field.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
