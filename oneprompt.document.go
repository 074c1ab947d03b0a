package oneprompt

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Document is the structured in-memory prompt: ordered metadata, declared
// variables, reusable content parts, and the raw template body.
// A Document is never mutated by validation or rendering; a single instance
// is safe for unlimited concurrent read-only use.
type Document struct {
	Metadata  Metadata   `json:"metadata" yaml:"metadata"`
	Variables []Variable `json:"variables,omitempty" yaml:"variables,omitempty"`
	Parts     []Part     `json:"parts,omitempty" yaml:"parts,omitempty"`
	Template  string     `json:"template" yaml:"template"`
}

// Metadata is an ordered mapping of string keys to string values.
// Order is preserved through parse/serialize round trips.
type Metadata []MetaField

// MetaField is a single metadata key/value pair.
type MetaField struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Variable is a named placeholder declared for a Document.
// A required variable carries no default; an optional variable must carry
// a non-empty default.
type Variable struct {
	Name     string `json:"name" yaml:"name"`
	Required bool   `json:"required" yaml:"required"`
	Default  string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Part is a named, reusable block of literal content selectable by a
// conditional directive. Content may be empty. Parts are never nested.
type Part struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// InputValues maps variable names to caller-supplied string values for one
// render pass. Entries for optional variables may be omitted; every required
// variable must be present. An explicitly supplied empty string is a valid
// value.
type InputValues map[string]string

// ResolvedValues is the total mapping from every declared variable name to
// its effective string value, produced by ResolveVariables.
type ResolvedValues map[string]string

// NewDocument creates a Document with the given title set in metadata.
func NewDocument(title string) *Document {
	return &Document{
		Metadata: Metadata{{Key: MetadataKeyTitle, Value: title}},
	}
}

// Get returns the value for a metadata key and whether it exists.
func (m Metadata) Get(key string) (string, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Set replaces the value for an existing key or appends a new field.
func (m *Metadata) Set(key, value string) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, MetaField{Key: key, Value: value})
}

// Title returns the required title metadata field, or empty string.
func (m Metadata) Title() string {
	v, _ := m.Get(MetadataKeyTitle)
	return v
}

// Title returns the document title from metadata.
func (d *Document) Title() string {
	if d == nil {
		return ""
	}
	return d.Metadata.Title()
}

// FindVariable returns the declared variable with the given name.
func (d *Document) FindVariable(name string) (Variable, bool) {
	if d == nil {
		return Variable{}, false
	}
	for _, v := range d.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// FindPart returns the part with the given name.
func (d *Document) FindPart(name string) (Part, bool) {
	if d == nil {
		return Part{}, false
	}
	for _, p := range d.Parts {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}

// HasPart checks whether a part with the given name exists.
func (d *Document) HasPart(name string) bool {
	_, ok := d.FindPart(name)
	return ok
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	clone := &Document{
		Template: d.Template,
	}

	if d.Metadata != nil {
		clone.Metadata = make(Metadata, len(d.Metadata))
		copy(clone.Metadata, d.Metadata)
	}
	if d.Variables != nil {
		clone.Variables = make([]Variable, len(d.Variables))
		copy(clone.Variables, d.Variables)
	}
	if d.Parts != nil {
		clone.Parts = make([]Part, len(d.Parts))
		copy(clone.Parts, d.Parts)
	}

	return clone
}

// JSON returns the JSON representation of the document.
func (d *Document) JSON() (string, error) {
	if d == nil {
		return "", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// JSONPretty returns the pretty-printed JSON representation of the document.
func (d *Document) JSONPretty() (string, error) {
	if d == nil {
		return "", nil
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// YAML returns the YAML representation of the document.
func (d *Document) YAML() (string, error) {
	if d == nil {
		return "", nil
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
