package nml

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Metadata stores arbitrary caller-supplied key-value pairs attached to an
// entity outside the declared schema. Metadata maps are never nil after
// construction.
type Metadata map[string]any

// Entity is one node in the typed object graph: a concrete kind, its
// schema-declared attribute values, its relation storage and an open
// metadata map. Entities are created fully formed by New (or the per-kind
// helpers) and mutated only through validated setters; they are never
// deleted. Entity is not safe for concurrent use without external
// synchronization.
type Entity struct {
	kind   Kind
	schema *Schema
	attrs  map[string]string
	rels   map[string]*relationState
	meta   Metadata
}

// Option configures an entity under construction.
type Option func(*Entity) error

// WithName sets the name attribute.
func WithName(name string) Option { return WithAttribute(AttrName, name) }

// WithIdentifier sets the identifier attribute. The identifier must be a
// syntactically valid URI and is immutable after construction.
func WithIdentifier(id string) Option { return WithAttribute(AttrIdentifier, id) }

// WithVersion sets the version attribute, an ISO-8601 timestamp string.
func WithVersion(version string) Option { return WithAttribute(AttrVersion, version) }

// WithAttribute sets any declared attribute by its internal name.
// Undeclared names are rejected; use WithMeta for out-of-schema data.
func WithAttribute(name, value string) Option {
	return func(e *Entity) error {
		return e.setAttr(name, value)
	}
}

// WithMeta stores a key-value pair in the entity's open metadata map.
func WithMeta(key string, value any) Option {
	return func(e *Entity) error {
		e.meta[key] = value
		return nil
	}
}

// nameCounter disambiguates synthesized default names within the process.
var nameCounter atomic.Uint64

// New constructs an entity of the given concrete kind. Options are applied
// in order and validated against the kind's schema; any option error aborts
// construction. Omitted identity fields receive defaults: a synthesized
// name ("<Kind>-<n>" with a process-local counter), a fresh urn:uuid
// identifier, and the current time as version (ISO-8601, second precision).
// Kind-specific attributes default to absent.
func New(kind Kind, opts ...Option) (*Entity, error) {
	schema, ok := schemas[kind]
	if !ok {
		return nil, newError(ErrCodeUnknownKind, string(kind), "no such entity kind")
	}

	e := &Entity{
		kind:   kind,
		schema: schema,
		attrs:  make(map[string]string),
		rels:   make(map[string]*relationState, len(schema.Relations)),
		meta:   Metadata{},
	}
	for i := range schema.Relations {
		e.rels[schema.Relations[i].Name] = newRelationState(&schema.Relations[i])
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if _, ok := e.attrs[AttrIdentifier]; !ok {
		e.attrs[AttrIdentifier] = "urn:uuid:" + uuid.NewString()
	}
	if _, declared := schema.attribute(AttrName); declared {
		if _, ok := e.attrs[AttrName]; !ok {
			e.attrs[AttrName] = fmt.Sprintf("%s-%d", kind, nameCounter.Add(1))
		}
	}
	if _, declared := schema.attribute(AttrVersion); declared {
		if _, ok := e.attrs[AttrVersion]; !ok {
			e.attrs[AttrVersion] = time.Now().Format("2006-01-02T15:04:05")
		}
	}

	return e, nil
}

// Kind returns the entity's concrete kind.
func (e *Entity) Kind() Kind { return e.kind }

// Schema returns the entity's static schema. Callers must not modify it.
func (e *Entity) Schema() *Schema { return e.schema }

// Meta returns the entity's open metadata map. The map is never nil and can
// be modified freely; it is not governed by the schema and never serialized.
func (e *Entity) Meta() Metadata { return e.meta }

// Identifier returns the entity's identifier, always set after construction.
func (e *Entity) Identifier() string { return e.attrs[AttrIdentifier] }

// Name returns the entity's name attribute, or the absent value for kinds
// that do not declare a name.
func (e *Entity) Name() Value {
	v, _ := e.Attribute(AttrName)
	return v
}

// Attribute returns the current value of a declared attribute, which is
// Absent when the attribute has never been set or was cleared. Undeclared
// names fail with an UNKNOWN_ATTRIBUTE error.
func (e *Entity) Attribute(name string) (Value, error) {
	if _, ok := e.schema.attribute(name); !ok {
		return Absent, newError(ErrCodeUnknownAttribute, name, "kind %s declares no such attribute", e.kind)
	}
	s, ok := e.attrs[name]
	if !ok {
		return Absent, nil
	}
	return Present(s), nil
}

// SetAttribute validates and stores a new value for a declared attribute.
// On validation failure the prior value, including absence, is untouched.
// The identifier is immutable once accepted and cannot be reassigned.
func (e *Entity) SetAttribute(name, value string) error {
	return e.setAttr(name, value)
}

// ClearAttribute resets a declared attribute to the absent state. Clearing
// the identifier is rejected: identifiers are immutable once accepted.
func (e *Entity) ClearAttribute(name string) error {
	if _, ok := e.schema.attribute(name); !ok {
		return newError(ErrCodeUnknownAttribute, name, "kind %s declares no such attribute", e.kind)
	}
	if name == AttrIdentifier {
		return newError(ErrCodeImmutableAttribute, name, "identifier cannot be cleared")
	}
	delete(e.attrs, name)
	return nil
}

// setAttr implements SetAttribute and the construction options. During
// construction the identifier is still settable; once stored it never
// changes again.
func (e *Entity) setAttr(name, value string) error {
	attr, ok := e.schema.attribute(name)
	if !ok {
		return newError(ErrCodeUnknownAttribute, name, "kind %s declares no such attribute", e.kind)
	}
	if name == AttrIdentifier {
		if _, accepted := e.attrs[AttrIdentifier]; accepted {
			return newError(ErrCodeImmutableAttribute, name, "identifier is immutable once accepted")
		}
	}
	if attr.Validate != nil {
		if err := attr.Validate(value); err != nil {
			return &Error{
				Code:    ErrCodeInvalidAttribute,
				Subject: name,
				Message: "invalid value",
				Cause:   err,
			}
		}
	}
	e.attrs[name] = value
	return nil
}
