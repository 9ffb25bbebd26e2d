package nml

// Namespace is a registry of entities with unique identifiers. It preserves
// registration order, which fixes the element order of the document built
// from the whole namespace.
type Namespace struct {
	order []*Entity
	byID  map[string]*Entity
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{byID: make(map[string]*Entity)}
}

// Register adds an entity to the namespace. Registering an identifier that
// is already present is rejected with a DUPLICATE_IDENTIFIER error, even
// when the entity is the same value that was registered before.
func (ns *Namespace) Register(e *Entity) error {
	if e == nil {
		return newError(ErrCodeDuplicateIdentifier, "", "nil entity")
	}
	id := e.Identifier()
	if _, ok := ns.byID[id]; ok {
		return newError(ErrCodeDuplicateIdentifier, id, "identifier already registered")
	}
	ns.byID[id] = e
	ns.order = append(ns.order, e)
	return nil
}

// Get looks up a registered entity by identifier.
func (ns *Namespace) Get(id string) (*Entity, bool) {
	e, ok := ns.byID[id]
	return e, ok
}

// Entities returns all registered entities in registration order.
func (ns *Namespace) Entities() []*Entity {
	out := make([]*Entity, len(ns.order))
	copy(out, ns.order)
	return out
}

// Len returns the number of registered entities.
func (ns *Namespace) Len() int { return len(ns.order) }

// Document serializes every registered entity, in registration order, into
// one document with an element per entity tree.
func (ns *Namespace) Document() *Document {
	doc := &Document{}
	for _, e := range ns.order {
		doc.Roots = append(doc.Roots, Serialize(e))
	}
	return doc
}
