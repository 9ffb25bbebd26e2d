package nml

// Cardinality constrains how many targets a relation holds.
// Unbounded relations keep an order-preserving set keyed by target
// identifier. A value n >= 1 means exactly n ordered slots, set atomically:
// 1 is a singleton, n > 1 additionally requires pairwise-distinct targets.
type Cardinality int

// Unbounded marks a relation with no target limit.
const Unbounded Cardinality = 0

// Attribute describes one declared scalar field of an entity kind.
type Attribute struct {
	Name     string             // internal attribute name
	XMLName  string             // external name in serialized documents
	Validate func(string) error // nil accepts any string
}

// Relation describes one declared edge of an entity kind.
// A nil Allowed set means targets must be of the same kind as the subject
// (the isAlias rule).
type Relation struct {
	Name        string
	Cardinality Cardinality
	Allowed     []Kind
}

// AllowsKind reports whether the relation accepts targets of kind k on a
// subject of kind subject.
func (r *Relation) AllowsKind(subject, k Kind) bool {
	if r.Allowed == nil {
		return k == subject
	}
	for _, a := range r.Allowed {
		if a == k {
			return true
		}
	}
	return false
}

// Schema is the static declaration of one entity kind: its attributes and
// relations in serialization order. Schemas are assembled once at package
// init and never mutated; callers receive them as shared read-only views.
type Schema struct {
	Kind       Kind
	Attributes []Attribute
	Relations  []Relation
}

// attribute lookups the declared attribute by internal name.
func (s *Schema) attribute(name string) (*Attribute, bool) {
	for i := range s.Attributes {
		if s.Attributes[i].Name == name {
			return &s.Attributes[i], true
		}
	}
	return nil, false
}

// relation lookups the declared relation by name.
func (s *Schema) relation(name string) (*Relation, bool) {
	for i := range s.Relations {
		if s.Relations[i].Name == name {
			return &s.Relations[i], true
		}
	}
	return nil, false
}

// SchemaOf returns the schema for a concrete kind. Callers must not modify
// the returned schema; use it for generic graph walking and introspection.
func SchemaOf(kind Kind) (*Schema, bool) {
	s, ok := schemas[kind]
	return s, ok
}

// Internal attribute names shared by every kind that carries them.
const (
	AttrName       = "name"
	AttrIdentifier = "identifier"
	AttrVersion    = "version"
)

// Well-known relation names referenced by the topology helpers.
const (
	RelExistsDuring    = "existsDuring"
	RelIsAlias         = "isAlias"
	RelLocatedAt       = "locatedAt"
	RelHasInboundPort  = "hasInboundPort"
	RelHasOutboundPort = "hasOutboundPort"
	RelHasPort         = "hasPort"
	RelHasLink         = "hasLink"
	RelIsSink          = "isSink"
	RelIsSource        = "isSource"
)

func attrIdentifier() Attribute {
	return Attribute{Name: AttrIdentifier, XMLName: "id", Validate: validateURI}
}

// identityAttributes is the attribute fragment shared by every network
// object kind: a human-readable name, a URI identifier and a version
// timestamp. The identifier externalizes as "id".
func identityAttributes() []Attribute {
	return []Attribute{
		{Name: AttrName, XMLName: "name", Validate: validateName},
		attrIdentifier(),
		{Name: AttrVersion, XMLName: "version"},
	}
}

// identityRelations is the relation fragment shared by every network object
// kind. A nil Allowed set on isAlias restricts targets to the subject's own
// kind.
func identityRelations() []Relation {
	return []Relation{
		{Name: RelExistsDuring, Cardinality: Unbounded, Allowed: []Kind{KindLifetime}},
		{Name: RelIsAlias, Cardinality: Unbounded, Allowed: nil},
		{Name: RelLocatedAt, Cardinality: 1, Allowed: []Kind{KindLocation}},
	}
}

// networkSchema assembles the schema of a network object kind: identity
// attributes before kind attributes, kind relations before the inherited
// identity relations. When a kind declares a relation that shadows an
// identity relation by name (existsDuring on the service and group kinds),
// the kind's declaration wins and the inherited one is skipped.
func networkSchema(kind Kind, attrs []Attribute, rels []Relation) *Schema {
	s := &Schema{
		Kind:       kind,
		Attributes: append(identityAttributes(), attrs...),
		Relations:  rels,
	}
	for _, inherited := range identityRelations() {
		if _, shadowed := s.relation(inherited.Name); shadowed {
			continue
		}
		s.Relations = append(s.Relations, inherited)
	}
	return s
}

// standaloneSchema assembles the schema of a kind outside the network
// object hierarchy: an identifier plus its scalar attributes, no relations.
func standaloneSchema(kind Kind, attrs []Attribute) *Schema {
	return &Schema{
		Kind:       kind,
		Attributes: append([]Attribute{attrIdentifier()}, attrs...),
	}
}

func attrEncoding() Attribute {
	return Attribute{Name: "encoding", XMLName: "encoding", Validate: validateURI}
}

func attrFree(name string) Attribute {
	return Attribute{Name: name, XMLName: name}
}

var portOrGroup = []Kind{KindPort, KindPortGroup}

// adaptationRelations is shared by AdaptationService and DeAdaptationService.
func adaptationRelations() []Relation {
	return []Relation{
		{Name: "canProvidePort", Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: RelExistsDuring, Cardinality: Unbounded, Allowed: []Kind{KindLifetime}},
		{Name: "providesPort", Cardinality: Unbounded, Allowed: portOrGroup},
	}
}

// schemas is the per-kind static schema table, the single source of truth
// for attribute ordering, relation ordering, allowed target kinds and
// cardinalities. The declarations mirror the published NML base schema;
// LinkGroup.hasLink deliberately keeps its upstream {Port, PortGroup}
// target set even though the name suggests links.
var schemas = map[Kind]*Schema{
	KindNode: networkSchema(KindNode, nil, []Relation{
		{Name: RelHasInboundPort, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: RelHasOutboundPort, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: "hasService", Cardinality: Unbounded, Allowed: []Kind{KindSwitchingService}},
		{Name: "implementedBy", Cardinality: Unbounded, Allowed: []Kind{KindNode}},
	}),

	KindPort: networkSchema(KindPort, []Attribute{attrEncoding()}, []Relation{
		{Name: "hasLabel", Cardinality: 1, Allowed: []Kind{KindLabel}},
		{Name: "hasService", Cardinality: Unbounded, Allowed: []Kind{KindAdaptationService, KindDeAdaptationService}},
		{Name: RelIsSink, Cardinality: Unbounded, Allowed: []Kind{KindLink}},
		{Name: RelIsSource, Cardinality: Unbounded, Allowed: []Kind{KindLink}},
	}),

	KindLink: networkSchema(KindLink, []Attribute{attrEncoding()}, []Relation{
		{Name: "hasLabel", Cardinality: 1, Allowed: []Kind{KindLabel}},
	}),

	KindSwitchingService: networkSchema(KindSwitchingService, []Attribute{attrEncoding()}, []Relation{
		{Name: RelHasInboundPort, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: RelHasOutboundPort, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: "providesLink", Cardinality: Unbounded, Allowed: []Kind{KindLink, KindLinkGroup}},
	}),

	KindAdaptationService: networkSchema(KindAdaptationService,
		[]Attribute{{Name: "adaptation_function", XMLName: "adaptationFunction"}},
		adaptationRelations()),

	KindDeAdaptationService: networkSchema(KindDeAdaptationService,
		[]Attribute{{Name: "adaptation_function", XMLName: "adaptationFunction"}},
		adaptationRelations()),

	KindTopology: networkSchema(KindTopology, nil, []Relation{
		{Name: RelExistsDuring, Cardinality: Unbounded, Allowed: []Kind{KindLifetime}},
		{Name: "hasNode", Cardinality: Unbounded, Allowed: []Kind{KindNode}},
		{Name: RelHasInboundPort, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: RelHasOutboundPort, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: "hasService", Cardinality: Unbounded, Allowed: []Kind{KindSwitchingService}},
		{Name: "hasEnvironment", Cardinality: Unbounded, Allowed: []Kind{KindEnvironment}},
		{Name: "hasTopology", Cardinality: Unbounded, Allowed: []Kind{KindTopology}},
	}),

	KindPortGroup: networkSchema(KindPortGroup, nil, []Relation{
		{Name: RelExistsDuring, Cardinality: Unbounded, Allowed: []Kind{KindLifetime}},
		{Name: "hasLabelGroup", Cardinality: 1, Allowed: []Kind{KindLabelGroup}},
		{Name: RelHasPort, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: RelIsSink, Cardinality: Unbounded, Allowed: []Kind{KindLinkGroup}},
		{Name: RelIsSource, Cardinality: Unbounded, Allowed: []Kind{KindLinkGroup}},
	}),

	KindLinkGroup: networkSchema(KindLinkGroup, nil, []Relation{
		{Name: RelExistsDuring, Cardinality: Unbounded, Allowed: []Kind{KindLifetime}},
		{Name: "hasLabelGroup", Cardinality: 1, Allowed: []Kind{KindLabelGroup}},
		{Name: RelHasLink, Cardinality: Unbounded, Allowed: portOrGroup},
		{Name: "isSerialCompoundLink", Cardinality: Unbounded, Allowed: portOrGroup},
	}),

	KindBidirectionalPort: networkSchema(KindBidirectionalPort, nil, []Relation{
		{Name: RelExistsDuring, Cardinality: Unbounded, Allowed: []Kind{KindLifetime}},
		{Name: RelHasPort, Cardinality: 2, Allowed: portOrGroup},
	}),

	KindBidirectionalLink: networkSchema(KindBidirectionalLink, nil, []Relation{
		{Name: RelExistsDuring, Cardinality: Unbounded, Allowed: []Kind{KindLifetime}},
		{Name: RelHasLink, Cardinality: 2, Allowed: []Kind{KindLink, KindLinkGroup}},
	}),

	KindEnvironment: standaloneSchema(KindEnvironment, []Attribute{
		{Name: AttrName, XMLName: "name", Validate: validateName},
	}),

	KindLocation: standaloneSchema(KindLocation, []Attribute{
		{Name: AttrName, XMLName: "name", Validate: validateName},
		attrFree("longitude"),
		attrFree("latitude"),
		attrFree("altitude"),
		attrFree("unlocode"),
		attrFree("address"),
	}),

	KindLifetime: standaloneSchema(KindLifetime, []Attribute{
		attrFree("start"),
		attrFree("end"),
	}),

	KindLabel: standaloneSchema(KindLabel, []Attribute{
		attrFree("labeltype"),
		attrFree("value"),
	}),

	KindLabelGroup: standaloneSchema(KindLabelGroup, []Attribute{
		attrFree("labeltype"),
		attrFree("value"),
	}),

	KindOrderedList: standaloneSchema(KindOrderedList, nil),
	KindListItem:    standaloneSchema(KindListItem, nil),
}
