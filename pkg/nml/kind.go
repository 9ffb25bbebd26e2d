package nml

// Kind identifies a concrete entity kind. The set of kinds is closed: only
// the constants declared here have schemas, and abstract groupings from the
// NML information model (NetworkObject, Service, Group) exist purely as
// schema fragments shared between kinds, never as a Kind of their own.
type Kind string

// Concrete entity kinds.
const (
	KindNode                Kind = "Node"
	KindPort                Kind = "Port"
	KindLink                Kind = "Link"
	KindSwitchingService    Kind = "SwitchingService"
	KindAdaptationService   Kind = "AdaptationService"
	KindDeAdaptationService Kind = "DeAdaptationService"
	KindTopology            Kind = "Topology"
	KindPortGroup           Kind = "PortGroup"
	KindLinkGroup           Kind = "LinkGroup"
	KindBidirectionalPort   Kind = "BidirectionalPort"
	KindBidirectionalLink   Kind = "BidirectionalLink"
	KindEnvironment         Kind = "Environment"
	KindLocation            Kind = "Location"
	KindLifetime            Kind = "Lifetime"
	KindLabel               Kind = "Label"
	KindLabelGroup          Kind = "LabelGroup"
	KindOrderedList         Kind = "OrderedList"
	KindListItem            Kind = "ListItem"
)

// kindOrder fixes the enumeration order of Kinds. Serialization never
// depends on it, but introspection output should be stable.
var kindOrder = []Kind{
	KindNode,
	KindPort,
	KindLink,
	KindSwitchingService,
	KindAdaptationService,
	KindDeAdaptationService,
	KindTopology,
	KindPortGroup,
	KindLinkGroup,
	KindBidirectionalPort,
	KindBidirectionalLink,
	KindEnvironment,
	KindLocation,
	KindLifetime,
	KindLabel,
	KindLabelGroup,
	KindOrderedList,
	KindListItem,
}

// String returns the kind name as it appears in serialized documents.
func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of the declared concrete kinds.
func (k Kind) Valid() bool {
	_, ok := schemas[k]
	return ok
}

// Kinds returns all concrete kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}
