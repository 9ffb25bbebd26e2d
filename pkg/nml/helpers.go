package nml

// Per-kind constructors. Each is New with the kind fixed, kept so call
// sites read as the schema vocabulary instead of kind constants.

// NewNode constructs a Node entity.
func NewNode(opts ...Option) (*Entity, error) { return New(KindNode, opts...) }

// NewPort constructs a Port entity.
func NewPort(opts ...Option) (*Entity, error) { return New(KindPort, opts...) }

// NewLink constructs a Link entity.
func NewLink(opts ...Option) (*Entity, error) { return New(KindLink, opts...) }

// NewSwitchingService constructs a SwitchingService entity.
func NewSwitchingService(opts ...Option) (*Entity, error) {
	return New(KindSwitchingService, opts...)
}

// NewAdaptationService constructs an AdaptationService entity.
func NewAdaptationService(opts ...Option) (*Entity, error) {
	return New(KindAdaptationService, opts...)
}

// NewDeAdaptationService constructs a DeAdaptationService entity.
func NewDeAdaptationService(opts ...Option) (*Entity, error) {
	return New(KindDeAdaptationService, opts...)
}

// NewTopology constructs a Topology entity.
func NewTopology(opts ...Option) (*Entity, error) { return New(KindTopology, opts...) }

// NewPortGroup constructs a PortGroup entity.
func NewPortGroup(opts ...Option) (*Entity, error) { return New(KindPortGroup, opts...) }

// NewLinkGroup constructs a LinkGroup entity.
func NewLinkGroup(opts ...Option) (*Entity, error) { return New(KindLinkGroup, opts...) }

// NewBidirectionalPort constructs a BidirectionalPort entity.
func NewBidirectionalPort(opts ...Option) (*Entity, error) {
	return New(KindBidirectionalPort, opts...)
}

// NewBidirectionalLink constructs a BidirectionalLink entity.
func NewBidirectionalLink(opts ...Option) (*Entity, error) {
	return New(KindBidirectionalLink, opts...)
}

// NewEnvironment constructs an Environment entity.
func NewEnvironment(opts ...Option) (*Entity, error) { return New(KindEnvironment, opts...) }

// NewLocation constructs a Location entity.
func NewLocation(opts ...Option) (*Entity, error) { return New(KindLocation, opts...) }

// NewLifetime constructs a Lifetime entity.
func NewLifetime(opts ...Option) (*Entity, error) { return New(KindLifetime, opts...) }

// NewLabel constructs a Label entity.
func NewLabel(opts ...Option) (*Entity, error) { return New(KindLabel, opts...) }

// NewLabelGroup constructs a LabelGroup entity.
func NewLabelGroup(opts ...Option) (*Entity, error) { return New(KindLabelGroup, opts...) }

// NewOrderedList constructs an OrderedList entity.
func NewOrderedList(opts ...Option) (*Entity, error) { return New(KindOrderedList, opts...) }

// NewListItem constructs a ListItem entity.
func NewListItem(opts ...Option) (*Entity, error) { return New(KindListItem, opts...) }
