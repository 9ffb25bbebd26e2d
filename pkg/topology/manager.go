package topology

import (
	"fmt"

	"github.com/nmlgraph/nmlgraph/pkg/nml"
)

// Manager builds and tracks a bidirectional network topology on top of a
// [nml.Namespace]. The Create helpers construct the directed intermediate
// entities (in/out subports, per-direction sublinks) and wire them so
// callers only ever deal in nodes, biports and bilinks.
type Manager struct {
	ns   *nml.Namespace
	meta nml.Metadata

	nodes      []*nml.Entity
	biports    []*nml.Entity
	biportNode map[string]*nml.Entity // biport identifier -> owning node
	bilinks    []Bilink
}

// Bilink records one bidirectional link and the two biports it connects.
type Bilink struct {
	A, B *nml.Entity // biports
	Link *nml.Entity // the BidirectionalLink entity
}

// NewManager returns an empty manager with a fresh namespace.
func NewManager() *Manager {
	return &Manager{
		ns:         nml.NewNamespace(),
		meta:       nml.Metadata{},
		biportNode: make(map[string]*nml.Entity),
	}
}

// Namespace exposes the underlying registry.
func (m *Manager) Namespace() *nml.Namespace { return m.ns }

// Meta returns the manager's open metadata map.
func (m *Manager) Meta() nml.Metadata { return m.meta }

// Register adds an externally built entity to the managed namespace.
func (m *Manager) Register(e *nml.Entity) error { return m.ns.Register(e) }

// CreateNode constructs and registers a Node.
func (m *Manager) CreateNode(opts ...nml.Option) (*nml.Entity, error) {
	node, err := nml.NewNode(opts...)
	if err != nil {
		return nil, err
	}
	if err := m.ns.Register(node); err != nil {
		return nil, err
	}
	m.nodes = append(m.nodes, node)
	return node, nil
}

// CreateBiport constructs and registers a BidirectionalPort on a node,
// together with its directed in/out subports. The subports are named after
// the biport with "_in"/"_out" suffixes, assigned to the biport's hasPort
// slots, and wired to the node as inbound/outbound ports.
func (m *Manager) CreateBiport(node *nml.Entity, opts ...nml.Option) (*nml.Entity, error) {
	if node == nil || node.Kind() != nml.KindNode {
		return nil, fmt.Errorf("biport owner must be a Node")
	}

	biport, err := nml.NewBidirectionalPort(opts...)
	if err != nil {
		return nil, err
	}
	name := biport.Name().Or(biport.Identifier())
	in, err := nml.NewPort(nml.WithName(name + "_in"))
	if err != nil {
		return nil, err
	}
	out, err := nml.NewPort(nml.WithName(name + "_out"))
	if err != nil {
		return nil, err
	}

	for _, e := range []*nml.Entity{biport, in, out} {
		if err := m.ns.Register(e); err != nil {
			return nil, err
		}
	}

	if err := biport.SetRelated(nml.RelHasPort, in, out); err != nil {
		return nil, err
	}
	if err := node.AddRelated(nml.RelHasInboundPort, in); err != nil {
		return nil, err
	}
	if err := node.AddRelated(nml.RelHasOutboundPort, out); err != nil {
		return nil, err
	}

	m.biports = append(m.biports, biport)
	m.biportNode[biport.Identifier()] = node
	return biport, nil
}

// CreateBilink constructs and registers a BidirectionalLink between two
// biports, together with its directed sublinks. One sublink runs a-to-b
// and the other b-to-a; each is wired as source on the sending biport's
// outbound subport and as sink on the receiving biport's inbound subport.
func (m *Manager) CreateBilink(biportA, biportB *nml.Entity, opts ...nml.Option) (*nml.Entity, error) {
	aIn, aOut, err := subports(biportA)
	if err != nil {
		return nil, fmt.Errorf("biport a: %w", err)
	}
	bIn, bOut, err := subports(biportB)
	if err != nil {
		return nil, fmt.Errorf("biport b: %w", err)
	}

	bilink, err := nml.NewBidirectionalLink(opts...)
	if err != nil {
		return nil, err
	}
	name := bilink.Name().Or(bilink.Identifier())
	linkAB, err := nml.NewLink(nml.WithName(name + "_link_a_b"))
	if err != nil {
		return nil, err
	}
	linkBA, err := nml.NewLink(nml.WithName(name + "_link_b_a"))
	if err != nil {
		return nil, err
	}

	for _, e := range []*nml.Entity{bilink, linkAB, linkBA} {
		if err := m.ns.Register(e); err != nil {
			return nil, err
		}
	}

	if err := bilink.SetRelated(nml.RelHasLink, linkAB, linkBA); err != nil {
		return nil, err
	}
	for _, w := range []struct {
		port *nml.Entity
		rel  string
		link *nml.Entity
	}{
		{aIn, nml.RelIsSink, linkBA},
		{aOut, nml.RelIsSource, linkAB},
		{bIn, nml.RelIsSink, linkAB},
		{bOut, nml.RelIsSource, linkBA},
	} {
		if err := w.port.AddRelated(w.rel, w.link); err != nil {
			return nil, err
		}
	}

	m.bilinks = append(m.bilinks, Bilink{A: biportA, B: biportB, Link: bilink})
	return bilink, nil
}

// subports resolves a biport's in/out subport pair.
func subports(biport *nml.Entity) (in, out *nml.Entity, err error) {
	if biport == nil || biport.Kind() != nml.KindBidirectionalPort {
		return nil, nil, fmt.Errorf("expected a BidirectionalPort")
	}
	ports, err := biport.Related(nml.RelHasPort)
	if err != nil {
		return nil, nil, err
	}
	if ports[0] == nil || ports[1] == nil {
		return nil, nil, fmt.Errorf("biport %s has unassigned subports", biport.Identifier())
	}
	return ports[0], ports[1], nil
}

// Nodes returns the created nodes in creation order.
func (m *Manager) Nodes() []*nml.Entity {
	out := make([]*nml.Entity, len(m.nodes))
	copy(out, m.nodes)
	return out
}

// Biports returns the created biports in creation order.
func (m *Manager) Biports() []*nml.Entity {
	out := make([]*nml.Entity, len(m.biports))
	copy(out, m.biports)
	return out
}

// NodeOf returns the node a biport was created on.
func (m *Manager) NodeOf(biport *nml.Entity) (*nml.Entity, bool) {
	n, ok := m.biportNode[biport.Identifier()]
	return n, ok
}

// Bilinks returns the created bilinks in creation order.
func (m *Manager) Bilinks() []Bilink {
	out := make([]Bilink, len(m.bilinks))
	copy(out, m.bilinks)
	return out
}

// Document serializes the managed namespace.
func (m *Manager) Document() *nml.Document { return m.ns.Document() }
