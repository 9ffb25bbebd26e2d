// Package topology provides high-level helpers over the nml entity model:
// a [Manager] that builds bidirectional topologies with their directed
// intermediate entities wired automatically, declarative TOML/YAML
// manifests ([Manifest]), and Graphviz export ([ToDOT], [RenderSVG],
// [RenderPNG]).
//
// A typical flow:
//
//	m := topology.NewManager()
//	sw1, _ := m.CreateNode(nml.WithName("sw1"))
//	sw2, _ := m.CreateNode(nml.WithName("sw2"))
//	p1, _ := m.CreateBiport(sw1, nml.WithName("sw1:p1"))
//	p2, _ := m.CreateBiport(sw2, nml.WithName("sw2:p1"))
//	m.CreateBilink(p1, p2)
//	m.Document().Encode(os.Stdout)
//
// CreateBiport registers the biport plus an "_in" and an "_out" Port and
// wires them to the owning node; CreateBilink registers the bilink plus
// one Link per direction and wires them as source/sink on the endpoint
// subports.
package topology
