// Package pkg provides the core libraries for nmlgraph topology modeling.
//
// # Overview
//
// nmlgraph models computer-network topologies as typed entity graphs and
// serializes them as NML XML documents (Network Markup Language, OGF base
// schema). The pkg directory is organized into four areas:
//
//  1. [nml] - The entity-relation model: kinds, schemas, validation,
//     namespaces and the deterministic XML serializer
//  2. [topology] - High-level construction: bidirectional topologies,
//     declarative manifests, Graphviz export
//  3. [cache], [store] - Infrastructure: artifact caching (file/Redis)
//     and document persistence (file/MongoDB)
//  4. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Build a two-switch topology and export it:
//
//	import (
//	    "os"
//	    "github.com/nmlgraph/nmlgraph/pkg/nml"
//	    "github.com/nmlgraph/nmlgraph/pkg/topology"
//	)
//
//	m := topology.NewManager()
//	sw1, _ := m.CreateNode(nml.WithName("sw1"))
//	sw2, _ := m.CreateNode(nml.WithName("sw2"))
//	p1, _ := m.CreateBiport(sw1, nml.WithName("sw1:p1"))
//	p2, _ := m.CreateBiport(sw2, nml.WithName("sw2:p1"))
//	m.CreateBilink(p1, p2)
//	m.Document().Encode(os.Stdout)
//
// The same topology can come from a TOML or YAML manifest via
// [topology.LoadManifest] and [topology.Manifest.Build].
package pkg
