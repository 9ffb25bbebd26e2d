package topology

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/nmlgraph/nmlgraph/pkg/nml"
)

// Manifest is the declarative on-disk form of a topology, accepted as TOML
// or YAML. Link endpoints reference ports as "node:port".
type Manifest struct {
	Topology TopologySpec `toml:"topology" yaml:"topology"`
	Nodes    []NodeSpec   `toml:"nodes"    yaml:"nodes"`
	Links    []LinkSpec   `toml:"links"    yaml:"links"`
}

// TopologySpec names the enclosing Topology entity. Both fields are
// optional; omitted fields default like any entity identity field.
type TopologySpec struct {
	Name       string `toml:"name"       yaml:"name"`
	Identifier string `toml:"identifier" yaml:"identifier"`
}

// NodeSpec declares one node and its biports.
type NodeSpec struct {
	Name       string   `toml:"name"       yaml:"name"`
	Identifier string   `toml:"identifier" yaml:"identifier"`
	Ports      []string `toml:"ports"      yaml:"ports"`
}

// LinkSpec declares one bilink between two "node:port" endpoints.
type LinkSpec struct {
	Name string `toml:"name" yaml:"name"`
	A    string `toml:"a"    yaml:"a"`
	B    string `toml:"b"    yaml:"b"`
}

// LoadManifest reads and parses a manifest file, selecting the format from
// the file extension: .toml, .yaml or .yml.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported manifest extension %q", ext)
	}
}

// ParseTOML parses a TOML manifest.
func ParseTOML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse toml manifest: %w", err)
	}
	return &m, nil
}

// ParseYAML parses a YAML manifest.
func ParseYAML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml manifest: %w", err)
	}
	return &m, nil
}

// Build instantiates the manifest into a fresh manager: a Topology entity
// holding every node, a biport per declared port (named "node:port"), and
// a bilink per declared link. Duplicate node names and dangling link
// endpoints are errors.
func (mf *Manifest) Build() (*Manager, error) {
	m := NewManager()

	var topoOpts []nml.Option
	if mf.Topology.Name != "" {
		topoOpts = append(topoOpts, nml.WithName(mf.Topology.Name))
	}
	if mf.Topology.Identifier != "" {
		topoOpts = append(topoOpts, nml.WithIdentifier(mf.Topology.Identifier))
	}
	topo, err := nml.NewTopology(topoOpts...)
	if err != nil {
		return nil, err
	}
	if err := m.Register(topo); err != nil {
		return nil, err
	}

	// Link endpoints resolve by node name, so names must be unique.
	nodeNames := make(map[string]bool)
	biports := make(map[string]*nml.Entity) // "node:port" -> biport
	for _, ns := range mf.Nodes {
		if ns.Name == "" {
			return nil, fmt.Errorf("node without a name")
		}
		if nodeNames[ns.Name] {
			return nil, fmt.Errorf("duplicate node %s", ns.Name)
		}
		nodeNames[ns.Name] = true
		opts := []nml.Option{nml.WithName(ns.Name)}
		if ns.Identifier != "" {
			opts = append(opts, nml.WithIdentifier(ns.Identifier))
		}
		node, err := m.CreateNode(opts...)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", ns.Name, err)
		}
		if err := topo.AddRelated("hasNode", node); err != nil {
			return nil, err
		}
		for _, port := range ns.Ports {
			ref := ns.Name + ":" + port
			if _, dup := biports[ref]; dup {
				return nil, fmt.Errorf("duplicate port %s", ref)
			}
			bp, err := m.CreateBiport(node, nml.WithName(ref))
			if err != nil {
				return nil, fmt.Errorf("port %s: %w", ref, err)
			}
			biports[ref] = bp
		}
	}

	for _, ls := range mf.Links {
		a, err := resolveEndpoint(biports, ls.A)
		if err != nil {
			return nil, err
		}
		b, err := resolveEndpoint(biports, ls.B)
		if err != nil {
			return nil, err
		}
		var opts []nml.Option
		if ls.Name != "" {
			opts = append(opts, nml.WithName(ls.Name))
		}
		if _, err := m.CreateBilink(a, b, opts...); err != nil {
			return nil, fmt.Errorf("link %s -- %s: %w", ls.A, ls.B, err)
		}
	}

	return m, nil
}

func resolveEndpoint(biports map[string]*nml.Entity, ref string) (*nml.Entity, error) {
	if !strings.Contains(ref, ":") {
		return nil, fmt.Errorf("endpoint %q is not of the form node:port", ref)
	}
	bp, ok := biports[ref]
	if !ok {
		return nil, fmt.Errorf("endpoint %q references an undeclared port", ref)
	}
	return bp, nil
}
