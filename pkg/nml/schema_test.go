package nml

import "testing"

func TestSchemaOfCoversEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		s, ok := SchemaOf(k)
		if !ok {
			t.Errorf("SchemaOf(%s) missing", k)
			continue
		}
		if s.Kind != k {
			t.Errorf("SchemaOf(%s).Kind = %s", k, s.Kind)
		}
		if _, ok := s.attribute(AttrIdentifier); !ok {
			t.Errorf("%s declares no identifier", k)
		}
	}
	if _, ok := SchemaOf(Kind("Router")); ok {
		t.Error("SchemaOf accepted an unknown kind")
	}
}

func TestSchemaIdentityAttributesFirst(t *testing.T) {
	s, _ := SchemaOf(KindNode)
	want := []string{AttrName, AttrIdentifier, AttrVersion}
	for i, name := range want {
		if s.Attributes[i].Name != name {
			t.Errorf("Attributes[%d] = %s, want %s", i, s.Attributes[i].Name, name)
		}
	}
	if s.Attributes[1].XMLName != "id" {
		t.Errorf("identifier XMLName = %s, want id", s.Attributes[1].XMLName)
	}
}

func TestSchemaShadowedExistsDuring(t *testing.T) {
	// Topology declares existsDuring itself; the inherited copy must not
	// appear a second time, and the declared position must come before the
	// remaining inherited relations.
	s, _ := SchemaOf(KindTopology)
	count := 0
	first := -1
	for i, r := range s.Relations {
		if r.Name == RelExistsDuring {
			count++
			if first < 0 {
				first = i
			}
		}
	}
	if count != 1 {
		t.Fatalf("existsDuring declared %d times, want 1", count)
	}
	var aliasAt int
	for i, r := range s.Relations {
		if r.Name == RelIsAlias {
			aliasAt = i
		}
	}
	if first > aliasAt {
		t.Errorf("existsDuring at %d after inherited isAlias at %d", first, aliasAt)
	}
}

func TestSchemaLinkGroupHasLinkTargets(t *testing.T) {
	// hasLink on LinkGroup targets ports and port groups, not links.
	s, _ := SchemaOf(KindLinkGroup)
	r, ok := s.relation(RelHasLink)
	if !ok {
		t.Fatal("LinkGroup declares no hasLink")
	}
	if !r.AllowsKind(KindLinkGroup, KindPort) || !r.AllowsKind(KindLinkGroup, KindPortGroup) {
		t.Error("hasLink rejects Port/PortGroup")
	}
	if r.AllowsKind(KindLinkGroup, KindLink) {
		t.Error("hasLink accepts Link")
	}
}

func TestSchemaBidirectionalCardinalities(t *testing.T) {
	bp, _ := SchemaOf(KindBidirectionalPort)
	if r, _ := bp.relation(RelHasPort); r.Cardinality != 2 {
		t.Errorf("BidirectionalPort hasPort cardinality = %d, want 2", r.Cardinality)
	}
	bl, _ := SchemaOf(KindBidirectionalLink)
	if r, _ := bl.relation(RelHasLink); r.Cardinality != 2 {
		t.Errorf("BidirectionalLink hasLink cardinality = %d, want 2", r.Cardinality)
	}
	n, _ := SchemaOf(KindNode)
	if r, _ := n.relation(RelLocatedAt); r.Cardinality != 1 {
		t.Errorf("Node locatedAt cardinality = %d, want 1", r.Cardinality)
	}
}

func TestValue(t *testing.T) {
	if Absent.IsSet() {
		t.Error("Absent.IsSet() = true")
	}
	if got := Absent.Or("fallback"); got != "fallback" {
		t.Errorf("Absent.Or = %q", got)
	}
	v := Present("eth0")
	if !v.IsSet() || v.Or("fallback") != "eth0" {
		t.Errorf("Present(eth0) = %v", v)
	}
	// The empty string is a set value, distinct from absence.
	if !Present("").IsSet() {
		t.Error(`Present("").IsSet() = false`)
	}
}
