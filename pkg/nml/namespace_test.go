package nml

import "testing"

func TestNamespaceRegister(t *testing.T) {
	ns := NewNamespace()
	sw, _ := NewNode(WithIdentifier("urn:ogf:network:sw1"))

	if err := ns.Register(sw); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if ns.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ns.Len())
	}

	got, ok := ns.Get("urn:ogf:network:sw1")
	if !ok || got != sw {
		t.Fatalf("Get = %v, %v; want sw, true", got, ok)
	}
	if _, ok := ns.Get("urn:ogf:network:missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestNamespaceDuplicateIdentifier(t *testing.T) {
	ns := NewNamespace()
	a, _ := NewNode(WithIdentifier("urn:ogf:network:sw1"))
	b, _ := NewNode(WithIdentifier("urn:ogf:network:sw1"))

	if err := ns.Register(a); err != nil {
		t.Fatalf("Register a: %v", err)
	}
	err := ns.Register(b)
	if !IsCode(err, ErrCodeDuplicateIdentifier) {
		t.Fatalf("err = %v, want DUPLICATE_IDENTIFIER", err)
	}
	if SubjectOf(err) != "urn:ogf:network:sw1" {
		t.Errorf("subject = %q, want the colliding identifier", SubjectOf(err))
	}

	// The same entity value collides with itself too.
	if err := ns.Register(a); !IsCode(err, ErrCodeDuplicateIdentifier) {
		t.Fatalf("re-register a = %v, want DUPLICATE_IDENTIFIER", err)
	}
	if ns.Len() != 1 {
		t.Errorf("Len = %d after rejected registrations, want 1", ns.Len())
	}
}

func TestNamespaceEntitiesOrder(t *testing.T) {
	ns := NewNamespace()
	var want []*Entity
	for _, id := range []string{"urn:a", "urn:b", "urn:c"} {
		e, err := NewPort(WithIdentifier(id))
		if err != nil {
			t.Fatalf("NewPort(%s): %v", id, err)
		}
		if err := ns.Register(e); err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
		want = append(want, e)
	}

	got := ns.Entities()
	if len(got) != len(want) {
		t.Fatalf("Entities = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entities[%d] = %s, want %s", i, got[i].Identifier(), want[i].Identifier())
		}
	}
}

func TestNamespaceDocumentOrder(t *testing.T) {
	ns := NewNamespace()
	sw, _ := NewNode(WithIdentifier("urn:ogf:network:sw1"))
	p, _ := NewPort(WithIdentifier("urn:ogf:network:p1"))
	_ = ns.Register(sw)
	_ = ns.Register(p)

	doc := ns.Document()
	if len(doc.Roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(doc.Roots))
	}
	if doc.Roots[0].Name != "Node" || doc.Roots[1].Name != "Port" {
		t.Errorf("root order = [%s %s], want [Node Port]", doc.Roots[0].Name, doc.Roots[1].Name)
	}
}
