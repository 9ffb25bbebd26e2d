package nml

import "testing"

func TestAddRelatedOrderAndUpsert(t *testing.T) {
	sw, _ := NewNode()
	p1, _ := NewPort(WithIdentifier("urn:ogf:network:p1"))
	p2, _ := NewPort(WithIdentifier("urn:ogf:network:p2"))

	if err := sw.AddRelated(RelHasOutboundPort, p1); err != nil {
		t.Fatalf("AddRelated p1: %v", err)
	}
	if err := sw.AddRelated(RelHasOutboundPort, p2); err != nil {
		t.Fatalf("AddRelated p2: %v", err)
	}

	got, err := sw.Related(RelHasOutboundPort)
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(got) != 2 || got[0] != p1 || got[1] != p2 {
		t.Fatalf("targets = %v, want [p1 p2]", got)
	}

	// Re-adding the same identifier replaces in place, keeping position.
	p1b, _ := NewPort(WithIdentifier("urn:ogf:network:p1"), WithName("p1-renamed"))
	if err := sw.AddRelated(RelHasOutboundPort, p1b); err != nil {
		t.Fatalf("AddRelated p1b: %v", err)
	}
	got, _ = sw.Related(RelHasOutboundPort)
	if len(got) != 2 || got[0] != p1b || got[1] != p2 {
		t.Fatalf("after upsert targets = %v, want [p1b p2]", got)
	}
}

func TestAddRelatedRejectsWrongKind(t *testing.T) {
	sw, _ := NewNode()
	lk, _ := NewLink()

	err := sw.AddRelated(RelHasOutboundPort, lk)
	if !IsCode(err, ErrCodeRelationType) {
		t.Fatalf("err = %v, want RELATION_TYPE", err)
	}
	got, _ := sw.Related(RelHasOutboundPort)
	if len(got) != 0 {
		t.Errorf("targets = %v after rejected add, want empty", got)
	}
}

func TestUnknownRelation(t *testing.T) {
	sw, _ := NewNode()
	p, _ := NewPort()

	if err := sw.AddRelated("hasUplink", p); !IsCode(err, ErrCodeUnknownRelation) {
		t.Errorf("AddRelated: err = %v, want UNKNOWN_RELATION", err)
	}
	if _, err := sw.Related("hasUplink"); !IsCode(err, ErrCodeUnknownRelation) {
		t.Errorf("Related: err = %v, want UNKNOWN_RELATION", err)
	}
	if _, err := sw.RelatedTo("hasUplink", p); !IsCode(err, ErrCodeUnknownRelation) {
		t.Errorf("RelatedTo: err = %v, want UNKNOWN_RELATION", err)
	}
}

func TestSetRelatedSingleton(t *testing.T) {
	sw, _ := NewNode()
	loc, _ := NewLocation(WithIdentifier("urn:ogf:network:loc1"))

	if err := sw.SetRelated(RelLocatedAt, loc); err != nil {
		t.Fatalf("SetRelated: %v", err)
	}
	got, _ := sw.Related(RelLocatedAt)
	if len(got) != 1 || got[0] != loc {
		t.Fatalf("targets = %v, want [loc]", got)
	}

	// Reassignment of a singleton replaces the previous target.
	loc2, _ := NewLocation(WithIdentifier("urn:ogf:network:loc2"))
	if err := sw.SetRelated(RelLocatedAt, loc2); err != nil {
		t.Fatalf("SetRelated again: %v", err)
	}
	got, _ = sw.Related(RelLocatedAt)
	if len(got) != 1 || got[0] != loc2 {
		t.Fatalf("targets = %v, want [loc2]", got)
	}
}

func TestSetRelatedPairwiseDistinct(t *testing.T) {
	bp, _ := NewBidirectionalPort()
	in, _ := NewPort(WithIdentifier("urn:ogf:network:p1-in"))
	out, _ := NewPort(WithIdentifier("urn:ogf:network:p1-out"))

	if err := bp.SetRelated(RelHasPort, in, out); err != nil {
		t.Fatalf("SetRelated: %v", err)
	}

	dup, _ := NewPort(WithIdentifier("urn:ogf:network:p1-in"))
	err := bp.SetRelated(RelHasPort, in, dup)
	if !IsCode(err, ErrCodeRelationCardinality) {
		t.Fatalf("err = %v, want RELATION_CARDINALITY", err)
	}

	// Failed assignment leaves the prior slots intact.
	got, _ := bp.Related(RelHasPort)
	if len(got) != 2 || got[0] != in || got[1] != out {
		t.Fatalf("targets = %v after rejected set, want [in out]", got)
	}
}

func TestSetRelatedCountMismatch(t *testing.T) {
	bp, _ := NewBidirectionalPort()
	p, _ := NewPort()

	if err := bp.SetRelated(RelHasPort, p); !IsCode(err, ErrCodeRelationCardinality) {
		t.Errorf("one target: err = %v, want RELATION_CARDINALITY", err)
	}
}

func TestSetRelatedAtomicTypeFailure(t *testing.T) {
	bp, _ := NewBidirectionalPort()
	p, _ := NewPort()
	lk, _ := NewLink()

	if err := bp.SetRelated(RelHasPort, p, lk); !IsCode(err, ErrCodeRelationType) {
		t.Fatalf("err = %v, want RELATION_TYPE", err)
	}
	got, _ := bp.Related(RelHasPort)
	if got[0] != nil || got[1] != nil {
		t.Errorf("slots = %v after rejected set, want [nil nil]", got)
	}
}

func TestAddRelatedOnFixedRelation(t *testing.T) {
	bp, _ := NewBidirectionalPort()
	p, _ := NewPort()

	if err := bp.AddRelated(RelHasPort, p); !IsCode(err, ErrCodeRelationCardinality) {
		t.Fatalf("err = %v, want RELATION_CARDINALITY", err)
	}
}

func TestSetRelatedOnUnboundedRelation(t *testing.T) {
	sw, _ := NewNode()
	p, _ := NewPort()

	if err := sw.SetRelated(RelHasOutboundPort, p); !IsCode(err, ErrCodeRelationCardinality) {
		t.Fatalf("err = %v, want RELATION_CARDINALITY", err)
	}
}

func TestRelatedTo(t *testing.T) {
	sw, _ := NewNode()
	p1, _ := NewPort(WithIdentifier("urn:ogf:network:p1"))
	p2, _ := NewPort(WithIdentifier("urn:ogf:network:p2"))
	_ = sw.AddRelated(RelHasInboundPort, p1)

	ok, err := sw.RelatedTo(RelHasInboundPort, p1)
	if err != nil || !ok {
		t.Errorf("RelatedTo(p1) = %v, %v; want true", ok, err)
	}
	ok, err = sw.RelatedTo(RelHasInboundPort, p2)
	if err != nil || ok {
		t.Errorf("RelatedTo(p2) = %v, %v; want false", ok, err)
	}

	// Queries type-gate the candidate too; a disallowed kind is an error.
	lk, _ := NewLink()
	if _, err := sw.RelatedTo(RelHasInboundPort, lk); !IsCode(err, ErrCodeRelationType) {
		t.Errorf("RelatedTo(link): err = %v, want RELATION_TYPE", err)
	}
}

func TestIsAliasSameKindOnly(t *testing.T) {
	sw1, _ := NewNode()
	sw2, _ := NewNode()
	p, _ := NewPort()

	if err := sw1.AddRelated(RelIsAlias, sw2); err != nil {
		t.Fatalf("AddRelated node alias: %v", err)
	}
	if err := sw1.AddRelated(RelIsAlias, p); !IsCode(err, ErrCodeRelationType) {
		t.Fatalf("port alias: err = %v, want RELATION_TYPE", err)
	}
}
