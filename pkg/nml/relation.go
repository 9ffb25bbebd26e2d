package nml

// relationState is the per-entity storage behind one declared relation.
// Unbounded relations keep insertion order plus an identifier index so a
// re-added target updates in place instead of duplicating. Fixed relations
// hold exactly rel.Cardinality slots, nil until assigned.
type relationState struct {
	rel   *Relation
	order []*Entity      // unbounded: insertion-ordered targets
	byID  map[string]int // unbounded: identifier -> index in order
	slots []*Entity      // fixed: len == int(rel.Cardinality)
}

func newRelationState(rel *Relation) *relationState {
	st := &relationState{rel: rel}
	if rel.Cardinality == Unbounded {
		st.byID = make(map[string]int)
	} else {
		st.slots = make([]*Entity, int(rel.Cardinality))
	}
	return st
}

// check validates a prospective target against the relation's allowed
// kinds. It runs on every relation operation, queries included.
func (st *relationState) check(subject Kind, target *Entity) error {
	if target == nil {
		return newError(ErrCodeRelationType, st.rel.Name, "nil target")
	}
	if !st.rel.AllowsKind(subject, target.Kind()) {
		return newError(ErrCodeRelationType, st.rel.Name,
			"kind %s is not an allowed target", target.Kind())
	}
	return nil
}

// relation resolves a declared relation's state or fails with
// UNKNOWN_RELATION.
func (e *Entity) relation(name string) (*relationState, error) {
	st, ok := e.rels[name]
	if !ok {
		return nil, newError(ErrCodeUnknownRelation, name, "kind %s declares no such relation", e.kind)
	}
	return st, nil
}

// Related returns the current targets of a relation as a fresh slice. For
// unbounded relations the slice follows insertion order; for fixed
// relations it has exactly the declared number of elements with nil for
// unassigned slots.
func (e *Entity) Related(name string) ([]*Entity, error) {
	st, err := e.relation(name)
	if err != nil {
		return nil, err
	}
	if st.rel.Cardinality == Unbounded {
		out := make([]*Entity, len(st.order))
		copy(out, st.order)
		return out, nil
	}
	out := make([]*Entity, len(st.slots))
	copy(out, st.slots)
	return out, nil
}

// AddRelated appends a target to an unbounded relation. Adding a target
// whose identifier is already present replaces the earlier entry in place,
// keeping its position. Fixed relations reject AddRelated; use SetRelated.
func (e *Entity) AddRelated(name string, target *Entity) error {
	st, err := e.relation(name)
	if err != nil {
		return err
	}
	if err := st.check(e.kind, target); err != nil {
		return err
	}
	if st.rel.Cardinality != Unbounded {
		return newError(ErrCodeRelationCardinality, name,
			"relation holds exactly %d target(s); use SetRelated", st.rel.Cardinality)
	}
	if i, ok := st.byID[target.Identifier()]; ok {
		st.order[i] = target
		return nil
	}
	st.byID[target.Identifier()] = len(st.order)
	st.order = append(st.order, target)
	return nil
}

// SetRelated assigns all slots of a fixed-cardinality relation atomically.
// The target count must equal the declared cardinality, every target must
// pass the type check, and for cardinality above one the targets must be
// pairwise distinct by identifier. On any failure the prior assignment is
// untouched. Unbounded relations reject SetRelated.
func (e *Entity) SetRelated(name string, targets ...*Entity) error {
	st, err := e.relation(name)
	if err != nil {
		return err
	}
	if st.rel.Cardinality == Unbounded {
		return newError(ErrCodeRelationCardinality, name,
			"relation is unbounded; use AddRelated")
	}
	n := int(st.rel.Cardinality)
	if len(targets) != n {
		return newError(ErrCodeRelationCardinality, name,
			"relation holds exactly %d target(s), got %d", n, len(targets))
	}
	seen := make(map[string]struct{}, n)
	for _, t := range targets {
		if err := st.check(e.kind, t); err != nil {
			return err
		}
		if n > 1 {
			if _, dup := seen[t.Identifier()]; dup {
				return newError(ErrCodeRelationCardinality, name,
					"targets must be pairwise distinct, %s repeats", t.Identifier())
			}
			seen[t.Identifier()] = struct{}{}
		}
	}
	copy(st.slots, targets)
	return nil
}

// RelatedTo reports whether the candidate is currently a target of the
// relation, matching by identifier. The candidate is type-checked first, so
// asking about a disallowed kind is an error rather than false.
func (e *Entity) RelatedTo(name string, candidate *Entity) (bool, error) {
	st, err := e.relation(name)
	if err != nil {
		return false, err
	}
	if err := st.check(e.kind, candidate); err != nil {
		return false, err
	}
	if st.rel.Cardinality == Unbounded {
		_, ok := st.byID[candidate.Identifier()]
		return ok, nil
	}
	for _, t := range st.slots {
		if t != nil && t.Identifier() == candidate.Identifier() {
			return true, nil
		}
	}
	return false, nil
}
