package nml

// Serialize renders an entity as an element tree. The output is fully
// deterministic: attributes follow schema declaration order with absent
// values omitted, and relations follow schema declaration order with empty
// relations skipped. Each populated relation becomes a wrapper element
// whose type attribute is the namespace URI joined to the relation name
// with "#", holding one shallow reference child per target: the target's
// kind as element name and its identifier as the only attribute.
func Serialize(e *Entity) *Element {
	el := &Element{Name: e.kind.String()}

	for i := range e.schema.Attributes {
		attr := &e.schema.Attributes[i]
		if v, ok := e.attrs[attr.Name]; ok {
			el.Attrs = append(el.Attrs, Attr{Name: attr.XMLName, Value: v})
		}
	}

	for i := range e.schema.Relations {
		rel := &e.schema.Relations[i]
		targets := populatedTargets(e.rels[rel.Name])
		if len(targets) == 0 {
			continue
		}
		wrapper := &Element{
			Name:  "Relation",
			Attrs: []Attr{{Name: "type", Value: NamespaceURI + "#" + rel.Name}},
		}
		for _, t := range targets {
			wrapper.Children = append(wrapper.Children, reference(t))
		}
		el.Children = append(el.Children, wrapper)
	}

	return el
}

// populatedTargets returns the relation's assigned targets in emission
// order. Unassigned fixed slots are dropped, so a fixed relation with no
// assignment at all serializes as empty and is skipped entirely.
func populatedTargets(st *relationState) []*Entity {
	if st.rel.Cardinality == Unbounded {
		return st.order
	}
	var out []*Entity
	for _, t := range st.slots {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// reference builds the shallow form of a relation target: kind and
// identifier only, never the target's own attributes or relations. Cycles
// in the entity graph are therefore harmless.
func reference(t *Entity) *Element {
	return &Element{
		Name:  t.kind.String(),
		Attrs: []Attr{{Name: "id", Value: t.Identifier()}},
	}
}
