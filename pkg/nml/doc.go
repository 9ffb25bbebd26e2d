// Package nml implements a typed entity-relation model for network
// topology metadata and its deterministic XML serialization, following the
// NML base schema (http://schemas.ogf.org/nml/2013/05/base).
//
// # Core Types
//
//   - [Entity]: One typed object with validated attributes and relations
//   - [Kind]: The closed set of entity kinds (Node, Port, Link, ...)
//   - [Schema]: Static per-kind declaration of attributes and relations
//   - [Namespace]: Identifier-unique registry of entities
//   - [Document], [Element]: Serialized form ready for XML encoding
//
// # Building a Topology
//
// Entities come from [New] or the per-kind helpers; identity fields default
// when omitted:
//
//	sw, _ := nml.NewNode(nml.WithName("sw1"),
//	    nml.WithIdentifier("urn:ogf:network:sw1"))
//	p1, _ := nml.NewPort(nml.WithName("sw1:p1"))
//	_ = sw.AddRelated("hasOutboundPort", p1)
//
// Every attribute write and relation operation is validated against the
// kind's schema: unknown names, disallowed target kinds and cardinality
// violations are structured errors (see [Error] and [IsCode]).
//
// # Cardinality
//
// Relations are either unbounded (ordered, re-adding a target identifier
// updates in place) or fixed to n slots. Fixed relations are assigned
// atomically with [Entity.SetRelated]; n > 1 additionally requires
// pairwise-distinct targets.
//
// # Serialization
//
// [Serialize] renders one entity as an element tree; [Namespace.Document]
// renders the whole registry in registration order. Output is
// deterministic: attributes and relations follow schema declaration order,
// absent attributes and empty relations are omitted, and relation targets
// appear as shallow kind+id references so cyclic graphs serialize without
// recursion.
//
// # Concurrency
//
// Entities and namespaces are not safe for concurrent mutation; guard them
// externally when shared.
package nml
