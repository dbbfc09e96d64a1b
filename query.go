package silo

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// Query is a composable filter over an Archetype's Tag, adapted from the
// teacher's mask.Mask-based query tree (query.go) onto Tag. And/Or/Not
// build QueryNodes that Evaluate can combine arbitrarily deeply; GroupOfK
// in query_generated.go covers the common "all of T1..Tk" case without
// needing a tree at all, but Query exists for callers that need Or/Not
// composition GroupOfK can't express.
type Query interface {
	QueryNode
	And(items ...any) QueryNode
	Or(items ...any) QueryNode
	Not(items ...any) QueryNode
}

// QueryNode evaluates against one archetype's Tag.
type QueryNode interface {
	Evaluate(archetypeMask Tag) bool
}

type queryOperation int

const (
	opAnd queryOperation = iota
	opOr
	opNot
)

type compositeNode struct {
	op       queryOperation
	children []QueryNode
	indices  []TypeIndex
}

type query struct {
	root QueryNode
}

// newQuery starts an empty composable Query. Exposed to callers only
// through Factory.NewQuery, mirroring the teacher's own newQuery/Factory
// split.
func newQuery() Query {
	return &query{}
}

func newCompositeNode(op queryOperation, indices []TypeIndex) *compositeNode {
	return &compositeNode{op: op, indices: indices}
}

func (n *compositeNode) Evaluate(archMask Tag) bool {
	nodeMask := NewTag(n.indices...)
	switch n.op {
	case opAnd:
		if !archMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(archMask) {
				return false
			}
		}
		return true
	case opOr:
		if archMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(archMask) {
				return true
			}
		}
		return false
	case opNot:
		if len(n.children) == 0 {
			return archMask.ContainsNone(nodeMask)
		}
		if len(n.indices) > 0 && !archMask.ContainsNone(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if child.Evaluate(archMask) {
				return false
			}
		}
		return true
	}
	return false
}

func (q *query) And(items ...any) QueryNode {
	indices, children := q.processItems(items...)
	node := newCompositeNode(opAnd, indices)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...any) QueryNode {
	indices, children := q.processItems(items...)
	node := newCompositeNode(opOr, indices)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...any) QueryNode {
	indices, children := q.processItems(items...)
	node := newCompositeNode(opNot, indices)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

// processItems splits items into the TypeIndex values and QueryNode
// children they represent. Items must be TypeIndex, []TypeIndex or
// QueryNode; anything else is a programmer error, reported the way the
// teacher's query.go reports one — a panic wrapped with bark.AddTrace.
func (q *query) processItems(items ...any) ([]TypeIndex, []QueryNode) {
	var indices []TypeIndex
	var children []QueryNode
	for _, item := range items {
		switch v := item.(type) {
		case TypeIndex:
			indices = append(indices, v)
		case []TypeIndex:
			indices = append(indices, v...)
		case QueryNode:
			children = append(children, v)
		default:
			panic(bark.AddTrace(fmt.Errorf("invalid query item type: %T; only TypeIndex, []TypeIndex or QueryNode are allowed", item)))
		}
	}
	return indices, children
}

func (q *query) Evaluate(archMask Tag) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(archMask)
}

// Matching evaluates node against every archetype in w's partition, in
// creation order, returning the ones that satisfy it. Unlike GroupOfK this
// does not go through the query cache — arbitrary And/Or/Not trees aren't
// representable as a single cache key — so callers iterating a composite
// Query every tick should cache the *Archetype slice themselves if it
// matters.
func Matching(w *World, node QueryNode) []*Archetype {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*Archetype
	for _, a := range w.partition.Archetypes() {
		if node.Evaluate(a.Mask()) {
			out = append(out, a)
		}
	}
	return out
}
