// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package ast

// resolve folds the parse arena bottom-up into a single finished
// value. The walk is an explicit post-order traversal over node
// indices: every container's children are converted strictly before
// the container, and results are written into a table keyed by index.
// A child's result is released as soon as its parent has consumed it,
// so the finished tree has a single owner.
//
// The arity and ordering checks here are internal-consistency
// assertions; the builder's state machine makes them unreachable.
func (b *builder) resolve() (Value, error) {
	results := make([]Value, len(b.nodes))

	type frame struct {
		idx  int
		next int // offset of the next child to visit
	}
	stack := []frame{{idx: 0}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		n := &b.nodes[f.idx]
		if f.next < len(n.kids) {
			child := n.kids[f.next]
			f.next++
			stack = append(stack, frame{idx: child})
			continue
		}
		v, err := b.convert(n, results)
		if err != nil {
			return nil, err
		}
		results[f.idx] = v
		stack = stack[:len(stack)-1]
	}
	return results[0], nil
}

// convert produces the value for a node whose children have all been
// resolved, draining their results.
func (b *builder) convert(n *parseNode, results []Value) (Value, error) {
	take := func(idx int) (Value, error) {
		v := results[idx]
		if v == nil {
			return nil, b.failf(nil, "internal: unresolved child node %d", idx)
		}
		results[idx] = nil
		return v, nil
	}

	switch n.kind {
	case nodeLiteral:
		return n.lit, nil

	case nodeArray:
		out := make(Array, len(n.kids))
		for i, k := range n.kids {
			v, err := take(k)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case nodeObject:
		if len(n.keys) != len(n.kids) {
			return nil, b.failf(nil, "internal: object has %d keys and %d values",
				len(n.keys), len(n.kids))
		}
		// The Nth collected key pairs with the Nth child in parse
		// order. Duplicate keys resolve last-write-wins.
		var out Object
		for i, k := range n.kids {
			v, err := take(k)
			if err != nil {
				return nil, err
			}
			out.Set(n.keys[i], v)
		}
		if out == nil {
			out = Object{}
		}
		return out, nil

	case nodeRoot:
		if len(n.kids) != 1 {
			return nil, b.failf(nil, "internal: %d top-level values", len(n.kids))
		}
		return take(n.kids[0])
	}
	return nil, b.failf(nil, "internal: unknown node kind %d", n.kind)
}
