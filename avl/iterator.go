// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedtree/fault"
)

// Cursor - a one shot ascending traversal of a tree
//
// usage:
//   c := tree.Iterate()
//   for c.Next() {
//       v := c.Value()
//       ...
//   }
//   if err := c.Err(); nil != err {
//       ...
//   }
type Cursor[V any] struct {
	tree    *Tree[V]
	stack   nodeStack[V] // pending ancestors
	trav    *node[V]     // next sub-tree to descend into
	version uint64       // tree version at creation
	value   V
	done    bool
	err     error
}

// Iterate - create a cursor positioned before the lowest value
func (tree *Tree[V]) Iterate() *Cursor[V] {
	return &Cursor[V]{
		tree:    tree,
		trav:    tree.root,
		version: tree.version,
	}
}

// Values - all values in ascending order
func (tree *Tree[V]) Values() []V {
	values := make([]V, 0, tree.count)
	for c := tree.Iterate(); c.Next(); {
		values = append(values, c.Value())
	}
	return values
}

// Next - advance to the next value
//
// returns false at the end of the values or if the tree was modified
// since the cursor was created, in which case Err is set and the cursor
// cannot be resumed
func (c *Cursor[V]) Next() bool {
	if c.done {
		return false
	}
	if c.version != c.tree.version {
		c.fail(fault.ErrConcurrentModification)
		return false
	}

	for nil != c.trav {
		c.stack.push(c.trav)
		c.trav = c.trav.left
	}

	p := c.stack.pop()
	if nil == p {
		c.finish()
		return false
	}
	c.value = p.value
	c.trav = p.right
	return true
}

// Value - the value reached by the last successful Next
func (c *Cursor[V]) Value() V {
	return c.value
}

// Err - the reason a traversal stopped early, nil on normal completion
func (c *Cursor[V]) Err() error {
	return c.err
}

func (c *Cursor[V]) fail(err error) {
	c.err = err
	c.finish()
}

// release all references into the tree
func (c *Cursor[V]) finish() {
	var zero V
	c.done = true
	c.value = zero
	c.trav = nil
	c.stack.clear()
}

// nodeStack - the pending ancestors of a cursor, the top is the next
// node to be visited
type nodeStack[V any] struct {
	s []*node[V]
}

func (ns *nodeStack[V]) push(p *node[V]) {
	ns.s = append(ns.s, p)
}

// returns nil if the stack is empty
func (ns *nodeStack[V]) pop() *node[V] {
	n := len(ns.s)
	if 0 == n {
		return nil
	}
	p := ns.s[n-1]
	ns.s[n-1] = nil
	ns.s = ns.s[:n-1]
	return p
}

func (ns *nodeStack[V]) clear() {
	ns.s = nil
}
