// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedtree/fault"
)

// recompute the cached height and balance factor of a node from its
// children, must follow any change to p.left or p.right
func update[V any](p *node[V]) {
	lh := -1
	rh := -1
	if nil != p.left {
		lh = p.left.height
	}
	if nil != p.right {
		rh = p.right.height
	}
	p.height = 1 + max(lh, rh)
	p.balance = rh - lh
}

// restore the balance of a node whose factor may have reached ±2
// returns the new root of the sub-tree
func (tree *Tree[V]) rebalance(p *node[V]) *node[V] {
	switch p.balance {
	case -1, 0, +1:
		return p

	case -2: // left heavy
		if p.left.balance <= 0 {
			// single LL rotation
			return tree.rotateRight(p)
		}
		// double LR rotation
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p)

	case +2: // right heavy
		if p.right.balance >= 0 {
			// single RR rotation
			return tree.rotateLeft(p)
		}
		// double RL rotation
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p)

	default:
		fault.Panicf("avl: balance factor: %d  at: %v", p.balance, p.value)
		return p
	}
}

// rotate right around p, its left child becomes the sub-tree root
func (tree *Tree[V]) rotateRight(p *node[V]) *node[V] {
	p1 := p.left
	if nil == p1 {
		fault.PanicWithError("avl: rotate right", fault.ErrMissingPivot)
	}
	p.left = p1.right
	p1.right = p

	update(p) // p is now below p1
	update(p1)

	if nil != tree.log {
		tree.log.Tracef("rotate right: %v → %v", p.value, p1.value)
	}
	return p1
}

// rotate left around p, its right child becomes the sub-tree root
func (tree *Tree[V]) rotateLeft(p *node[V]) *node[V] {
	p1 := p.right
	if nil == p1 {
		fault.PanicWithError("avl: rotate left", fault.ErrMissingPivot)
	}
	p.right = p1.left
	p1.left = p

	update(p) // p is now below p1
	update(p1)

	if nil != tree.log {
		tree.log.Tracef("rotate left: %v → %v", p.value, p1.value)
	}
	return p1
}
