// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// upper limit on reclaimed nodes kept by a tree
const maxPooled = 64

// a node in the tree
type node[V any] struct {
	left    *node[V] // left sub-tree
	right   *node[V] // right sub-tree
	value   V        // the stored value, unique within the tree
	height  int      // leaf = 0, an absent sub-tree counts as -1
	balance int      // height(right) - height(left): -1, 0, +1
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[V]) newNode(value V) *node[V] {
	p := tree.pool
	if nil == p {
		if 0 != tree.pooled {
			panic("pool corrupt")
		}
		return &node[V]{
			value: value,
		}
	}
	tree.pool = p.right
	tree.pooled -= 1

	p.right = nil // ensure freelist pointer is cleared
	p.value = value
	return p
}

// reclaim a node and keep it in the pool if there is room
func (tree *Tree[V]) freeNode(p *node[V]) {
	var zero V

	p.left = nil
	p.value = zero
	p.height = 0
	p.balance = 0

	if tree.pooled >= maxPooled {
		p.right = nil
		return
	}
	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.pooled += 1
}
