// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
//
// returns false, leaving the tree unchanged, if the value is nil or is
// already present
func (tree *Tree[V]) Insert(value V) bool {
	if tree.isNilValue(value) {
		return false
	}
	if nil != tree.search(value, tree.root) {
		return false
	}
	tree.root = tree.insert(value, tree.root)
	tree.count += 1
	tree.version += 1
	return true
}

// internal routine for insert
// returns the possibly rotated root of the sub-tree
func (tree *Tree[V]) insert(value V, p *node[V]) *node[V] {
	if nil == p { // insert new node
		return tree.newNode(value)
	}

	if tree.compare(value, p.value) < 0 {
		p.left = tree.insert(value, p.left)
	} else {
		p.right = tree.insert(value, p.right)
	}

	update(p)
	return tree.rebalance(p)
}
