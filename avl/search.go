// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the value is in the tree
func (tree *Tree[V]) Contains(value V) bool {
	if tree.isNilValue(value) {
		return false
	}
	return nil != tree.search(value, tree.root)
}

func (tree *Tree[V]) search(value V, p *node[V]) *node[V] {
	if nil == p {
		return nil
	}

	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		return tree.search(value, p.left)
	case c > 0: // value > p.value
		return tree.search(value, p.right)
	default:
		return p
	}
}

// First - return the lowest value
func (tree *Tree[V]) First() (V, bool) {
	p := tree.root.first()
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// Last - return the highest value
func (tree *Tree[V]) Last() (V, bool) {
	p := tree.root.last()
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// internal: lowest node in a sub-tree
func (p *node[V]) first() *node[V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[V]) last() *node[V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
