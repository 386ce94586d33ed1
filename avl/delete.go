// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific value from the tree
//
// returns false, leaving the tree unchanged, if the value is nil or is
// not present
func (tree *Tree[V]) Remove(value V) bool {
	if tree.isNilValue(value) {
		return false
	}
	if nil == tree.search(value, tree.root) {
		return false
	}
	tree.root = tree.remove(value, tree.root)
	tree.count -= 1
	tree.version += 1
	return true
}

// internal delete routine
// returns the possibly rotated or spliced root of the sub-tree
func (tree *Tree[V]) remove(value V, p *node[V]) *node[V] {
	if nil == p { // value not in tree
		return nil
	}

	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		p.left = tree.remove(value, p.left)
	case c > 0: // value > p.value
		p.right = tree.remove(value, p.right)
	default: // found: delete p
		if nil == p.left {
			r := p.right
			tree.freeNode(p)
			return r
		}
		if nil == p.right {
			l := p.left
			tree.freeNode(p)
			return l
		}

		// two children: p stays in place and takes over the value of a
		// donor, which is then deleted from its branch; equal heights
		// take the successor
		if p.left.height > p.right.height {
			donor := p.left.last().value
			p.value = donor
			p.left = tree.remove(donor, p.left)
		} else {
			donor := p.right.first().value
			p.value = donor
			p.right = tree.remove(donor, p.right)
		}
	}

	update(p)
	return tree.rebalance(p)
}
