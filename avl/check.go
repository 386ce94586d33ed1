// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/orderedtree/fault"
)

// Check - verify the ordering, cached heights, balance factors, node
// count and overall height of the tree
//
// returns the first inconsistency found, logging it on the tree's
// channel if one is attached
func (tree *Tree[V]) Check() error {
	n, err := tree.checkNode(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		tree.logErrorf("count: %d  reachable nodes: %d", tree.count, n)
		return fault.ErrCountMismatch
	}
	if h, limit := tree.Height(), heightLimit(n); h > limit {
		tree.logErrorf("height: %d  exceeds: %d  for: %d nodes", h, limit, n)
		return fault.ErrHeightBound
	}
	return nil
}

// internal: consistency checker, low and high are the exclusive bounds
// inherited from the ancestors, returns the number of nodes in the
// sub-tree
func (tree *Tree[V]) checkNode(p *node[V], low *V, high *V) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && tree.compare(p.value, *low) <= 0 {
		tree.logErrorf("value: %v  not above: %v", p.value, *low)
		return 0, fault.ErrOrdering
	}
	if nil != high && tree.compare(p.value, *high) >= 0 {
		tree.logErrorf("value: %v  not below: %v", p.value, *high)
		return 0, fault.ErrOrdering
	}

	nl, err := tree.checkNode(p.left, low, &p.value)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkNode(p.right, &p.value, high)
	if nil != err {
		return 0, err
	}

	lh := -1
	rh := -1
	if nil != p.left {
		lh = p.left.height
	}
	if nil != p.right {
		rh = p.right.height
	}
	if p.height != 1+max(lh, rh) {
		tree.logErrorf("value: %v  height: %d  expected: %d", p.value, p.height, 1+max(lh, rh))
		return 0, fault.ErrHeightMismatch
	}
	if p.balance != rh-lh || p.balance < -1 || p.balance > 1 {
		tree.logErrorf("value: %v  balance: %+d  sub-tree heights: [%d,%d]", p.value, p.balance, lh, rh)
		return 0, fault.ErrBalanceFactor
	}
	return 1 + nl + nr, nil
}

// the AVL height bound in edges for n nodes
func heightLimit(n int) int {
	return int(math.Ceil(1.4405*math.Log2(float64(n+2)) - 0.3277))
}

func (tree *Tree[V]) logErrorf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf(format, arguments...)
	}
}
