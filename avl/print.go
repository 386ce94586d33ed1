// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// Printable - read only view of a node for display
//
// an absent child is returned as nil
type Printable interface {
	Left() Printable
	Right() Printable
	Text() string
}

// to control the print routine
type branch int

const (
	branchRoot  branch = iota
	branchLeft  branch = iota
	branchRight branch = iota
)

// Render - display an ASCII graphic representation of a tree,
// returns the maximum depth
func Render(w io.Writer, p Printable) int {
	return render(w, p, "", branchRoot)
}

// internal print - returns the maximum depth of the sub-tree
func render(w io.Writer, p Printable, prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if right := p.Right(); nil != right {
		t := "       "
		if branchLeft == br {
			t = "|      "
		}
		rd = render(w, right, prefix+t, branchRight)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s\n", p.Text())
	if left := p.Left(); nil != left {
		t := "       "
		if branchRight == br {
			t = "|      "
		}
		ld = render(w, left, prefix+t, branchLeft)
	}
	return 1 + max(rd, ld)
}

// Print - display the tree, detail adds each node's balance factor and
// height, returns the maximum depth
func (tree *Tree[V]) Print(w io.Writer, detail bool) int {
	if nil == tree.root {
		return 0
	}
	return Render(w, nodeView[V]{p: tree.root, detail: detail})
}

// Root - display view of the root node, nil for an empty tree
func (tree *Tree[V]) Root() Printable {
	if nil == tree.root {
		return nil
	}
	return nodeView[V]{p: tree.root}
}

// a node as seen by the renderer
type nodeView[V any] struct {
	p      *node[V]
	detail bool
}

func (v nodeView[V]) Left() Printable {
	if nil == v.p.left {
		return nil
	}
	return nodeView[V]{p: v.p.left, detail: v.detail}
}

func (v nodeView[V]) Right() Printable {
	if nil == v.p.right {
		return nil
	}
	return nodeView[V]{p: v.p.right, detail: v.detail}
}

func (v nodeView[V]) Text() string {
	if v.detail {
		return fmt.Sprintf("%v %+d/%d", v.p.value, v.p.balance, v.p.height)
	}
	return fmt.Sprintf("%v", v.p.value)
}
