// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedtree/fault"
)

// Item - a value type that carries its own ordering
//
// Compare returns -1, 0, +1 when the receiver is less than, equal to or
// greater than the argument
type Item[V any] interface {
	Compare(V) int
}

// Tree - type to hold the root node of a tree
type Tree[V any] struct {
	root    *node[V]
	count   int
	version uint64 // structural modifications, checked by cursors

	compare func(a V, b V) int
	isNil   func(v V) bool // nil for value kinds that cannot be nil

	pool   *node[V] // reclaimed nodes linked through right
	pooled int

	log *logger.L
}

// New - create an initially empty tree using the natural ordering
func New[V cmp.Ordered]() *Tree[V] {
	return NewFunc(cmp.Compare[V])
}

// NewItem - create an initially empty tree of self comparing values
func NewItem[V Item[V]]() *Tree[V] {
	return NewFunc(func(a V, b V) int {
		return a.Compare(b)
	})
}

// NewFunc - create an initially empty tree ordered by a three way
// compare function
func NewFunc[V any](compare func(a V, b V) int) *Tree[V] {
	if nil == compare {
		fault.PanicWithError("avl.NewFunc", fault.ErrNilCompare)
	}
	return &Tree[V]{
		root:    nil,
		count:   0,
		compare: compare,
		isNil:   nilChecker[V](),
	}
}

// SetLog - attach a logger channel, nil detaches
func (tree *Tree[V]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return 0 == tree.count
}

// Size - number of values currently in the tree
func (tree *Tree[V]) Size() int {
	return tree.count
}

// Count - number of nodes currently in the tree
func (tree *Tree[V]) Count() int {
	return tree.count
}

// Height - edges from the root to the furthest leaf, an empty tree and a
// single node tree both have height zero
func (tree *Tree[V]) Height() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.height
}

// Version - the structural modification counter
func (tree *Tree[V]) Version() uint64 {
	return tree.version
}

// Clear - discard all values
func (tree *Tree[V]) Clear() {
	if nil == tree.root {
		return
	}
	if nil != tree.log {
		tree.log.Debugf("clear: %d values", tree.count)
	}
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.pooled = 0
	tree.version += 1
}

// true if the value cannot be stored
func (tree *Tree[V]) isNilValue(value V) bool {
	return nil != tree.isNil && tree.isNil(value)
}

// determine once per tree whether values of type V can be nil
func nilChecker[V any]() func(V) bool {
	t := reflect.TypeOf((*V)(nil)).Elem()
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return func(v V) bool {
			return reflect.ValueOf(&v).Elem().IsNil()
		}
	default:
		return nil
	}
}
