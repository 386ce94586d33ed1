// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedtree/avl"
	"github.com/bitmark-inc/orderedtree/fault"
)

func TestIterateAscending(t *testing.T) {
	tree := avl.New[int]()
	for _, v := range []int{50, 20, 80, 10, 30, 70, 90, 60, 40} {
		tree.Insert(v)
	}

	actual := []int{}
	c := tree.Iterate()
	for c.Next() {
		actual = append(actual, c.Value())
	}
	assert.NoError(t, c.Err())
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90}, actual)

	// exhausted cursor stays exhausted
	assert.False(t, c.Next(), "next after end")
	assert.NoError(t, c.Err())

	// a new cursor restarts at the lowest value
	c = tree.Iterate()
	assert.True(t, c.Next())
	assert.Equal(t, 10, c.Value())
}

func TestIterateEmpty(t *testing.T) {
	tree := avl.New[int]()
	c := tree.Iterate()
	assert.False(t, c.Next())
	assert.NoError(t, c.Err())
	assert.Equal(t, []int{}, tree.Values())
}

func TestIterateInsertDetected(t *testing.T) {
	tree := avl.New[int]()
	for i := 1; i <= 10; i += 1 {
		tree.Insert(i)
	}

	c := tree.Iterate()
	assert.True(t, c.Next())
	assert.Equal(t, 1, c.Value())

	tree.Insert(11)

	assert.False(t, c.Next(), "next after insert")
	assert.Equal(t, fault.ErrConcurrentModification, c.Err())
	assert.True(t, fault.IsErrProcess(c.Err()))

	// cannot be resumed
	assert.False(t, c.Next(), "resumed after failure")
	assert.Equal(t, fault.ErrConcurrentModification, c.Err())
}

func TestIterateRemoveDetected(t *testing.T) {
	tree := avl.New[int]()
	for i := 1; i <= 10; i += 1 {
		tree.Insert(i)
	}

	c := tree.Iterate()
	tree.Remove(5)

	assert.False(t, c.Next(), "next after remove")
	assert.Equal(t, fault.ErrConcurrentModification, c.Err())
}

func TestIterateClearDetected(t *testing.T) {
	tree := avl.New[int]()
	tree.Insert(1)
	tree.Insert(2)

	c := tree.Iterate()
	assert.True(t, c.Next())
	tree.Clear()

	assert.False(t, c.Next(), "next after clear")
	assert.Equal(t, fault.ErrConcurrentModification, c.Err())
}

// operations that do not change the structure leave cursors valid
func TestIterateNoOpMutations(t *testing.T) {
	tree := avl.New[int]()
	for i := 1; i <= 5; i += 1 {
		tree.Insert(i)
	}

	c := tree.Iterate()
	assert.True(t, c.Next())

	assert.False(t, tree.Insert(3), "duplicate")
	assert.False(t, tree.Remove(99), "missing")
	assert.True(t, tree.Contains(4))

	n := 1
	for c.Next() {
		n += 1
	}
	assert.NoError(t, c.Err())
	assert.Equal(t, 5, n)
}

// balanced shapes of every size iterate in order and count their nodes
func TestIterateSizes(t *testing.T) {
	for size := 0; size < 100; size += 1 {
		tree := avl.New[int]()
		for i := size; i > 0; i -= 1 {
			tree.Insert(i * 3)
		}
		values := tree.Values()
		if len(values) != tree.Size() {
			t.Fatalf("size: %d  traversed: %d", tree.Size(), len(values))
		}
		for i, v := range values {
			if (i+1)*3 != v {
				t.Fatalf("size: %d  [%d]: actual: %d  expected: %d", size, i, v, (i+1)*3)
			}
		}
	}
}
