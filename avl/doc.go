// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a set of unique ordered
// values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches its height and balance factor, and every insert or
// delete re-derives them on the way back up the recursion, rotating any
// node whose balance factor reaches ±2.  Nodes have no parent pointers;
// iteration uses a cursor with an explicit stack which fails if the tree
// is modified while the cursor is outstanding.
//
// Delete of a node with two children replaces its value by that of the
// predecessor when the left branch is strictly higher, otherwise by the
// successor, and then deletes the donor from the corresponding branch.
package avl
