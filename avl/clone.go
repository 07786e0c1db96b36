// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Cloner - a value implementing this is duplicated when its tree is
// cloned; any other value is shared between the two trees, which is
// only safe for values that are never modified after insertion
type Cloner interface {
	CloneValue() interface{}
}

// Clone - build a completely independent copy of the tree
//
// every node is newly allocated with the stored height carried over,
// so the copy never has to rebalance; inserting into one tree can
// never change the other
func (tree *Tree) Clone() *Tree {
	return &Tree{
		root:  clone(tree.root),
		count: tree.count,
	}
}

// internal: recursive structural copy
func clone(p *Node) *Node {
	if nil == p {
		return nil
	}

	value := p.value
	if c, ok := value.(Cloner); ok {
		value = c.CloneValue()
	}

	q := newNode(p.key, value)
	q.height = p.height
	q.left = clone(p.left)
	q.right = clone(p.right)
	return q
}

// Destroy - release every node back to the allocator pool
// the tree remains valid and empty afterwards
func (tree *Tree) Destroy() {
	destroy(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: post-order release, both children go before the node so
// nothing in the pool still has a live parent pointing at it
func destroy(p *Node) {
	if nil == p {
		return
	}
	destroy(p.left)
	destroy(p.right)
	freeNode(p)
}

// CopyFrom - replace the contents of this tree with a deep copy of
// another one; assigning a tree to itself is a no-op
func (tree *Tree) CopyFrom(src *Tree) {
	if tree == src {
		return
	}
	tree.Destroy()
	tree.root = clone(src.root)
	tree.count = src.count
}
