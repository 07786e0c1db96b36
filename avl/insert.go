// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
// returns true if a node was added, false when the key was already
// present, in which case the tree is left exactly as it was and the
// value supplied here is discarded
func (tree *Tree) Insert(key Item, value interface{}) bool {
	added := false
	tree.root, added = insert(key, value, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
//
// plain BST descent to a leaf position, then on the way back up the
// stored heights are refreshed and any node pushed outside the AVL
// range is repaired with one of the four rotation cases
func insert(key Item, value interface{}, p *Node) (*Node, bool) {
	if nil == p { // new leaf
		return newNode(key, value), true
	}

	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, value, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, value, p.right)
	default: // duplicate key: keep the stored value
		return p, false
	}
	if !added {
		return p, false
	}

	updateHeight(p)

	balance := balanceFactor(p)
	if balance >= -1 && balance <= 1 {
		return p, true
	}

	if balance < -1 {
		if -1 == key.Compare(p.left.key) {
			// left-left: key settles left of the left child
			p = rotateRight(p)
		} else {
			// left-right
			p.left = rotateLeft(p.left)
			p = rotateRight(p)
		}
	} else {
		if +1 == key.Compare(p.right.key) {
			// right-right: key settles right of the right child
			p = rotateLeft(p)
		} else {
			// right-left
			p.right = rotateRight(p.right)
			p = rotateLeft(p)
		}
	}

	return p, true
}
