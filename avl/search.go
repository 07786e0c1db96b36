// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the value stored under a specific key
// the second return is false when the key is not in the tree
//
// a plain iterative descent, no balancing work is done
func (tree *Tree) Search(key Item) (interface{}, bool) {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p.value, true
		}
	}
	return nil, false
}
