// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Traverse - in-order walk over the whole tree calling visit once
// per node in ascending key order
//
// read-only: the tree is unchanged and repeated calls on an
// unmodified tree yield the same sequence
func (tree *Tree) Traverse(visit func(key Item, value interface{})) {
	traverse(tree.root, visit)
}

// internal: left sub-tree, node, right sub-tree
func traverse(p *Node, visit func(key Item, value interface{})) {
	if nil == p {
		return
	}
	traverse(p.left, visit)
	visit(p.key, p.value)
	traverse(p.right, visit)
}
