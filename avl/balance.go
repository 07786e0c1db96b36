// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, zero for an absent one
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor: right height minus left height
// a valid node is in the range -1…+1
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

// recompute the stored height from the two children
// must run after any change to either child and before the
// parent reads this node's height
func updateHeight(p *Node) {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// single right rotation for a left-heavy sub-tree
//
//	      y               x
//	     / \             / \
//	    x   T3   →     T1   y
//	   / \                 / \
//	  T1  T2             T2   T3
//
// heights: y first then x, child before parent
func rotateRight(y *Node) *Node {
	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	updateHeight(y)
	updateHeight(x)

	return x
}

// single left rotation, mirror of rotateRight
func rotateLeft(x *Node) *Node {
	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	updateHeight(x)
	updateHeight(y)

	return y
}
