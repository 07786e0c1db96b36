// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckBalance - verify the stored heights and the AVL range for
// every node
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

// internal: consistency checker
func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}

	lh := height(p.left)
	rh := height(p.right)
	expected := 1 + lh
	if rh > lh {
		expected = 1 + rh
	}
	if p.height != expected {
		fmt.Printf("height fail at node: %v   actual: %d  expected: %d\n", p.key, p.height, expected)
		return false
	}

	balance := rh - lh
	if balance < -1 || balance > 1 {
		fmt.Printf("balance fail at node: %v   factor: %d\n", p.key, balance)
		return false
	}

	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckOrder - verify that an in-order walk produces strictly
// ascending keys
func (tree *Tree) CheckOrder() bool {
	ok := true
	var previous Item
	tree.Traverse(func(key Item, value interface{}) {
		if nil != previous && previous.Compare(key) >= 0 {
			fmt.Printf("order fail: %v listed after %v\n", key, previous)
			ok = false
		}
		previous = key
	})
	return ok
}
