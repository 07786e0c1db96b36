// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height-balanced AVL tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores the height of its own subtree and rebalancing
// after an insert is decided from the difference of the two child
// heights, walking back up the insertion path.
//
// Keys are unique; inserting a key that is already present leaves the
// tree untouched and keeps the value already stored.  Values are kept
// as opaque data; a tree can be deep copied, in which case values
// implementing the Cloner interface are copied along with the nodes.
package avl
