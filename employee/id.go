// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package employee

import (
	"strings"
)

// ID - unique employee identifier, ordered ordinally
type ID string

// Compare - ordinal comparison for the AVL interface
func (i ID) Compare(q interface{}) int {
	return strings.Compare(string(i), string(q.(ID)))
}

// String - identifier string for the AVL interface
func (i ID) String() string {
	return string(i)
}

// NormaliseID - fold an id typed by a user to the canonical
// upper-case form used as the tree key
func NormaliseID(s string) ID {
	return ID(strings.ToUpper(strings.TrimSpace(s)))
}
