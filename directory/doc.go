// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - an in-memory employee directory
//
// records are held in an AVL tree keyed by employee id, so adding
// and lookup stay O(log n) no matter what order the data file listed
// the employees in
//
// Note: a directory is not safe for concurrent mutation; callers
//       needing shared access must serialise externally or hand a
//       Clone to each reader.
package directory
