// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package employee - the employee record and its identifier
//
// a Record is filled in once, validated, and never modified after it
// has been handed to a directory
package employee
