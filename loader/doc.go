// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loader - read a delimited employee data file into a
// directory
//
// the expected layout is one employee per line:
//
//	id,full name,department,title,manager id,"skill, skill, …"
//
// the first line is a header and is skipped; only id and full name
// are required, bad lines are logged and skipped rather than
// aborting the load
package loader
