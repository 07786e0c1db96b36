// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/staffdir/staffdir/employee"
)

var idValue = color.New(color.FgYellow).SprintFunc()

// displayRecord - one employee in the directory block format
func displayRecord(r employee.Record) {
	fmt.Printf("Employee ID: %s\n", idValue(r.ID))
	fmt.Printf("Full Name: %s\n", r.Name)
	fmt.Printf("Department: %s\n", r.Department)
	fmt.Printf("Title: %s\n", r.Title)

	manager := string(r.Manager)
	if "" == manager {
		manager = "None (Executive Level)"
	}
	fmt.Printf("Manager ID: %s\n", manager)

	skills := "None"
	if len(r.Skills) > 0 {
		skills = strings.Join(r.Skills, ", ")
	}
	fmt.Printf("Skills: %s\n", skills)
}
