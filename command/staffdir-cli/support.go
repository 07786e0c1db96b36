// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/staffdir/staffdir/directory"
	"github.com/staffdir/staffdir/employee"
	"github.com/staffdir/staffdir/loader"
)

var idValue = color.New(color.FgYellow).SprintFunc()

// read the data file named by the global --file flag into a fresh
// directory
func loadDirectory(c *cli.Context) (*directory.Directory, loader.Summary, error) {
	fileName := c.GlobalString("file")

	d := directory.New()
	summary, err := loader.Load(fileName, d)
	if nil != err {
		return nil, summary, err
	}
	return d, summary, nil
}

// printRecord - one employee in the directory block format
func printRecord(r employee.Record) {
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
