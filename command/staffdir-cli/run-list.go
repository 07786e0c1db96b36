// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/staffdir/staffdir/employee"
)

func runList(c *cli.Context) error {

	d, _, err := loadDirectory(c)
	if nil != err {
		return err
	}

	verbose := c.GlobalBool("verbose")

	d.ForEach(func(r employee.Record) {
		if verbose {
			printRecord(r)
			fmt.Println()
			return
		}
		fmt.Printf("%s  %-30s  %-20s  %s\n", idValue(r.ID), r.Name, r.Department, r.Title)
	})

	if verbose {
		fmt.Printf("%d employees\n", d.Count())
	}

	return nil
}
