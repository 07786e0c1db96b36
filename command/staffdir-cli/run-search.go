// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/staffdir/staffdir/employee"
	"github.com/staffdir/staffdir/fault"
)

func runSearch(c *cli.Context) error {

	if 0 == c.NArg() {
		return fault.ErrRequiredEmployeeID
	}

	d, _, err := loadDirectory(c)
	if nil != err {
		return err
	}

	missing := 0
	for _, arg := range c.Args() {
		id := employee.NormaliseID(arg)

		r, err := d.FindByID(id)
		if fault.IsErrNotFound(err) {
			fmt.Printf("no employee matching the ID %s was found\n", id)
			missing += 1
			continue
		}
		printRecord(r)
		fmt.Println()
	}

	if missing > 0 {
		return fault.ErrEmployeeNotFound
	}
	return nil
}
