// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/staffdir/staffdir/avl"
	"github.com/staffdir/staffdir/employee"
	"github.com/staffdir/staffdir/fault"
)

// Directory - holds the set of employee records
type Directory struct {
	tree *avl.Tree
}

// New - create an empty directory
func New() *Directory {
	return &Directory{
		tree: avl.New(),
	}
}

// Add - store one record under its id
//
// a record whose id is already present is dropped and the stored
// record kept; the return reports whether the record went in
func (d *Directory) Add(r employee.Record) bool {
	return d.tree.Insert(r.ID, r)
}

// FindByID - point lookup by employee id
func (d *Directory) FindByID(id employee.ID) (employee.Record, error) {
	value, ok := d.tree.Search(id)
	if !ok {
		return employee.Record{}, fault.ErrEmployeeNotFound
	}
	return value.(employee.Record), nil
}

// ForEach - call visit once per record in ascending id order
func (d *Directory) ForEach(visit func(employee.Record)) {
	d.tree.Traverse(func(key avl.Item, value interface{}) {
		visit(value.(employee.Record))
	})
}

// Count - number of records held
func (d *Directory) Count() int {
	return d.tree.Count()
}

// IsEmpty - true when no records are held
func (d *Directory) IsEmpty() bool {
	return d.tree.IsEmpty()
}

// Height - current height of the underlying tree
func (d *Directory) Height() int {
	return d.tree.Height()
}

// Clone - fully independent copy of the directory
func (d *Directory) Clone() *Directory {
	return &Directory{
		tree: d.tree.Clone(),
	}
}

// CopyFrom - replace the contents with a deep copy of another
// directory; self assignment is a no-op
func (d *Directory) CopyFrom(src *Directory) {
	if d == src {
		return
	}
	d.tree.CopyFrom(src.tree)
}

// Destroy - drop every record, leaving an empty usable directory
func (d *Directory) Destroy() {
	d.tree.Destroy()
}

// Check - verify the ordering and balance invariants of the
// underlying tree
func (d *Directory) Check() bool {
	return d.tree.CheckBalance() && d.tree.CheckOrder()
}

// Print - display the underlying tree shape, returns its depth
func (d *Directory) Print(printData bool) int {
	return d.tree.Print(printData)
}
