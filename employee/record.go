// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package employee

import (
	"strings"

	"github.com/staffdir/staffdir/fault"
)

// field limits
const (
	MaximumIDLength         = 20
	MaximumNameLength       = 100
	MaximumDepartmentLength = 50
	MaximumTitleLength      = 100

	idPrefix = "EMP"
)

// Record - one employee
//
// Manager is empty for executive level staff; Skills may be empty
type Record struct {
	ID         ID
	Name       string
	Department string
	Title      string
	Manager    ID
	Skills     []string
}

// CloneValue - duplicate a record for tree cloning
// the skills slice gets its own backing array
func (r Record) CloneValue() interface{} {
	copied := r
	if nil != r.Skills {
		copied.Skills = make([]string, len(r.Skills))
		copy(copied.Skills, r.Skills)
	}
	return copied
}

// Validate - check required fields, field lengths and the id format
func (r Record) Validate() error {
	if "" == r.ID {
		return fault.ErrRequiredEmployeeID
	}
	if "" == r.Name {
		return fault.ErrRequiredFullName
	}
	if len(r.ID) > MaximumIDLength {
		return fault.ErrEmployeeIDTooLong
	}
	if len(r.Name) > MaximumNameLength {
		return fault.ErrNameTooLong
	}
	if len(r.Department) > MaximumDepartmentLength {
		return fault.ErrDepartmentTooLong
	}
	if len(r.Title) > MaximumTitleLength {
		return fault.ErrTitleTooLong
	}
	if len(r.Manager) > MaximumIDLength {
		return fault.ErrManagerIDTooLong
	}
	if !strings.HasPrefix(string(r.ID), idPrefix) {
		return fault.ErrInvalidEmployeeIDPrefix
	}
	return nil
}

// ParseSkills - split a comma separated skills field into individual
// trimmed skill names, dropping any blanks
func ParseSkills(s string) []string {
	if "" == s {
		return nil
	}
	skills := []string{}
	for _, skill := range strings.Split(s, ",") {
		skill = strings.TrimSpace(skill)
		if "" != skill {
			skills = append(skills, skill)
		}
	}
	if 0 == len(skills) {
		return nil
	}
	return skills
}
