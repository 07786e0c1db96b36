// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigDirPath           = InvalidError("data directory is not a folder")
	ErrDepartmentTooLong       = LengthError("department exceeds 50 characters")
	ErrDuplicateEmployeeID     = ExistsError("employee id is already present")
	ErrEmployeeFileEmpty       = ProcessError("employee file is empty")
	ErrEmployeeFileNotFound    = NotFoundError("employee file is not found")
	ErrEmployeeIDTooLong       = LengthError("employee id exceeds 20 characters")
	ErrEmployeeNotFound        = NotFoundError("no employee matches the id")
	ErrInvalidEmployeeIDPrefix = InvalidError("employee id must start with EMP")
	ErrManagerIDTooLong        = LengthError("manager id exceeds 20 characters")
	ErrNameTooLong             = LengthError("full name exceeds 100 characters")
	ErrRequiredConfigDir       = InvalidError("data directory is required")
	ErrRequiredEmployeeID      = InvalidError("employee id is required")
	ErrRequiredFullName        = InvalidError("full name is required")
	ErrTitleTooLong            = LengthError("title exceeds 100 characters")
	ErrTreeCheckFailed         = ProcessError("tree invariant check failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
