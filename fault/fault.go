// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = GenericError("already initialised")
	ErrBalanceFactor          = RecordError("balance factor out of range")
	ErrConcurrentModification = ProcessError("tree modified during iteration")
	ErrCountMismatch          = RecordError("node count does not match reachable nodes")
	ErrHeightBound            = RecordError("tree height exceeds balanced bound")
	ErrHeightMismatch         = RecordError("cached height does not match subtrees")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrMissingPivot           = RecordError("rotation pivot node is missing")
	ErrNilCompare             = InvalidError("compare function is nil")
	ErrOrdering               = RecordError("values out of order")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
