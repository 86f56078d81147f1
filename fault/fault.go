// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceMismatch      = InvalidError("balance factor does not match sub-tree heights")
	ErrBrokenUpLink         = InvalidError("up link does not point to parent")
	ErrInvalidColourMode    = InvalidError("colour mode is invalid")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidIndex         = InvalidError("node index is invalid")
	ErrInvalidKey           = InvalidError("key is not an integer")
	ErrInvalidKeyRange      = InvalidError("key range is too small")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOperation     = InvalidError("operation is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyExists            = ExistsError("key already exists")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = InvalidError("keys are out of order")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrMixedOperations      = InvalidError("plain and balanced updates cannot be mixed")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrTooManyDeletions     = InvalidError("more deletions than insertions")
	ErrUnbalanced           = InvalidError("sub-tree heights differ by more than one")
	ErrUnknownCommand       = NotFoundError("unknown command")
	ErrUnreachableNode      = ProcessError("node is not reachable from root")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
