// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrCannotDecodeAccount       = InvalidError("cannot decode account")
	ErrCertificateFileExists     = ExistsError("certificate file already exists")
	ErrCertificateFileInvalid    = InvalidError("certificate file is invalid")
	ErrChecksumMismatch          = InvalidError("checksum mismatch")
	ErrCommodityExists           = ExistsError("commodity already exists")
	ErrInvalidAccount            = InvalidError("invalid account")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidKeyLength          = InvalidError("invalid key length")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrKeyFileExists             = ExistsError("key file already exists")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrNonexistentCommodity      = NotFoundError("commodity does not exist")
	ErrNotCommodityAdministrator = InvalidError("not commodity administrator")
	ErrNotCommodityIdentifier    = InvalidError("not commodity identifier")
	ErrNotCommodityOwner         = InvalidError("not commodity owner")
	ErrNotCommodityPack          = InvalidError("not a packed commodity record")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrRateLimiting              = ProcessError("rate limiting")
	ErrRequiredCommodityName     = InvalidError("commodity name is required")
	ErrTooManyCommodities        = LimitError("too many commodities")
	ErrTooManyForAccount         = LimitError("too many commodities for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
