// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
	RecordError   GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyDeposited        = ExistsError("already deposited")
	AlreadyInitialised      = ProcessError("already initialised")
	CannotDecodeAccount     = RecordError("cannot decode account")
	ChecksumMismatch        = ProcessError("checksum mismatch")
	CurrentlyWhitelisted    = InvalidError("currently whitelisted")
	DataInconsistent        = ProcessError("data inconsistent")
	EmptyInventory          = NotFoundError("empty inventory")
	IncorrectMarketType     = InvalidError("incorrect market type")
	InvalidCount            = InvalidError("invalid count")
	InvalidCursor           = InvalidError("invalid cursor")
	InvalidKeyLength        = InvalidError("invalid key length")
	InvalidKeyType          = InvalidError("invalid key type")
	InvalidLoggerChannel    = InvalidError("invalid logger channel")
	InvalidSaleMode         = InvalidError("invalid sale mode")
	InvalidStructPointer    = InvalidError("invalid struct pointer")
	KeyNotFound             = NotFoundError("key not found")
	NoTokensLeft            = NotFoundError("no tokens left")
	NotInitialised          = ProcessError("not initialised")
	NotLive                 = InvalidError("not live")
	NotPublicKey            = RecordError("not public key")
	NotTokenId              = RecordError("not token id")
	NotWhitelisted          = InvalidError("not whitelisted")
	OwnerNotFound           = NotFoundError("owner not found")
	TransactionAlreadyInUse = ProcessError("transaction already in use")
	UndefinedMarket         = NotFoundError("undefined market")
	WrongValueType          = InvalidError("wrong value type")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine if an error is in the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error is in the invalid class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine if an error is in the length class
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine if an error is in the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error is in the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine if an error is in the record class
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
