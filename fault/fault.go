// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	AuthorizationError GenericError
	ExistsError        GenericError
	InvalidError       GenericError
	NotFoundError      GenericError
	ProcessError       GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyExists           = ExistsError("record already exists")
	AlreadyInitialised      = ProcessError("already initialised")
	CannotDecodeRecord      = InvalidError("cannot decode record")
	CertificateFileExists   = ExistsError("certificate file already exists")
	ConnectionNotFound      = NotFoundError("connection not found")
	GenerationMethodTooLong = InvalidError("generation method too long")
	GridNotFound            = NotFoundError("grid not found")
	InsufficientStake       = InvalidError("stake below minimum")
	InvalidAmount           = InvalidError("invalid amount")
	InvalidCount            = InvalidError("invalid count")
	InvalidDnaLength        = InvalidError("invalid dna length")
	InvalidIpAddress        = InvalidError("invalid ip address")
	InvalidLoggerChannel    = ProcessError("invalid logger channel")
	InvalidPrincipal        = InvalidError("invalid principal")
	InvalidPrincipalLength  = InvalidError("invalid principal length")
	InvalidResource         = InvalidError("invalid resource type")
	KeyFileExists           = ExistsError("key file already exists")
	MissingParameters       = InvalidError("missing parameters")
	NotAuthorized           = AuthorizationError("not authorized")
	NotConnected            = ProcessError("not connected")
	NotInitialised          = ProcessError("not initialised")
	OperatorNotFound        = NotFoundError("operator not found")
	ParticipationNotFound   = NotFoundError("participation not found")
	PrincipalChecksum       = InvalidError("principal checksum mismatch")
	RateLimiting            = ProcessError("rate limiting")
	RecordNotFound          = NotFoundError("record not found")
	ResourceNotFound        = NotFoundError("resource not found")
	StakeNotFound           = NotFoundError("stake not found")
	TransferFailed          = ProcessError("transfer failed")
	WrongDatabaseVersion    = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
