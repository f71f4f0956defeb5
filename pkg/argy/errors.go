// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

import (
	"errors"
	"fmt"
)

// Code identifies the outcome of building a schema or parsing a command line.
type Code int

const (
	Success Code = iota
	HelpShown

	// Schema errors, reported when the parser is constructed.
	InvalidTypeInArgsClass
	HelpFlagCannotBeInCmdArgsClass
	FlagOrShortHandDoesNotStartWithDash
	DuplicateFlagsPresentInAttribute

	// Parse errors, reported by Parse.
	UnknownFlagsOrShorthandPresent
	RequiredFlagNotProvided
	FlagAndShorthandPresentOnCommandLine
	DuplicateFlagOrShortPresentOnCommandLine
	FirstArgIsNotAnID
	IDAndValueCountDoNotMatch
	ValueMissing
	ValueMustBeANumber
)

var codeNames = map[Code]string{
	Success:                                  "Success",
	HelpShown:                                "HelpShown",
	InvalidTypeInArgsClass:                   "InvalidTypeInArgsClass",
	HelpFlagCannotBeInCmdArgsClass:           "HelpFlagCannotBeInCmdArgsClass",
	FlagOrShortHandDoesNotStartWithDash:      "FlagOrShortHandDoesNotStartWithDash",
	DuplicateFlagsPresentInAttribute:         "DuplicateFlagsPresentInAttribute",
	UnknownFlagsOrShorthandPresent:           "UnknownFlagsOrShorthandPresent",
	RequiredFlagNotProvided:                  "RequiredFlagNotProvided",
	FlagAndShorthandPresentOnCommandLine:     "FlagAndShorthandPresentOnCommandLine",
	DuplicateFlagOrShortPresentOnCommandLine: "DuplicateFlagOrShortPresentOnCommandLine",
	FirstArgIsNotAnID:                        "FirstArgIsNotAnID",
	IDAndValueCountDoNotMatch:                "IDAndValueCountDoNotMatch",
	ValueMissing:                             "ValueMissing",
	ValueMustBeANumber:                       "ValueMustBeANumber",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// IsSchemaError reports whether c describes a defect in the argument
// declarations rather than in the command line.
func (c Code) IsSchemaError() bool {
	return c >= InvalidTypeInArgsClass && c <= DuplicateFlagsPresentInAttribute
}

// Error is returned for every schema and parse failure. Msg lists every
// offending item found by the check that failed.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return e.Msg
}

// Is matches any *Error carrying the same Code, so the sentinels below can
// be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel errors, one per failure code.
var (
	ErrInvalidType          = &Error{Code: InvalidTypeInArgsClass}
	ErrReservedHelpFlag     = &Error{Code: HelpFlagCannotBeInCmdArgsClass}
	ErrMissingDash          = &Error{Code: FlagOrShortHandDoesNotStartWithDash}
	ErrDuplicateDeclaration = &Error{Code: DuplicateFlagsPresentInAttribute}

	ErrUnknownFlag      = &Error{Code: UnknownFlagsOrShorthandPresent}
	ErrRequiredMissing  = &Error{Code: RequiredFlagNotProvided}
	ErrFlagAndShorthand = &Error{Code: FlagAndShorthandPresentOnCommandLine}
	ErrDuplicateToken   = &Error{Code: DuplicateFlagOrShortPresentOnCommandLine}
	ErrLeadingValue     = &Error{Code: FirstArgIsNotAnID}
	ErrStrayValue       = &Error{Code: IDAndValueCountDoNotMatch}
	ErrValueMissing     = &Error{Code: ValueMissing}
	ErrNotANumber       = &Error{Code: ValueMustBeANumber}
)

// CodeOf returns the Code carried by err. A nil error is Success; an error
// that is not an *Error has no code and reports -1.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return -1
}
