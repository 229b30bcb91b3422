/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines typical errors which can happen and helpers to wrap them.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

const TypeReasonErrorSeparator = ':'

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrUndefined      = errors.New("undefined")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrOutOfRange     = errors.New("out of range")
	ErrCondition      = errors.New("failed condition")
	ErrMarshalling    = errors.New("unserialisable")
	ErrUnexpected     = errors.New("unexpected")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the description of `target` contains any of the strings `description`. The check is case-insensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// IsEmpty states whether an error is empty or not.
func IsEmpty(err error) bool {
	if err == nil {
		return true
	}
	return strings.TrimSpace(err.Error()) == ""
}

// New creates a new error of type `errorType` with a description `message`.
func New(errorType error, message string) error {
	tErr := errorType
	if tErr == nil {
		tErr = ErrUnknown
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("%w", tErr)
	}
	return fmt.Errorf("%w%v %v", tErr, string(TypeReasonErrorSeparator), message)
}

// Newf is similar to New but allows formatting of the message.
func Newf(errorType error, format string, args ...any) error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a particular targetError. Both the target and the original error can be checked using errors.Is.
// If the original error is empty, the result is similar to New.
func WrapError(targetError, originalError error, message string) error {
	if IsEmpty(originalError) {
		return New(targetError, message)
	}
	tErr := targetError
	if tErr == nil {
		tErr = ErrUnknown
	}
	if errors.Is(originalError, tErr) {
		message = strings.TrimSpace(message)
		if message == "" {
			return originalError
		}
		return fmt.Errorf("%v%v %w", message, string(TypeReasonErrorSeparator), originalError)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("%w%v %w", tErr, string(TypeReasonErrorSeparator), originalError)
	}
	return fmt.Errorf("%w%v %v%v %w", tErr, string(TypeReasonErrorSeparator), message, string(TypeReasonErrorSeparator), originalError)
}

// WrapErrorf is similar to WrapError but allows formatting of the message.
func WrapErrorf(targetError, originalError error, format string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(format, args...))
}
