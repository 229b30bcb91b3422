/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/safequeue/commonerrors"
	"github.com/ARM-software/safequeue/field"
)

// IValidationError describes why a configuration failed validation and which entry is at fault.
// It always matches commonerrors.ErrInvalid.
type IValidationError interface {
	error
	fmt.Stringer
	// GetMapStructurePath returns the environment variable name of the faulty entry e.g. QUEUE_CAPACITY.
	GetMapStructurePath() string
	// GetTreePath returns the path to the faulty field e.g. limits->capacity.
	GetTreePath() string
	GetReason() string
	Unwrap() error
}

// WrapValidationError converts the error returned by the validation of a structure (usually by ozzo-validation) into an IValidationError.
// prefix is the environment variable prefix of the structure, if any.
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := toValidationError(err)
	if vErr == nil {
		return nil
	}
	if p := strings.TrimSpace(field.OptionalString(prefix, "")); p != "" {
		vErr.prefix = p
	}
	return vErr
}

type validationError struct {
	path   []string
	reason string
	prefix string
}

func (v *validationError) under(fieldName string) *validationError {
	return &validationError{
		path:   slices.Insert(slices.Clone(v.path), 0, strings.TrimSpace(fieldName)),
		reason: v.reason,
		prefix: v.prefix,
	}
}

func (v *validationError) Error() string {
	var b strings.Builder
	if tree := v.GetTreePath(); tree != "" {
		_, _ = fmt.Fprintf(&b, " (%v)", tree)
	}
	if env := v.GetMapStructurePath(); env != "" {
		_, _ = fmt.Fprintf(&b, " [%v]", env)
	}
	if v.reason != "" {
		_, _ = fmt.Fprintf(&b, " %v", v.reason)
	}
	return commonerrors.Newf(commonerrors.ErrInvalid, "structure failed validation:%v", b.String()).Error()
}

func (v *validationError) GetMapStructurePath() string {
	if len(v.path) == 0 {
		return ""
	}
	parts := v.path
	if v.prefix != "" {
		parts = append([]string{v.prefix}, parts...)
	}
	return strings.ToUpper(strings.ReplaceAll(strings.Join(parts, "_"), "-", "_"))
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.path, "->")
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) String() string {
	return v.Error()
}

func toValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) && len(oes) > 0 {
		// only the first failing field (alphabetically) is reported
		name := slices.Sorted(maps.Keys(oes))[0]
		sub := toValidationError(oes[name])
		if sub == nil {
			sub = &validationError{reason: oes.Error()}
		}
		return sub.under(name)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Error()}
	}
	return &validationError{reason: err.Error()}
}
