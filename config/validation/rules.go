/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package validation provides ozzo-validation rules which are not part of the default set.
package validation

import (
	"math"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/safequeue/commonerrors"
)

var (
	ErrNotWholeNumber      = validation.NewError("validation_not_whole_number", "must be a whole number")
	ErrNotStrictlyPositive = validation.NewError("validation_not_strictly_positive", "must be higher than 0")
)

// IsWholeNumber checks that a number has no fractional part. Integers always pass.
func IsWholeNumber() validation.Rule {
	return validation.By(func(vRaw any) error {
		value, isNil := validation.Indirect(vRaw)
		if isNil {
			return nil
		}
		val := reflect.ValueOf(value)
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return nil
		case reflect.Float32, reflect.Float64:
			f := val.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
				return ErrNotWholeNumber
			}
			return nil
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for whole number validation: %T", vRaw)
		}
	})
}

// IsStrictlyPositive checks that a number is higher than 0. Unlike validation.Min, zero values are not skipped.
func IsStrictlyPositive() validation.Rule {
	return validation.By(func(vRaw any) error {
		value, isNil := validation.Indirect(vRaw)
		if isNil {
			return ErrNotStrictlyPositive
		}
		val := reflect.ValueOf(value)
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if val.Int() <= 0 {
				return ErrNotStrictlyPositive
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if val.Uint() == 0 {
				return ErrNotStrictlyPositive
			}
		case reflect.Float32, reflect.Float64:
			f := val.Float()
			if math.IsNaN(f) || f <= 0 {
				return ErrNotStrictlyPositive
			}
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for positivity validation: %T", vRaw)
		}
		return nil
	})
}
