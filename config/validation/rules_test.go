package validation

import (
	"fmt"
	"math"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/safequeue/commonerrors"
	"github.com/ARM-software/safequeue/commonerrors/errortest"
)

func TestIsWholeNumber(t *testing.T) {
	tests := []struct {
		value   any
		isValid bool
	}{
		{value: 1, isValid: true},
		{value: -2, isValid: true},
		{value: uint8(3), isValid: true},
		{value: 4.0, isValid: true},
		{value: float32(5), isValid: true},
		{value: 0.0, isValid: true},
		{value: 3.5, isValid: false},
		{value: -0.1, isValid: false},
		{value: math.NaN(), isValid: false},
		{value: math.Inf(1), isValid: false},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v", test.value), func(t *testing.T) {
			err := validation.Validate(test.value, IsWholeNumber())
			if test.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				errortest.AssertErrorDescription(t, err, ErrNotWholeNumber.Message())
			}
		})
	}
	errortest.AssertError(t, validation.Validate("a string", IsWholeNumber()), commonerrors.ErrMarshalling)
}

func TestIsStrictlyPositive(t *testing.T) {
	tests := []struct {
		value   any
		isValid bool
	}{
		{value: 1, isValid: true},
		{value: uint(7), isValid: true},
		{value: 0.5, isValid: true},
		{value: math.MaxFloat64, isValid: true},
		{value: 0, isValid: false},
		{value: uint64(0), isValid: false},
		{value: -2, isValid: false},
		{value: 0.0, isValid: false},
		{value: -3.5, isValid: false},
		{value: math.NaN(), isValid: false},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v", test.value), func(t *testing.T) {
			err := validation.Validate(test.value, IsStrictlyPositive())
			if test.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				errortest.AssertErrorDescription(t, err, ErrNotStrictlyPositive.Message())
			}
		})
	}
	errortest.AssertError(t, validation.Validate("a string", IsStrictlyPositive()), commonerrors.ErrMarshalling)
}

func TestRulesOnPointers(t *testing.T) {
	whole := 4.0
	fraction := 3.5
	capacity := 2
	assert.NoError(t, validation.Validate(&whole, IsWholeNumber()))
	errortest.AssertErrorDescription(t, validation.Validate(&fraction, IsWholeNumber()), ErrNotWholeNumber.Message())
	assert.NoError(t, validation.Validate((*float64)(nil), IsWholeNumber()))

	assert.NoError(t, validation.Validate(&capacity, IsStrictlyPositive()))
	errortest.AssertErrorDescription(t, validation.Validate((*int)(nil), IsStrictlyPositive()), ErrNotStrictlyPositive.Message())
	assert.NoError(t, validation.Validate(&capacity, IsWholeNumber(), IsStrictlyPositive()))
}
