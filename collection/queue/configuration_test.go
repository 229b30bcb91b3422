package queue

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/safequeue/commonerrors"
	"github.com/ARM-software/safequeue/commonerrors/errortest"
	"github.com/ARM-software/safequeue/config"
)

func TestConfigurationValidate(t *testing.T) {
	tests := []struct {
		capacity float64
		isValid  bool
		expected int
	}{
		{capacity: 1, isValid: true, expected: 1},
		{capacity: 10, isValid: true, expected: 10},
		{capacity: float64(DefaultCapacity), isValid: true, expected: DefaultCapacity},
		{capacity: math.MaxFloat64, isValid: true, expected: DefaultCapacity},
		{capacity: 0, isValid: false},
		{capacity: -2, isValid: false},
		{capacity: 3.5, isValid: false},
		{capacity: 0.5, isValid: false},
		{capacity: math.NaN(), isValid: false},
		{capacity: math.Inf(1), isValid: false},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v", test.capacity), func(t *testing.T) {
			cfg := DefaultConfiguration[int]()
			cfg.Capacity = test.capacity
			err := cfg.Validate()
			q, qErr := NewBoundedQueueFromConfiguration(cfg)
			if test.isValid {
				require.NoError(t, err)
				require.NoError(t, qErr)
				assert.Equal(t, test.expected, q.Cap())
			} else {
				require.Error(t, err)
				errortest.AssertError(t, err, commonerrors.ErrInvalid)
				var vErr config.IValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "QUEUE_CAPACITY", vErr.GetMapStructurePath())
				errortest.AssertError(t, qErr, ErrInvalidConfiguration)
				assert.Nil(t, q)
			}
		})
	}
}

func TestConfigurationOptions(t *testing.T) {
	values := []string{faker.Word(), faker.Word()}
	cfg := &Configuration[string]{
		Capacity:      2,
		InitialValues: values,
	}
	q, err := NewBoundedQueueFromConfiguration(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Cap())
	assert.Equal(t, values, q.ToSlice())
	cfg.InitialValues[0] = "changed"
	assert.Equal(t, values[1], q.ToSlice()[1])
	assert.NotEqual(t, "changed", q.ToSlice()[0])
	errortest.AssertError(t, q.Enqueue(faker.Word()), ErrCapacityExceeded)

	q, err = NewBoundedQueueFromConfiguration(cfg, WithCapacity[string](3))
	require.NoError(t, err)
	assert.Equal(t, 3, q.Cap())

	q, err = NewBoundedQueueFromConfiguration[string](nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, q.Cap())
	assert.True(t, q.IsEmpty())

	var nilCfg *Configuration[string]
	opts := DefaultOptions[string]()
	nilCfg.Options()(opts)
	assert.Equal(t, DefaultCapacity, opts.Capacity)
}

func TestLoadConfiguration(t *testing.T) {
	prefix := "testqueue"
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfiguration[string](prefix)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, float64(DefaultCapacity), cfg.Capacity)
		assert.Empty(t, cfg.InitialValues)
	})

	t.Run("from environment", func(t *testing.T) {
		values := []string{strings.ToLower(faker.Word()), strings.ToLower(faker.Word())}
		t.Setenv("TESTQUEUE_CAPACITY", "2")
		t.Setenv("TESTQUEUE_INITIAL_VALUES", strings.Join(values, ","))
		cfg, err := LoadConfiguration[string](prefix)
		require.NoError(t, err)
		q, err := NewBoundedQueueFromConfiguration(cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, q.Cap())
		assert.Equal(t, values, q.ToSlice())
		errortest.AssertError(t, q.Enqueue(faker.Word()), ErrCapacityExceeded)
	})

	t.Run("integer elements", func(t *testing.T) {
		t.Setenv("TESTQUEUE_CAPACITY", "5")
		t.Setenv("TESTQUEUE_INITIAL_VALUES", "1,2")
		cfg, err := LoadConfiguration[int](prefix)
		require.NoError(t, err)
		q, err := NewBoundedQueueFromConfiguration(cfg)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, q.ToSlice())
		assert.Equal(t, 5, q.Cap())
	})

	for _, capacity := range []string{"3.5", "0", "-2"} {
		t.Run("invalid capacity "+capacity, func(t *testing.T) {
			t.Setenv("TESTQUEUE_CAPACITY", capacity)
			cfg, err := LoadConfiguration[string](prefix)
			require.Error(t, err)
			assert.Nil(t, cfg)
			errortest.AssertError(t, err, ErrInvalidConfiguration)
			errortest.AssertError(t, err, commonerrors.ErrInvalid)
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	prefix := "flagqueue"
	newSession := func(t *testing.T, args ...string) *viper.Viper {
		t.Helper()
		session := viper.New()
		flagSet := pflag.NewFlagSet(faker.Word(), pflag.ContinueOnError)
		require.NoError(t, RegisterFlags(session, prefix, flagSet))
		require.NotNil(t, flagSet.Lookup(CapacityFlag))
		require.NotNil(t, flagSet.Lookup(InitialValuesFlag))
		require.NoError(t, flagSet.Parse(args))
		return session
	}

	t.Run("flags", func(t *testing.T) {
		cfg, err := LoadConfigurationFromViper[string](newSession(t, "--capacity=3", "--initial-values=a,b"), prefix)
		require.NoError(t, err)
		q, err := NewBoundedQueueFromConfiguration(cfg)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Cap())
		assert.Equal(t, []string{"a", "b"}, q.ToSlice())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigurationFromViper[string](newSession(t), prefix)
		require.NoError(t, err)
		assert.Equal(t, float64(DefaultCapacity), cfg.Capacity)
		assert.Empty(t, cfg.InitialValues)
	})

	t.Run("environment when flags are not set", func(t *testing.T) {
		t.Setenv("FLAGQUEUE_CAPACITY", "5")
		cfg, err := LoadConfigurationFromViper[string](newSession(t), prefix)
		require.NoError(t, err)
		assert.Equal(t, float64(5), cfg.Capacity)
	})

	t.Run("set flags take precedence", func(t *testing.T) {
		t.Setenv("FLAGQUEUE_CAPACITY", "5")
		cfg, err := LoadConfigurationFromViper[int](newSession(t, "--capacity=2", "--initial-values=7"), prefix)
		require.NoError(t, err)
		assert.Equal(t, float64(2), cfg.Capacity)
		assert.Equal(t, []int{7}, cfg.InitialValues)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		cfg, err := LoadConfigurationFromViper[string](newSession(t, "--capacity=2.5"), prefix)
		require.Error(t, err)
		assert.Nil(t, cfg)
		errortest.AssertError(t, err, ErrInvalidConfiguration)
	})

	t.Run("missing arguments", func(t *testing.T) {
		errortest.AssertError(t, RegisterFlags(viper.New(), prefix, nil), commonerrors.ErrUndefined)
		errortest.AssertError(t, RegisterFlags(nil, prefix, pflag.NewFlagSet(faker.Word(), pflag.ContinueOnError)), commonerrors.ErrUndefined)
		_, err := LoadConfigurationFromViper[string](nil, prefix)
		errortest.AssertError(t, err, ErrInvalidConfiguration, commonerrors.ErrUndefined)
	})
}
