package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestRegistry_Builtins(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()
	for _, name := range []string{
		validator.RuleRequired,
		validator.RuleAtMost,
		validator.RuleAtLeast,
		validator.RuleLengthEquals,
		validator.RuleCheckLength,
		validator.RuleIsNumeric,
		validator.RuleIsPhone,
		validator.RuleIsEmail,
		validator.RuleMatches,
	} {
		assert.True(t, reg.Has(name), name)
	}

	names := reg.Names()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "isNumeric")

	assert.Empty(t, validator.NewEmptyRegistry().Names())
}

func TestRegistry_Invoke(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()

	t.Run("pass", func(t *testing.T) {
		t.Parallel()
		msg, err := reg.Invoke("atMost", "abc", validator.Args{5})
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("fail", func(t *testing.T) {
		t.Parallel()
		msg, err := reg.Invoke("isNumeric", "abc", nil)
		require.NoError(t, err)
		assert.Equal(t, validator.MsgNumeric, msg)
	})

	t.Run("unknown rule", func(t *testing.T) {
		t.Parallel()
		msg, err := reg.Invoke("fooBar", "abc", nil)
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
		assert.Empty(t, msg)
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("adds a custom rule", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewEmptyRegistry()
		reg.Register("isSeattle", func(value string, _ validator.Args) (string, error) {
			if value == "Seattle" {
				return "", nil
			}
			return "Must be Seattle.", nil
		})

		require.True(t, reg.Has("isSeattle"))
		msg, err := reg.Invoke("isSeattle", "Portland", nil)
		require.NoError(t, err)
		assert.Equal(t, "Must be Seattle.", msg)
	})

	t.Run("overwrites an existing rule", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewRegistry()
		reg.Register("required", func(string, validator.Args) (string, error) {
			return "", nil
		})

		msg, err := reg.Invoke("required", "", validator.Args{true})
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("panics on programmer errors", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewEmptyRegistry()
		assert.Panics(t, func() { reg.Register("", validator.IsNumeric) })
		assert.Panics(t, func() { reg.Register("x", nil) })
	})
}

func TestRegistry_ConcurrentInvoke(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%4 == 0 {
				reg.Register("custom", validator.IsNumeric)
			}
			msg, err := reg.Invoke("checkLength", "abcd", validator.Args{1, 10})
			assert.NoError(t, err)
			assert.Empty(t, msg)
		}()
	}
	wg.Wait()
}
