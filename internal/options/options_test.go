package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	degree   int
	name     string
	lastCall string
}

func (tc *testConfig) setDegree(d int) error {
	if d < 2 {
		return errors.New("degree must be at least 2")
	}
	tc.degree = d
	tc.lastCall = "setDegree"

	return nil
}

func (tc *testConfig) setName(name string) {
	tc.name = name
	tc.lastCall = "setName"
}

func TestOption_New(t *testing.T) {
	config := &testConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *testConfig) error {
			return c.setDegree(32)
		})

		err := opt.apply(config)
		require.NoError(t, err)
		require.Equal(t, 32, config.degree)
		require.Equal(t, "setDegree", config.lastCall)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *testConfig) error {
			return c.setDegree(1)
		})

		err := opt.apply(config)
		require.Error(t, err)
		require.Contains(t, err.Error(), "degree must be at least 2")
	})
}

func TestOption_NoError(t *testing.T) {
	config := &testConfig{}

	opt := NoError(func(c *testConfig) {
		c.setName("test")
	})

	err := opt.apply(config)
	require.NoError(t, err)
	require.Equal(t, "test", config.name)
	require.Equal(t, "setName", config.lastCall)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		config := &testConfig{}

		err := Apply(config,
			New(func(c *testConfig) error { return c.setDegree(8) }),
			NoError(func(c *testConfig) { c.setName("test") }),
		)
		require.NoError(t, err)
		require.Equal(t, 8, config.degree)
		require.Equal(t, "test", config.name)
		require.Equal(t, "setName", config.lastCall)
	})

	t.Run("stops at first error and returns it", func(t *testing.T) {
		config := &testConfig{}

		err := Apply(config,
			New(func(c *testConfig) error { return c.setDegree(4) }),
			New(func(c *testConfig) error { return c.setDegree(0) }),
			NoError(func(c *testConfig) { c.setName("should not be set") }),
		)
		require.Error(t, err)
		require.Equal(t, 4, config.degree)
		require.Equal(t, "", config.name)
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		config := &testConfig{}
		err := Apply(config)
		require.NoError(t, err)
		require.Equal(t, 0, config.degree)
	})
}
