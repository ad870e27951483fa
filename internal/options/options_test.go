package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// chartConfig mimics the option targets used by the real packages.
type chartConfig struct {
	Bins   int
	Width  int
	Strict bool
	Title  string
}

func withBins(n int) Option[*chartConfig] {
	return New(func(c *chartConfig) error {
		if n < 1 {
			return errors.New("bins must be at least 1")
		}
		c.Bins = n

		return nil
	})
}

func withWidth(w int) Option[*chartConfig] {
	return NoError(func(c *chartConfig) {
		c.Width = w
	})
}

func withStrict() Option[*chartConfig] {
	return NoError(func(c *chartConfig) {
		c.Strict = true
	})
}

func TestOption_New(t *testing.T) {
	t.Run("applies a valid setting", func(t *testing.T) {
		cfg := &chartConfig{}
		err := withBins(12).apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 12, cfg.Bins)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		cfg := &chartConfig{}
		err := withBins(0).apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "bins must be at least 1")
		require.Zero(t, cfg.Bins)
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &chartConfig{}

	require.NoError(t, withWidth(80).apply(cfg))
	require.Equal(t, 80, cfg.Width)

	require.NoError(t, withStrict().apply(cfg))
	require.True(t, cfg.Strict)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &chartConfig{}
		err := Apply(cfg, withBins(5), withWidth(60), withStrict())
		require.NoError(t, err)
		require.Equal(t, &chartConfig{Bins: 5, Width: 60, Strict: true}, cfg)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := &chartConfig{}
		err := Apply(cfg, withWidth(60), withWidth(100))
		require.NoError(t, err)
		require.Equal(t, 100, cfg.Width)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		cfg := &chartConfig{}
		err := Apply(cfg, withWidth(60), withBins(-1), withStrict())
		require.Error(t, err)
		require.Equal(t, 60, cfg.Width)
		require.False(t, cfg.Strict, "options after the failing one must not apply")
	})

	t.Run("accepts no options", func(t *testing.T) {
		cfg := &chartConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, &chartConfig{}, cfg)
	})
}

func TestOption_GenericTargets(t *testing.T) {
	t.Run("works with non-struct targets", func(t *testing.T) {
		var title string
		opt := NoError(func(s *string) {
			*s = "Latency distribution"
		})

		require.NoError(t, Apply(&title, opt))
		require.Equal(t, "Latency distribution", title)
	})
}
