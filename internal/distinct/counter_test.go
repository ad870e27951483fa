package distinct

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter_Observe(t *testing.T) {
	t.Run("counts distinct tokens", func(t *testing.T) {
		c := NewCounter()
		c.Observe("alpha")
		c.Observe("beta")
		c.Observe("alpha")
		c.Observe("gamma")
		c.Observe("beta")

		require.Equal(t, 3, c.Count())
	})

	t.Run("empty counter reports zero", func(t *testing.T) {
		require.Zero(t, NewCounter().Count())
	})

	t.Run("distinguishes empty token from absence", func(t *testing.T) {
		c := NewCounter()
		c.Observe("")
		require.Equal(t, 1, c.Count())
	})

	t.Run("handles large token sets", func(t *testing.T) {
		c := NewCounter()
		for i := 0; i < 10000; i++ {
			c.Observe(strconv.Itoa(i))
		}
		// Repeat pass must not change the count.
		for i := 0; i < 10000; i++ {
			c.Observe(strconv.Itoa(i))
		}

		require.Equal(t, 10000, c.Count())
	})
}
