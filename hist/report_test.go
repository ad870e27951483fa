package hist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/format"
)

func TestBuild(t *testing.T) {
	t.Run("five ascending samples with five bins", func(t *testing.T) {
		report, err := Build([]float64{1, 2, 3, 4, 5}, WithBinCount(5))
		require.NoError(t, err)

		require.Equal(t, format.ModeNumeric, report.Mode)
		require.Equal(t, 5, report.Summary.Count)
		require.Equal(t, 1.0, report.Summary.Min)
		require.Equal(t, 5.0, report.Summary.Max)
		require.InDelta(t, 3.0, report.Summary.Mean, 1e-9)
		require.InDelta(t, math.Sqrt2, report.Summary.StdDev, 1e-9)
		require.InDelta(t, 0.8, report.BinWidth, 1e-9)

		require.Len(t, report.Bins, 5)
		for i, bin := range report.Bins {
			require.Equal(t, 1, bin.Count, "bin %d", i)
		}

		require.Len(t, report.Quantiles, 3)
		require.InDelta(t, 2.0, report.Quantiles[0].Value, 1e-9)
		require.InDelta(t, 3.0, report.Quantiles[1].Value, 1e-9)
		require.InDelta(t, 4.0, report.Quantiles[2].Value, 1e-9)

		require.Zero(t, report.Skipped)
		require.Equal(t, 5, report.Total())
		require.Equal(t, 1, report.MaxCount())
	})

	t.Run("identical samples collapse into the first bin", func(t *testing.T) {
		report, err := Build([]float64{5, 5, 5}, WithBinCount(3))
		require.NoError(t, err)

		require.Zero(t, report.BinWidth)
		require.Equal(t, 3, report.Bins[0].Count)
		require.Equal(t, 0, report.Bins[1].Count)
		require.Equal(t, 0, report.Bins[2].Count)
		require.Equal(t, 3, report.MaxCount())

		for _, q := range report.Quantiles {
			require.Equal(t, 5.0, q.Value)
		}
	})

	t.Run("bin count is derived when not configured", func(t *testing.T) {
		samples := make([]float64, 100)
		for i := range samples {
			samples[i] = float64(i)
		}

		report, err := Build(samples)
		require.NoError(t, err)
		require.Len(t, report.Bins, 10) // ceil(sqrt(100))
	})

	t.Run("invalid bin count wins over empty input", func(t *testing.T) {
		_, err := Build(nil, WithBinCount(0))
		require.ErrorIs(t, err, errs.ErrInvalidBinCount)
		require.NotErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("empty input fails with ErrEmptyInput", func(t *testing.T) {
		_, err := Build(nil)
		require.ErrorIs(t, err, errs.ErrEmptyInput)

		_, err = Build([]float64{})
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("invalid quantile is rejected", func(t *testing.T) {
		_, err := Build([]float64{1, 2}, WithQuantiles([]float64{0.5, 1.5}))
		require.ErrorIs(t, err, errs.ErrInvalidQuantile)
	})

	t.Run("empty quantile list disables the table", func(t *testing.T) {
		report, err := Build([]float64{1, 2, 3}, WithQuantiles(nil))
		require.NoError(t, err)
		require.Empty(t, report.Quantiles)
	})

	t.Run("reader metadata is carried through", func(t *testing.T) {
		report, err := Build([]float64{1, 2, 3}, WithSkipped(4), WithDistinct(3))
		require.NoError(t, err)
		require.Equal(t, 4, report.Skipped)
		require.Equal(t, 3, report.Distinct)
	})
}

func TestAutoBinCount(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{10, 4},   // ceil(3.16)
		{100, 10},
		{399, 20}, // ceil(19.97)
		{400, 20},
		{401, 20}, // capped
		{1_000_000, 20},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, AutoBinCount(tc.n), "n=%d", tc.n)
	}
}

func TestBuildCategory(t *testing.T) {
	t.Run("groups tokens ascending by count", func(t *testing.T) {
		tokens := []string{"GET", "POST", "GET", "GET", "PUT", "POST"}

		report, err := BuildCategory(tokens, WithSkipped(1))
		require.NoError(t, err)

		require.Equal(t, format.ModeCategory, report.Mode)
		require.Equal(t, []Category{
			{Label: "PUT", Count: 1},
			{Label: "POST", Count: 2},
			{Label: "GET", Count: 3},
		}, report.Categories)
		require.Equal(t, 6, report.Total())
		require.Equal(t, 3, report.MaxCount())
		require.Equal(t, 3, report.Distinct)
		require.Equal(t, 1, report.Skipped)
		require.Empty(t, report.Bins)
	})

	t.Run("empty tokens fail with ErrEmptyInput", func(t *testing.T) {
		_, err := BuildCategory(nil)
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})
}
