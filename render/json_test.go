package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/histo/hist"
)

func TestJSONRenderer_Render(t *testing.T) {
	t.Run("numeric document shape", func(t *testing.T) {
		report, err := hist.Build([]float64{1, 2, 3, 4, 5},
			hist.WithBinCount(5), hist.WithDistinct(5), hist.WithSkipped(1))
		require.NoError(t, err)

		var buf bytes.Buffer
		r, err := NewJSON(&buf, WithTitle("Latency"))
		require.NoError(t, err)
		require.NoError(t, r.Render(report))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

		require.Equal(t, "Latency", doc["title"])
		require.Equal(t, "numeric", doc["mode"])
		require.EqualValues(t, 1, doc["skipped"])
		require.EqualValues(t, 5, doc["distinct"])
		require.InDelta(t, 0.8, doc["bin_width"], 1e-9)

		summary, ok := doc["summary"].(map[string]any)
		require.True(t, ok)
		require.EqualValues(t, 5, summary["count"])
		require.EqualValues(t, 1, summary["min"])
		require.EqualValues(t, 5, summary["max"])
		require.InDelta(t, 3.0, summary["mean"].(float64), 1e-9)
		require.InDelta(t, 1.4142135, summary["stddev"].(float64), 1e-6)

		bins, ok := doc["bins"].([]any)
		require.True(t, ok)
		require.Len(t, bins, 5)
		first, ok := bins[0].(map[string]any)
		require.True(t, ok)
		require.EqualValues(t, 1, first["lower"])
		require.InDelta(t, 1.8, first["upper"].(float64), 1e-9)
		require.EqualValues(t, 1, first["count"])

		quantiles, ok := doc["quantiles"].([]any)
		require.True(t, ok)
		require.Len(t, quantiles, 3)
		median, ok := quantiles[1].(map[string]any)
		require.True(t, ok)
		require.EqualValues(t, 0.5, median["q"])
		require.EqualValues(t, 3, median["value"])

		require.NotContains(t, doc, "categories")
	})

	t.Run("category document shape", func(t *testing.T) {
		report, err := hist.BuildCategory([]string{"a", "b", "a"})
		require.NoError(t, err)

		var buf bytes.Buffer
		r, err := NewJSON(&buf)
		require.NoError(t, err)
		require.NoError(t, r.Render(report))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

		require.Equal(t, "category", doc["mode"])
		require.NotContains(t, doc, "bins")

		categories, ok := doc["categories"].([]any)
		require.True(t, ok)
		require.Len(t, categories, 2)
		first, ok := categories[0].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "b", first["label"])
		require.EqualValues(t, 1, first["count"])
	})

	t.Run("document is indented and newline terminated", func(t *testing.T) {
		report, err := hist.Build([]float64{1, 2}, hist.WithBinCount(1))
		require.NoError(t, err)

		var buf bytes.Buffer
		r, err := NewJSON(&buf)
		require.NoError(t, err)
		require.NoError(t, r.Render(report))

		out := buf.String()
		require.True(t, strings.HasPrefix(out, "{\n    \"title\""), "got %q", out[:20])
		require.True(t, strings.HasSuffix(out, "}\n"))
	})

	t.Run("default title fills in", func(t *testing.T) {
		report, err := hist.Build([]float64{1, 2}, hist.WithBinCount(1))
		require.NoError(t, err)

		var buf bytes.Buffer
		r, err := NewJSON(&buf)
		require.NoError(t, err)
		require.NoError(t, r.Render(report))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		require.Equal(t, DefaultTitle, doc["title"])
	})
}
