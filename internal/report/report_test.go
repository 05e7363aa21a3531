package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	perrors "github.com/conneroisu/gondola/internal/errors"
	"github.com/conneroisu/gondola/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var results = []puzzle.Result{
	{Day: 3, Title: "Gear Ratios", Part: 1, Answer: 4361, Duration: time.Millisecond},
	{Day: 3, Title: "Gear Ratios", Part: 2, Answer: 467835, Duration: time.Millisecond},
}

func render(t *testing.T, opts Options, res []puzzle.Result) string {
	t.Helper()
	r, err := NewRenderer(opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, res))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "JSON", " yaml ", "html"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, perrors.HasCode(err, perrors.ErrCodeInvalidFormat))

	_, err = NewRenderer(Options{Format: "table"})
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	out := render(t, Options{}, results)
	assert.Equal(t, "--- Day 3: Gear Ratios ---\nDay 3 part 1: 4361\nDay 3 part 2: 467835\n", out)

	grouped := render(t, Options{Format: FormatText, GroupDigits: true}, results)
	assert.Contains(t, grouped, "Day 3 part 1: 4,361")
	assert.Contains(t, grouped, "Day 3 part 2: 467,835")
}

func TestRenderJSON(t *testing.T) {
	out := render(t, Options{Format: FormatJSON, GroupDigits: true}, results)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.EqualValues(t, 4361, decoded[0]["answer"])
	assert.EqualValues(t, 3, decoded[0]["day"])

	assert.Equal(t, "[]\n", render(t, Options{Format: FormatJSON}, nil))
}

func TestRenderYAML(t *testing.T) {
	out := render(t, Options{Format: FormatYAML}, results)

	var decoded []puzzle.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, int64(467835), decoded[1].Answer)
	assert.Equal(t, "Gear Ratios", decoded[1].Title)
}

func TestRenderHTML(t *testing.T) {
	res := []puzzle.Result{{Day: 9, Title: "<script>", Part: 1, Answer: 1234}}
	out := render(t, Options{Format: FormatHTML, GroupDigits: true}, res)

	assert.Contains(t, out, "<table class=\"results\">")
	assert.Contains(t, out, "<td>1,234</td>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestRenderDays(t *testing.T) {
	registry := puzzle.NewRegistry()
	days := []DayInfo{{Day: 1, Title: "Trebuchet?!"}, {Day: 3, Title: "Gear Ratios"}}
	assert.Empty(t, Describe(registry))

	r, err := NewRenderer(Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.RenderDays(context.Background(), &buf, days))
	assert.Equal(t, " 1  Trebuchet?!\n 3  Gear Ratios\n", buf.String())

	r, err = NewRenderer(Options{Format: FormatJSON})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, r.RenderDays(context.Background(), &buf, days))
	var decoded []DayInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, days, decoded)

	r, err = NewRenderer(Options{Format: FormatHTML})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, r.RenderDays(context.Background(), &buf, days))
	assert.Contains(t, buf.String(), "<li>Day 3: Gear Ratios</li>")
}
