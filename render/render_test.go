package render_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shieldchart/figure"
	"github.com/katalvlaran/shieldchart/render"
	"github.com/katalvlaran/shieldchart/shield"
)

func build(t *testing.T, a, b, c, d figure.Figure) shield.Shield {
	t.Helper()
	s, err := shield.Build([4]figure.Figure{a, b, c, d})
	require.NoError(t, err)

	return s
}

// evenRows counts the clear bits across the whole chart: one stroke each.
func evenRows(s shield.Shield) int {
	n := 0
	for _, f := range s.Chart {
		for row := 0; row < figure.Rows; row++ {
			if f.Bit(row) == 0 {
				n++
			}
		}
	}

	return n
}

func TestSVG_WorkedExample(t *testing.T) {
	s := build(t, 1, 2, 4, 8)
	doc := render.SVG(s)

	assert.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.True(t, strings.HasSuffix(doc, `</svg>`))
	assert.Equal(t, 1, strings.Count(doc, `<g fill="none" stroke="#ccc">`))
	assert.Equal(t, len(s.Members()), strings.Count(doc, "<circle "))
	assert.Equal(t, evenRows(s), strings.Count(doc, "h11l-1 2h-11"))
	assert.Contains(t, doc, `fill="#d22"`)

	// House 0 sits at (7.57, 50); its circle is centred 10 units further in.
	assert.Contains(t, doc, `<circle cx="17.57" cy="60" r="10"/>`)
}

func TestSVG_NoPartitions(t *testing.T) {
	// One of the two inputs whose chart links no houses at all.
	s := build(t, 1, 3, 10, 7)
	require.Empty(t, s.Partitions)
	doc := render.SVG(s)
	assert.NotContains(t, doc, "<g ")
	assert.NotContains(t, doc, "<circle")
}

func TestSVG_AllZeroHasNoDots(t *testing.T) {
	s := build(t, 0, 0, 0, 0)
	doc := render.SVG(s)
	assert.NotContains(t, doc, `fill="#d22"`)
	assert.Equal(t, 15, strings.Count(doc, "<circle "))
	assert.Equal(t, 15*figure.Rows, strings.Count(doc, "h11l-1 2h-11"))
}

func TestSVG_DotRuns(t *testing.T) {
	// Mothers 15,15,15,15: every house is 15 or 0; each 15 is one run of four dots.
	s := build(t, 15, 15, 15, 15)
	doc := render.SVG(s)

	fifteen := 0
	for _, f := range s.Chart {
		if f == 15 {
			fifteen++
		}
	}
	assert.Equal(t, fifteen, strings.Count(doc, "l2 2-4 4 4 4-4 4 2 2 2-2-4-4 4-4-4-4"))
}

func TestSVG_Deterministic(t *testing.T) {
	s := build(t, 9, 4, 13, 2)
	assert.Equal(t, render.SVG(s), render.SVG(s))
}

func TestEncode_Formats(t *testing.T) {
	s := build(t, 1, 2, 4, 8)

	var plain bytes.Buffer
	require.NoError(t, render.Encode(&plain, s, render.FormatSVG))
	assert.Equal(t, render.SVG(s), plain.String())

	var packed bytes.Buffer
	require.NoError(t, render.Encode(&packed, s, render.FormatSVGZ))
	zr, err := gzip.NewReader(&packed)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, plain.String(), string(raw))

	err = render.Encode(io.Discard, s, render.Format("png"))
	assert.True(t, errors.Is(err, render.ErrUnknownFormat))
}

func TestParseFormat(t *testing.T) {
	f, err := render.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, render.FormatSVG, f)

	f, err = render.ParseFormat("svgz")
	require.NoError(t, err)
	assert.Equal(t, ".svgz", f.Ext())

	_, err = render.ParseFormat("pdf")
	assert.True(t, errors.Is(err, render.ErrUnknownFormat))
}
