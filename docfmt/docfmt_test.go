package docfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalsanctum/svcgen/generr"
)

func TestFormatSimpleParagraph(t *testing.T) {
	res, err := Format("<p>Retrieves an object from Amazon S3.</p>")
	require.NoError(t, err)
	assert.Equal(t, "Retrieves an object from Amazon S3.", res.Summary)
	assert.Equal(t, "Retrieves an object from Amazon S3.", res.Body)
	assert.Empty(t, res.Links)
}

func TestFormatMultipleParagraphsTakesFirstNonEmptyLine(t *testing.T) {
	res, err := Format("<p>First line.</p><p>Second paragraph.</p>")
	require.NoError(t, err)
	assert.Equal(t, "First line.", res.Summary)
	assert.Contains(t, res.Body, "Second paragraph.")
}

func TestFormatInlineMarkupSubstitution(t *testing.T) {
	res, err := Format("<p>Use <code>GetObject</code> with <i>caution</i> and <b>care</b>.</p>")
	require.NoError(t, err)
	assert.Equal(t, "Use `GetObject` with *caution* and **care**.", res.Summary)
}

func TestFormatExtractsLinks(t *testing.T) {
	res, err := Format(`<p>See <a href="https://example.com/docs">the docs</a> for details.</p>`)
	require.NoError(t, err)
	assert.Equal(t, "See the docs for details.", res.Summary)
	require.Len(t, res.Links, 1)
	assert.Equal(t, "https://example.com/docs", res.Links[0].URL)
	assert.Equal(t, "the docs", res.Links[0].Label)
	assert.Contains(t, res.Body, "@see https://example.com/docs")
}

func TestFormatCollapsesAdjacentTags(t *testing.T) {
	res, err := Format("<p>A</p> <p>B</p>")
	require.NoError(t, err)
	assert.Equal(t, "A", res.Summary)
	assert.Contains(t, res.Body, "B")
}

func TestFormatFailsOnResidualMarkup(t *testing.T) {
	_, err := Format("<p>Has a <div>nested block</div> tag.</p>")
	require.Error(t, err)
	assert.ErrorIs(t, err, generr.ErrUnsupportedDocumentation)

	var ue *generr.UnsupportedDocumentationError
	require.ErrorAs(t, err, &ue)
}

func TestFormatHardWrapsLongText(t *testing.T) {
	long := "word " // 5 chars incl space
	var sb []byte
	for range 40 {
		sb = append(sb, long...)
	}
	res, err := Format("<p>" + string(sb) + "</p>")
	require.NoError(t, err)

	for _, line := range splitLines(res.Body) {
		assert.LessOrEqual(t, len(line), wrapWidth)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
