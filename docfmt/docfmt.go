package docfmt

import (
	"regexp"
	"strings"

	"github.com/digitalsanctum/svcgen/generr"
)

// wrapWidth is the hard-wrap column for multi-line output (spec §4.3 step 6).
const wrapWidth = 117

// Link is one extracted `<a href="URL">LABEL</a>` reference.
type Link struct {
	URL   string
	Label string
}

// Result is the output of [Format].
type Result struct {
	// Summary is the first non-empty line of the formatted text, suitable
	// as a single-line description.
	Summary string

	// Body is the full formatted text, hard-wrapped at column 117 with an
	// `@see URL` line appended for every extracted Link.
	Body string

	// Links are the anchor references extracted from the input, in
	// document order.
	Links []Link
}

var (
	codeRe   = regexp.MustCompile(`(?s)<code>(.*?)</code>`)
	italicRe = regexp.MustCompile(`(?s)<i>(.*?)</i>`)
	boldRe   = regexp.MustCompile(`(?s)<b>(.*?)</b>`)
	anchorRe = regexp.MustCompile(`(?s)<a href="([^"]*)">(.*?)</a>`)
	bareARe  = regexp.MustCompile(`(?i)</?a>`)
)

// Format converts html into plain text per the contract in spec §4.3. It
// returns a *generr.UnsupportedDocumentationError (wrapping
// generr.ErrUnsupportedDocumentation) if markup survives stripping.
func Format(html string) (Result, error) {
	text := strings.ReplaceAll(html, "> <", "><")
	text = strings.ReplaceAll(text, "<p>", "")
	text = strings.ReplaceAll(text, "</p>", "\n")

	text = codeRe.ReplaceAllString(text, "`$1`")
	text = italicRe.ReplaceAllString(text, "*$1*")
	text = boldRe.ReplaceAllString(text, "**$1**")

	var links []Link
	text = anchorRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := anchorRe.FindStringSubmatch(match)
		links = append(links, Link{URL: sub[1], Label: sub[2]})
		return sub[2]
	})
	text = bareARe.ReplaceAllString(text, "")

	if idx := strings.IndexByte(text, '<'); idx >= 0 {
		return Result{}, generr.NewUnsupportedDocumentationError(residualFragment(text, idx))
	}

	return Result{
		Summary: firstNonEmptyLine(text),
		Body:    appendSeeLines(wrap(text, wrapWidth), links),
		Links:   links,
	}, nil
}

// residualFragment returns a short snippet around the first unconsumed '<'
// for inclusion in the error message.
func residualFragment(text string, at int) string {
	const radius = 30
	start := max(at-radius, 0)
	end := min(at+radius, len(text))
	return text[start:end]
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func appendSeeLines(body string, links []Link) string {
	if len(links) == 0 {
		return body
	}
	var b strings.Builder
	b.WriteString(body)
	for _, l := range links {
		b.WriteString("\n@see ")
		b.WriteString(l.URL)
	}
	return b.String()
}

// wrap hard-wraps text at width columns, treating each "\n"-delimited line
// of the input as an independent paragraph.
func wrap(text string, width int) string {
	paragraphs := strings.Split(text, "\n")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, wrapParagraph(p, width)...)
	}
	return strings.Join(lines, "\n")
}

func wrapParagraph(p string, width int) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			out = append(out, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(out, line)
}
