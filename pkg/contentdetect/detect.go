// Package contentdetect classifies review input as HTML, Markdown, or
// plain text. It uses fast structural patterns first and falls back to
// go-enry's classifier for ambiguous content.
package contentdetect

import (
	"bytes"
	"regexp"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the detected content kind.
type Kind string

// Content kinds.
const (
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
	KindText     Kind = "text"
)

// String returns the kind as a plain string.
func (k Kind) String() string {
	return string(k)
}

var (
	htmlTagRe       = regexp.MustCompile(`(?i)<(?:html|head|body|div|p|h[1-6]|a|img|ul|ol|li|table|span|section|article)\b`)
	mdHeadingRe     = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	mdLinkRe        = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
	mdListRe        = regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)
	mdEmphasisRe    = regexp.MustCompile(`(?m)\*\*[^*\n]+\*\*|__[^_\n]+__`)
	mdCodeFenceRe   = regexp.MustCompile("(?m)^```")
	mdFrontmatterRe = regexp.MustCompile(`(?m)\A---\n`)
)

// Detect returns the content kind for the given document.
// Returns "text" when nothing structural is found.
func Detect(content []byte) Kind {
	if len(bytes.TrimSpace(content)) == 0 {
		return KindText
	}

	// Strategy 1: unambiguous structural markers.
	if kind := detectByPattern(content); kind != "" {
		return kind
	}

	// Strategy 2: classifier with the kinds we care about.
	candidates := []string{"HTML", "Markdown", "Text"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		switch lang {
		case "HTML":
			return KindHTML
		case "Markdown":
			return KindMarkdown
		}
	}

	return KindText
}

// detectByPattern checks for markers that are highly indicative on
// their own. HTML wins over Markdown for mixed documents since HTML
// pages routinely embed Markdown-looking prose.
func detectByPattern(content []byte) Kind {
	trimmed := bytes.TrimSpace(content)
	lowerTrimmed := bytes.ToLower(trimmed)

	if bytes.HasPrefix(lowerTrimmed, []byte("<!doctype html")) ||
		bytes.HasPrefix(lowerTrimmed, []byte("<html")) {
		return KindHTML
	}
	if htmlTagRe.Match(trimmed) {
		return KindHTML
	}

	markdownHints := 0
	for _, re := range []*regexp.Regexp{
		mdHeadingRe, mdLinkRe, mdListRe, mdEmphasisRe, mdCodeFenceRe, mdFrontmatterRe,
	} {
		if re.Match(trimmed) {
			markdownHints++
		}
	}
	if markdownHints >= 1 && mdHeadingRe.Match(trimmed) {
		return KindMarkdown
	}
	if markdownHints >= 2 {
		return KindMarkdown
	}

	return ""
}
