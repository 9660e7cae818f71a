package services

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	headingPattern    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	markerPattern     = regexp.MustCompile("[*_~`]+")
	emojiPattern      = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2190}-\x{27BF}\x{2B00}-\x{2BFF}\x{FE00}-\x{FE0F}]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeMessage strips markup noise from a chat message before it is
// forwarded to the interpretation model: HTML-like tags, markdown
// heading/emphasis/code markers, a broad emoji and symbol range, and
// whitespace runs. The transform is lossy and irreversible; the
// sanitized copy is only for the upstream prompt, never for display.
func SanitizeMessage(content string) string {
	content = htmlTagPattern.ReplaceAllString(content, "")
	content = headingPattern.ReplaceAllString(content, "")
	content = markerPattern.ReplaceAllString(content, "")
	content = emojiPattern.ReplaceAllString(content, "")
	content = whitespacePattern.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}
