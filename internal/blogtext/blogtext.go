// Package blogtext holds the pure string helpers used when storing a blog:
// slug, excerpt and estimated reading time.
package blogtext

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	excerptMaxLen  = 200
	wordsPerMinute = 200
	slugMaxLen     = 80
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Slugify lowercases the title and collapses everything that is not a
// letter or digit into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > slugMaxLen {
		slug = strings.Trim(slug[:slugMaxLen], "-")
	}
	return slug
}

// StripTags removes HTML tags and collapses whitespace.
func StripTags(html string) string {
	text := tagPattern.ReplaceAllString(html, " ")
	return strings.Join(strings.Fields(text), " ")
}

// Excerpt returns a short plain-text preview of the content, cut at a word
// boundary.
func Excerpt(content string) string {
	text := StripTags(content)
	if len(text) <= excerptMaxLen {
		return text
	}

	cut := text[:excerptMaxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}

// ReadTime estimates reading time in minutes, never below 1.
func ReadTime(content string) int {
	words := len(strings.Fields(StripTags(content)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
