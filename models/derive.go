package models

import (
	"strings"
	"unicode"
)

// wordsPerMinute is the assumed reading speed for the reading-time estimate.
const wordsPerMinute = 200

// ReadingTime estimates minutes-to-read for the given content: word count
// divided by 200, floored, never below one minute. Words are
// whitespace-delimited tokens.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Slugify derives a URL-safe identifier from a human-readable name. Letters
// and digits are lowercased, runs of anything else collapse into a single
// hyphen.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
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
	return strings.TrimSuffix(b.String(), "-")
}
