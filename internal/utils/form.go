package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// ParseBoolFlag reports whether a form value is exactly "true".
// Empty, absent and any other text are false.
func ParseBoolFlag(text string) bool {
	return text == "true"
}

// SanitizeFilename reduces name to a flat ASCII filename safe to use as a
// storage key. Path separators become word breaks, whitespace runs become a
// single underscore, anything outside [A-Za-z0-9_.-] is dropped and leading or
// trailing dots and underscores are trimmed. The result may be empty.
func SanitizeFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range decomposed {
		switch {
		case r == '/' || r == '\\':
			b.WriteByte(' ')
		case r < 0x80:
			b.WriteRune(r)
		}
	}

	joined := strings.Join(strings.Fields(b.String()), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(joined, ""), "._")
}

// UploadFilename sanitizes name and falls back to a random name when nothing
// usable is left.
func UploadFilename(name string) string {
	if safe := SanitizeFilename(name); safe != "" {
		return safe
	}
	return uuid.New().String()
}
