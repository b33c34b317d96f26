// Package normalize provides input normalization applied before values are
// validated or persisted. Stores call these so the same raw input always
// produces the same stored form, which keeps the unique indexes honest.
package normalize

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Email folds an email address to its canonical comparison form: trimmed,
// lowercased, diacritics removed. Emails are stored and indexed in this
// form, so "Alice@Example.com" and "alice@example.com" are the same account.
func Email(s string) string {
	return text.Fold(strings.TrimSpace(s))
}

// Name trims surrounding whitespace from a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Barcode trims surrounding whitespace from a scanned barcode. Scanner input
// frequently arrives with a trailing newline or padding.
func Barcode(s string) string {
	return strings.TrimSpace(s)
}
