// Package htmlsanitize strips markup from user-supplied free text.
//
// Usernames, family names, item names, and storage notes are plain text;
// anything that looks like HTML in them is hostile or accidental either way,
// so the strict policy removes it entirely rather than escaping it.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from a free-text field, returning plain text only.
func Text(s string) string {
	return strict.Sanitize(s)
}
