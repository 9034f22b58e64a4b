package emoji

import (
	"fmt"
	"strings"
)

// UnicodeForChar converts a single UTF-8 encoded character into its hex
// codepoint representation: each codepoint is rendered as 8 lowercase hex
// digits (UTF-32 width), the blocks are concatenated, and leading '0'
// characters are stripped from the whole string.
//
// For a single codepoint this yields the familiar short form ("😀" ->
// "1f600"). For multi-codepoint graphemes (flags, skin tones, ZWJ
// sequences) the interior padding of every block after the first survives
// ("🇺🇸" -> "1f1fa0001f1f8"), which does not match the separator form most
// datasets use for those sequences. Consumers of generated URLs depend on
// this exact output, so it is preserved as-is.
func UnicodeForChar(char string) string {
	var b strings.Builder
	for _, r := range char {
		fmt.Fprintf(&b, "%08x", r)
	}
	return strings.TrimLeft(b.String(), "0")
}
