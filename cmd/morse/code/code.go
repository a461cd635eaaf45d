// Package code converts between plain text and Morse notation.
//
// Conversion never fails: characters without a code are dropped on the way in
// and unknown codes are dropped on the way out, so Decode(Encode(s)) only
// round-trips for lowercase letters, digits and spaces.
package code

import "strings"

// Separator sits between two codes in a Morse string.
const Separator = " "

// Encode lower-cases text and joins the code of every character with a single
// blank. A character outside the table contributes an empty code, leaving two
// adjacent blanks where it was.
func Encode(text string) string {
	var codes []string
	for _, r := range strings.ToLower(text) {
		codes = append(codes, toMorse[r])
	}
	return strings.Join(codes, Separator)
}

// Decode splits morse on blanks and concatenates the character of every code.
// The word separator decodes to a space, unknown codes to nothing.
func Decode(morse string) string {
	var result strings.Builder
	for _, c := range strings.Split(morse, Separator) {
		if r, ok := fromMorse[c]; ok {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// IsBlank reports whether morse holds nothing that would produce a signal.
func IsBlank(morse string) bool {
	return !strings.ContainsAny(morse, ".-")
}
