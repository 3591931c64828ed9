package types

import "strings"

// revealChars is how much of a token MaskToken leaves readable.
const revealChars = 4

// MaskToken hides all but the last few characters of a token for display.
func MaskToken(token string) string {
	if len(token) <= revealChars {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-revealChars) + token[len(token)-revealChars:]
}
