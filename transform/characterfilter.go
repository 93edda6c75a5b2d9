package transform

import "strings"

// CharacterFilter returns a StringTransformFn that drops every rune in
// chars from its input. An empty chars is a no-op: every character is
// kept.
func CharacterFilter(chars string) StringTransformFn {
	return func(in string) (string, error) {
		return strings.Map(func(r rune) rune {
			if strings.ContainsRune(chars, r) {
				return -1
			}
			return r
		}, in), nil
	}
}
