package transform

import "github.com/datatrails/go-pprl/transform/phonetic"

// PhoneticCode returns a StringTransformFn that computes algo's
// phonetic code for its input.
func PhoneticCode(algo phonetic.Algorithm) StringTransformFn {
	return func(in string) (string, error) {
		return phonetic.Code(algo, in)
	}
}
