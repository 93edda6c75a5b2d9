package transform

import "strconv"

// Number returns a StringTransformFn that parses its input as a
// floating-point number and reformats it with exactly decimalPlaces
// digits after the point. Go's strconv.FormatFloat rounds
// half-to-even at the binary-to-decimal boundary, matching this
// module's rounding convention.
func Number(decimalPlaces int) StringTransformFn {
	return func(in string) (string, error) {
		f, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'f', decimalPlaces, 64), nil
	}
}
