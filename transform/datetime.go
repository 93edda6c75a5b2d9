package transform

import (
	"strings"
	"time"
)

// strftimeDirectives maps POSIX strftime directive letters to the
// reference-time layout fragment Go's time package expects.
var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'B': "January",
	'b': "Jan",
	'A': "Monday",
	'a': "Mon",
	'Z': "MST",
	'z': "-0700",
}

// toGoLayout translates a POSIX-style "%Y-%m-%d" format string into the
// equivalent Go reference-time layout.
func toGoLayout(posix string) string {
	var sb strings.Builder
	for i := 0; i < len(posix); i++ {
		if posix[i] == '%' && i+1 < len(posix) {
			if layout, ok := strftimeDirectives[posix[i+1]]; ok {
				sb.WriteString(layout)
				i++
				continue
			}
		}
		sb.WriteByte(posix[i])
	}
	return sb.String()
}

// DateTime returns a StringTransformFn that reparses a date/time value
// from inputFormat and rewrites it in outputFormat, both given as
// POSIX-style strftime directive strings.
func DateTime(inputFormat, outputFormat string) StringTransformFn {
	inLayout := toGoLayout(inputFormat)
	outLayout := toGoLayout(outputFormat)

	return func(in string) (string, error) {
		t, err := time.Parse(inLayout, in)
		if err != nil {
			return "", err
		}
		return t.Format(outLayout), nil
	}
}
