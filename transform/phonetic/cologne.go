package phonetic

import (
	"strings"
)

// cologne implements Kölner Phonetik, a German-language phonetic code.
// It is the one algorithm in this package without a standard-library or
// pack equivalent, so it is ported directly from its canonical
// definition: every letter maps to a digit based on its immediate
// neighbors, consecutive duplicate digits collapse to one, and every "0"
// after the first character is dropped.
func cologne(word string) string {
	word = toASCIIUpper(word)
	word = filterAtoZ(word)
	if word == "" {
		return ""
	}

	var raw strings.Builder
	for i := 0; i < len(word); i++ {
		prev, this, next := charContext(word, i)
		raw.WriteString(codeForChar(i, prev, this, next))
	}

	rawCode := raw.String()

	var collapsed strings.Builder
	lastChar := byte(0)
	for i := 0; i < len(rawCode); i++ {
		c := rawCode[i]
		if c == lastChar {
			continue
		}
		collapsed.WriteByte(c)
		lastChar = c
	}

	code := collapsed.String()
	if code == "" {
		return ""
	}

	out := strings.Builder{}
	out.WriteByte(code[0])
	for i := 1; i < len(code); i++ {
		if code[i] != '0' {
			out.WriteByte(code[i])
		}
	}
	return out.String()
}

const padChar = '#'

func charContext(word string, idx int) (prev, this, next byte) {
	prev, this, next = padChar, padChar, padChar
	if idx-1 >= 0 && idx-1 < len(word) {
		prev = word[idx-1]
	}
	if idx >= 0 && idx < len(word) {
		this = word[idx]
	}
	if idx+1 < len(word) {
		next = word[idx+1]
	}
	return
}

func inSet(c byte, set string) bool {
	return strings.IndexByte(set, c) >= 0
}

func codeForChar(idx int, prev, this, next byte) string {
	switch {
	case inSet(this, "AEIJOUY"):
		return "0"
	case this == 'B':
		return "1"
	case this == 'P':
		if next == 'H' {
			return "3"
		}
		return "1"
	case inSet(this, "DT"):
		if inSet(next, "CSZ") {
			return "8"
		}
		return "2"
	case inSet(this, "FVW"):
		return "3"
	case inSet(this, "GKQ"):
		return "4"
	case this == 'C':
		if idx == 0 {
			if inSet(next, "AHKLOQRUX") {
				return "4"
			}
			return "8"
		}
		if inSet(prev, "SZ") {
			return "8"
		}
		if inSet(next, "AHKOQUX") {
			return "4"
		}
		return "8"
	case this == 'X':
		if inSet(prev, "CKQ") {
			return "8"
		}
		return "48"
	case this == 'L':
		return "5"
	case inSet(this, "MN"):
		return "6"
	case this == 'R':
		return "7"
	case inSet(this, "SZ"):
		return "8"
	default:
		return ""
	}
}
