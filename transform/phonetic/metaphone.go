package phonetic

import "strings"

// metaphone implements a simplified Metaphone: common consonant
// digraphs are folded to their dominant sound, silent letters in known
// positions are dropped, and vowels are kept only at the start of the
// word.
func metaphone(word string) string {
	word = toASCIIUpper(word)
	word = filterAtoZ(word)
	if word == "" {
		return ""
	}

	word = dropInitialSilent(word)
	if word == "" {
		return ""
	}

	var code strings.Builder
	runes := []byte(word)
	n := len(runes)
	lastCode := byte(0)

	for i := 0; i < n; i++ {
		c := runes[i]
		next := byte(0)
		if i+1 < n {
			next = runes[i+1]
		}
		prev := byte(0)
		if i > 0 {
			prev = runes[i-1]
		}

		if isVowel(c) {
			if i == 0 {
				code.WriteByte(c)
				lastCode = 0
			}
			continue
		}

		if c == prev && c != 'C' {
			continue
		}

		var out byte
		switch c {
		case 'B':
			out = 'B'
		case 'C':
			switch {
			case next == 'I' && i+2 < n && runes[i+2] == 'A':
				out = 'X'
			case next == 'H':
				out = 'X'
			case next == 'I' || next == 'E' || next == 'Y':
				out = 'S'
			default:
				out = 'K'
			}
		case 'D':
			if next == 'G' && i+2 < n && (runes[i+2] == 'E' || runes[i+2] == 'Y' || runes[i+2] == 'I') {
				out = 'J'
			} else {
				out = 'T'
			}
		case 'G':
			if next == 'H' {
				out = 'F'
			} else if next == 'N' {
				out = 0
			} else if next == 'I' || next == 'E' || next == 'Y' {
				out = 'J'
			} else {
				out = 'K'
			}
		case 'H':
			if isVowel(prev) && !isVowel(next) {
				out = 0
			} else {
				out = 'H'
			}
		case 'K':
			if prev == 'C' {
				out = 0
			} else {
				out = 'K'
			}
		case 'P':
			if next == 'H' {
				out = 'F'
			} else {
				out = 'P'
			}
		case 'Q':
			out = 'K'
		case 'S':
			if next == 'H' {
				out = 'X'
			} else if next == 'I' && i+2 < n && (runes[i+2] == 'O' || runes[i+2] == 'A') {
				out = 'X'
			} else {
				out = 'S'
			}
		case 'T':
			if next == 'H' {
				out = '0'
			} else if next == 'I' && i+2 < n && (runes[i+2] == 'O' || runes[i+2] == 'A') {
				out = 'X'
			} else {
				out = 'T'
			}
		case 'V':
			out = 'F'
		case 'W', 'Y':
			if isVowel(next) {
				out = c
			} else {
				out = 0
			}
		case 'X':
			code.WriteString("KS")
			lastCode = 'S'
			continue
		case 'Z':
			out = 'S'
		case 'F', 'J', 'L', 'M', 'N', 'R':
			out = c
		default:
			out = 0
		}

		if out != 0 && out != lastCode {
			code.WriteByte(out)
		}
		lastCode = out
	}

	return code.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}

func dropInitialSilent(word string) string {
	switch {
	case strings.HasPrefix(word, "KN"), strings.HasPrefix(word, "GN"),
		strings.HasPrefix(word, "PN"), strings.HasPrefix(word, "AE"),
		strings.HasPrefix(word, "WR"):
		return word[1:]
	case strings.HasPrefix(word, "X"):
		return "S" + word[1:]
	case strings.HasPrefix(word, "WH"):
		return "W" + word[2:]
	default:
		return word
	}
}
