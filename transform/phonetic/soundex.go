package phonetic

// soundex implements the classic American Soundex algorithm: a letter
// followed by three digits, where consecutive letters in the same
// soundex group collapse to a single digit and vowels (plus H, W, Y)
// are dropped.
func soundex(word string) string {
	word = toASCIIUpper(word)
	word = filterAtoZ(word)
	if word == "" {
		return ""
	}

	code := make([]byte, 0, 4)
	code = append(code, word[0])

	lastDigit := soundexDigit(word[0])
	for i := 1; i < len(word) && len(code) < 4; i++ {
		d := soundexDigit(word[i])
		if d == 0 {
			lastDigit = 0
			continue
		}
		if d != lastDigit {
			code = append(code, '0'+d)
		}
		lastDigit = d
	}

	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

func soundexDigit(c byte) byte {
	switch c {
	case 'B', 'F', 'P', 'V':
		return 1
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return 2
	case 'D', 'T':
		return 3
	case 'L':
		return 4
	case 'M', 'N':
		return 5
	case 'R':
		return 6
	default:
		return 0
	}
}

// refinedSoundex implements Refined Soundex, a variant with a finer
// 10-symbol grouping and no fixed output length.
func refinedSoundex(word string) string {
	word = toASCIIUpper(word)
	word = filterAtoZ(word)
	if word == "" {
		return ""
	}

	code := make([]byte, 0, len(word)+1)
	code = append(code, word[0])

	lastDigit := refinedSoundexDigit(word[0])
	for i := 1; i < len(word); i++ {
		d := refinedSoundexDigit(word[i])
		if d != 0 && d != lastDigit {
			code = append(code, '0'+d)
		}
		lastDigit = d
	}
	return string(code)
}

func refinedSoundexDigit(c byte) byte {
	switch c {
	case 'B', 'P':
		return 1
	case 'F', 'V':
		return 2
	case 'C', 'K', 'S':
		return 3
	case 'G', 'J':
		return 4
	case 'Q', 'X', 'Z':
		return 5
	case 'D', 'T':
		return 6
	case 'L':
		return 7
	case 'M', 'N':
		return 8
	case 'R':
		return 9
	default:
		return 0
	}
}

// fuzzySoundex implements Fuzzy Soundex, which re-maps several digraphs
// before falling back to Soundex-style digit grouping, intended to
// tolerate a broader range of common misspellings than classic Soundex.
func fuzzySoundex(word string) string {
	word = toASCIIUpper(word)
	word = filterAtoZ(word)
	word = applyFuzzySoundexDigraphs(word)
	if word == "" {
		return ""
	}

	code := make([]byte, 0, 4)
	code = append(code, word[0])

	lastDigit := fuzzySoundexDigit(word[0])
	for i := 1; i < len(word) && len(code) < 4; i++ {
		d := fuzzySoundexDigit(word[i])
		if d == 0 {
			lastDigit = 0
			continue
		}
		if d != lastDigit {
			code = append(code, '0'+d)
		}
		lastDigit = d
	}

	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

var fuzzySoundexDigraphs = [][2]string{
	{"KN", "N"}, {"PH", "FF"}, {"WR", "R"}, {"GH", "H"},
	{"CK", "K"}, {"SCH", "SSS"}, {"CZ", "S"},
}

func applyFuzzySoundexDigraphs(word string) string {
	for _, pair := range fuzzySoundexDigraphs {
		word = replaceAll(word, pair[0], pair[1])
	}
	return word
}

func replaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if i+len(old) <= len(s) && s[i:i+len(old)] == old {
			out = append(out, new...)
			i += len(old)
			continue
		}
		out = append(out, s[i])
		i++
	}
	return string(out)
}

func fuzzySoundexDigit(c byte) byte {
	switch c {
	case 'B', 'P', 'F', 'V':
		return 1
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return 2
	case 'D', 'T':
		return 3
	case 'L':
		return 4
	case 'M', 'N':
		return 5
	case 'R':
		return 6
	default:
		return 0
	}
}
