package stats

import (
	"math"

	"github.com/datatrails/go-pprl/internal/tokenize"
)

// TokenizeWordlist tokenizes every value in wordlist into its q-gram set.
func TokenizeWordlist(wordlist []string, q int, padding rune) []map[string]struct{} {
	out := make([]map[string]struct{}, len(wordlist))
	for i, word := range wordlist {
		out[i] = tokenize.QGrams(word, q, padding)
	}
	return out
}

// AverageTokens returns the mean token-set size across tokenLists. It
// returns 0 for an empty tokenLists, matching the convention of
// avoiding a division by zero rather than reporting NaN.
func AverageTokens(tokenLists []map[string]struct{}) float64 {
	total := 0
	for _, tokens := range tokenLists {
		total += len(tokens)
	}
	if total == 0 {
		return 0
	}
	return float64(total) / float64(len(tokenLists))
}

// CountTokens pools every token-set in tokenLists into one occurrence
// count per distinct token (a token occurring in N of the value's sets
// contributes N to its count, once per value it appears in — not once
// per raw occurrence within the padded string, since tokenization
// already deduplicates within a single value).
func CountTokens(tokenLists []map[string]struct{}) map[string]int {
	counts := make(map[string]int)
	for _, tokens := range tokenLists {
		for token := range tokens {
			counts[token]++
		}
	}
	return counts
}

// NgramEntropy returns the Shannon entropy, in bits, of the empirical
// distribution described by counts.
func NgramEntropy(counts map[string]int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}

	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy += p * math.Log2(p)
	}
	return -entropy
}

// ForWordlist computes both statistics for one attribute's pool of
// (already-transformed) values.
func ForWordlist(wordlist []string, q int, padding rune) AttributeStats {
	tokenLists := TokenizeWordlist(wordlist, q, padding)
	return AttributeStats{
		AverageTokens: AverageTokens(tokenLists),
		NgramEntropy:  NgramEntropy(CountTokens(tokenLists)),
	}
}

// ForAttributes computes statistics for every attribute in
// attributeToWordlist.
func ForAttributes(attributeToWordlist map[string][]string, q int, padding rune) map[string]AttributeStats {
	out := make(map[string]AttributeStats, len(attributeToWordlist))
	for attr, wordlist := range attributeToWordlist {
		out[attr] = ForWordlist(wordlist, q, padding)
	}
	return out
}
