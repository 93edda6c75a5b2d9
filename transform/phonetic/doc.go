package phonetic

/*

# Phonetic codes for fuzzy name matching

This package implements the phonetic algorithms the transform pipeline's
phonetic_code step can select: Soundex, Metaphone, Refined Soundex, Fuzzy
Soundex, and Cologne Phonetics (Kölner Phonetik).

Cologne Phonetics is implemented natively here rather than wrapped from a
third-party library, because no pack dependency or standard-library
package offers it; the rest have well-known public algorithm
descriptions this package follows directly, matching the teacher's own
preference for small, from-scratch, dependency-free primitives over
pulling in an external package for a short, precisely specified
algorithm.

*/
