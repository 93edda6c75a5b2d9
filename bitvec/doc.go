package bitvec

/*

# Bit-vector primitives for privacy-preserving record linkage

This package provides the primitive building block every other package in
this module is layered on: a fixed-length, byte-aligned bit vector, along
with the set algebra (AND/OR/XOR), popcount, and base64 wire encoding that
Bloom-filter-style encodings need.

It follows the same shape as a Bloom-filter primitives package:

  - small, composable functions
  - explicit byte layouts (big-endian within a byte, bit 0 is the
    most-significant bit of byte 0)
  - a burden of knowledge on the caller for hot paths — Set/Test do not
    wrap or reduce out-of-range indices (only a negative index is
    rejected, with a panic); callers that derive indices
    from a hash (see the hashscheme package) are required to reduce mod
    the vector's length themselves.

## What a BitVector is (and is not)

A BitVector here is not a Bloom filter by itself — it is the bitset a
Bloom-style encoding is built on top of. The masking engine decides which
bits to set; this package only offers the primitives to set, test, and
combine them.

## Wire format

The base64 encoding is a plain byte-for-byte base64 of the underlying
byte slice, with no length header: a length rounded up to a multiple of
8 bits, with the final unused bits always zero. ToBase64 needs no
separate padding step because New already allocates storage this way;
FromBase64 always produces a byte-aligned BitVector (8*len(decoded)
bits) since the partial-byte length the caller originally asked for is
not recoverable from the wire form alone.

*/
