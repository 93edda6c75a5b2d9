package hashscheme

/*

# Hash schemes for deriving bit positions from a token digest

A masking engine needs, for each token and a target filter of m bits, a
sequence of k bit positions to set. This package implements the four
schemes this module supports — double hashing, enhanced double hashing,
triple hashing, and random hashing — all of them built from the same
digest-destructuring step: the first 16 bytes of a (possibly HMAC-keyed,
possibly multi-stage) cryptographic digest are read as four little-endian
signed 32-bit integers, which are then XOR-combined into the one, two, or
three seed values each scheme needs.

Every scheme reduces its raw position mod the filter size before
returning it — see bitvec's package doc for why: BitVector.Set/Test do
not do this reduction themselves.

*/
