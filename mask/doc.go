package mask

/*

# Masking engine

This package turns a transformed entity's attribute values into a single
Bloom-filter-style bit vector, following one of three strategies:

  - CLK: every attribute's tokens are hashed into one shared filter with
    one shared k.
  - RBF: every attribute gets its own independently-sized sub-filter;
    the sub-filters are then sampled, proportionally to attribute
    weight, into one parent filter.
  - CLK-RBF: like CLK (one shared filter), but each attribute gets its
    own effective k computed from its weight.

Configuration is modeled as a handful of small tagged-union-style
structs (FilterSpec, HardenerConfig) rather than a type hierarchy,
mirroring this module's data-model convention.

After the filter is assembled, a configured chain of hardeners (see
harden.go) is applied once, in declared order, before the result is
returned. Every seeded operation in this package and its hardeners —
random_hash position sampling, RBF parent-filter sampling,
randomized_response, permute, rehash — draws from Go's math/rand,
seeded deterministically from the entity's digest or a configured seed.
This is the one fixed PRNG algorithm this module commits to: reproducing
a masking run bit-for-bit requires the same Go toolchain's math/rand
implementation, not just the same seeds.

*/
