// Package logging builds the zap.Logger every cmd/pprl subcommand uses
// for batch-level diagnostics (entity counts, timing, configuration
// warnings). It is never called from inside bitvec, hashscheme, mask,
// transform, similarity, or stats — those packages stay allocation-light
// and logging-free so a caller embedding this module in a larger service
// can route diagnostics through its own logger instead.
package logging
