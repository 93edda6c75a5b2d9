package transform

/*

# Value transformation pipeline

This package turns a raw attribute value into the normalized string form
the masking engine tokenizes. Each transformer is a small, composable
StringTransformFn — following the same "small, composable functions"
convention bitvec and hashscheme use — and an AttributePipeline chains them in the
order: global transformers marked "before", then the attribute's own
transformers, then global transformers marked "after".

Six transformer kinds are supported: character_filter, normalization,
number, date_time, mapping, and phonetic_code (delegating to the
transform/phonetic subpackage). Construction of each is driven by a
tagged-union Config value rather than a type hierarchy, matching this
module's data-model convention for discriminated configuration.

*/
