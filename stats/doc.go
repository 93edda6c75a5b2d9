package stats

/*

# Attribute statistics

This package computes the two numbers the RBF and CLK-RBF masking
strategies need per weighted attribute before they can size a sub-filter:
the average number of q-gram tokens a value in that attribute produces,
and the Shannon entropy (in bits) of the pooled q-gram distribution
across all of that attribute's values.

Computing these requires tokenizing every value exactly the way the
masking engine itself will at mask time, so this package shares its
tokenizer with the mask package rather than reimplementing it.

*/
