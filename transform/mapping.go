package transform

import (
	"fmt"
	"sort"
	"strings"
)

type mappingReplacement struct {
	index  int
	source string
	target string
}

// Mapping returns a StringTransformFn that looks values up in table.
//
// In its default (non-inline) form, the whole input string must appear
// as a key in table; if it doesn't, defaultValue is used when non-nil,
// otherwise the transform fails with ErrNoMapping.
//
// In inline form, every (source, target) pair in table is treated as a
// find-and-replace applied to substrings of the input, with sources
// searched in the order given by order; a source string occurring more than once is replaced
// at every occurrence. If two replacements would cover overlapping
// spans of the input, the transform fails with ErrMappingOverlap rather
// than picking a winner — order is used only as the candidate
// search order, not as a priority for resolving conflicts.
func Mapping(table map[string]string, defaultValue *string, inline bool, order []string) StringTransformFn {
	if inline {
		return mappingInline(table, order)
	}
	return mappingDefault(table, defaultValue)
}

func mappingDefault(table map[string]string, defaultValue *string) StringTransformFn {
	return func(in string) (string, error) {
		if out, ok := table[in]; ok {
			return out, nil
		}
		if defaultValue != nil {
			return *defaultValue, nil
		}
		return "", fmt.Errorf("%w: %q", ErrNoMapping, in)
	}
}

func mappingInline(table map[string]string, order []string) StringTransformFn {
	return func(in string) (string, error) {
		claimed := make([]bool, len(in))
		var pending []mappingReplacement

		for _, source := range order {
			target := table[source]
			sourceLen := len(source)
			if sourceLen == 0 {
				continue
			}

			searchFrom := 0
			for {
				i := strings.Index(in[searchFrom:], source)
				if i == -1 {
					break
				}
				i += searchFrom

				for j := i; j < i+sourceLen; j++ {
					if claimed[j] {
						return "", fmt.Errorf(
							"%w: replacement of %q with %q at index %d",
							ErrMappingOverlap, source, target, i,
						)
					}
				}
				for j := i; j < i+sourceLen; j++ {
					claimed[j] = true
				}
				pending = append(pending, mappingReplacement{index: i, source: source, target: target})

				searchFrom = i + 1
			}
		}

		if len(pending) == 0 {
			return in, nil
		}

		sort.Slice(pending, func(i, j int) bool { return pending[i].index < pending[j].index })

		var out strings.Builder
		cursor := 0
		for _, r := range pending {
			out.WriteString(in[cursor:r.index])
			out.WriteString(r.target)
			cursor = r.index + len(r.source)
		}
		out.WriteString(in[cursor:])

		return out.String(), nil
	}
}
