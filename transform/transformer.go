package transform

import "sort"

// New builds the StringTransformFn cfg describes.
func New(cfg Config) (StringTransformFn, error) {
	switch cfg.Kind {
	case KindCharacterFilter:
		return CharacterFilter(cfg.Characters), nil
	case KindNormalization:
		return Normalize(), nil
	case KindNumber:
		return Number(cfg.DecimalPlaces), nil
	case KindDateTime:
		return DateTime(cfg.InputFormat, cfg.OutputFormat), nil
	case KindMapping:
		order := cfg.MappingOrder
		if order == nil {
			order = mappingOrder(cfg.Mapping)
		}
		return Mapping(cfg.Mapping, cfg.DefaultValue, cfg.Inline, order), nil
	case KindPhoneticCode:
		return PhoneticCode(cfg.PhoneticAlgorithm), nil
	default:
		return nil, ErrUnknownKind
	}
}

// mappingOrder produces a stable key order for a mapping table built
// from an unordered Go map. Callers that need the original source-list
// declaration order for overlap resolution should build their Config
// from an explicitly ordered list of pairs and populate cfg.Mapping from
// it; this fallback only guarantees determinism, not fidelity to a
// particular declared order.
func mappingOrder(table map[string]string) []string {
	order := make([]string, 0, len(table))
	for k := range table {
		order = append(order, k)
	}
	sort.Strings(order)
	return order
}
