package transform

import "fmt"

// AttributePipeline is the resolved transformer chain for one attribute:
// global "before" transformers, then the attribute's own transformers,
// then global "after" transformers, applied in that order.
type AttributePipeline struct {
	Before []StringTransformFn
	Own    []StringTransformFn
	After  []StringTransformFn
}

// Apply runs value through p's full chain, honoring emptyValue at every
// step: EmptyValueError fails immediately on an empty value,
// EmptyValueSkip passes an empty value through a step unchanged, and
// EmptyValueProcess calls every step regardless.
func (p AttributePipeline) Apply(emptyValue EmptyValueHandling, value string) (string, error) {
	var err error
	for _, tf := range p.Before {
		if value, err = applyStep(emptyValue, value, tf); err != nil {
			return "", err
		}
	}
	for _, tf := range p.Own {
		if value, err = applyStep(emptyValue, value, tf); err != nil {
			return "", err
		}
	}
	for _, tf := range p.After {
		if value, err = applyStep(emptyValue, value, tf); err != nil {
			return "", err
		}
	}
	return value, nil
}

func applyStep(emptyValue EmptyValueHandling, value string, tf StringTransformFn) (string, error) {
	if value == "" {
		switch emptyValue {
		case EmptyValueError:
			return "", ErrEmptyValue
		case EmptyValueSkip:
			return value, nil
		case EmptyValueProcess:
			// fall through to calling tf
		}
	}

	out, err := tf(value)
	if err != nil {
		return "", fmt.Errorf("transform: %w", err)
	}
	return out, nil
}
