package array

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// FromJSON builds an array from a JSON array of integers such as [1, 2, 3].
// The array gets max(len(values), DefaultCapacity) slots, so seeding never
// triggers a growth.
func FromJSON(label string, data []byte, config *Config) (*Array, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing values of %q: %w", label, err)
	}

	items, err := v.Array()
	if err != nil {
		return nil, fmt.Errorf("values of %q: %w", label, err)
	}

	values := make([]int, 0, len(items))
	for i, item := range items {
		n, err := item.Int()
		if err != nil {
			return nil, fmt.Errorf("values of %q: element %d: %w", label, i, err)
		}
		values = append(values, n)
	}

	a := NewArray(label, max(len(values), DefaultCapacity), config)
	for _, n := range values {
		a.Append(n)
	}
	return a, nil
}
