package notionql

import (
	"bytes"
)

const operatorOr = "or"

// CompoundFilter combines filters with a logical operator. Only disjunction is built here.
type CompoundFilter struct {
	operator string
	filters  []Filter
}

// Or returns a filter matching records that satisfy any of filters.
func Or(filters ...Filter) *CompoundFilter {
	return &CompoundFilter{operator: operatorOr, filters: filters}
}

// Add appends f to the compound filter.
func (c *CompoundFilter) Add(f Filter) *CompoundFilter {
	c.filters = append(c.filters, f)
	return c
}

// Filters returns the combined filters in insertion order.
func (c *CompoundFilter) Filters() []Filter {
	if c == nil {
		return nil
	}
	return c.filters
}

// IsEmpty reports whether the filter has nothing to combine. An empty filter must not be sent:
// it means no server-side filtering is possible.
func (c *CompoundFilter) IsEmpty() bool {
	return c == nil || len(c.filters) == 0
}

func (c *CompoundFilter) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"`)
	buf.WriteString(c.operator)
	buf.WriteString(`":[`)
	for i, f := range c.filters {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := f.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteString(`]}`)
	return buf.Bytes(), nil
}

func (c *CompoundFilter) String() string {
	return filterString(c)
}
