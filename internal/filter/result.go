package filter

// Result is a filtered list ready for rendering. Empty is set whenever no
// record matched so that callers show EmptyMessage instead of a blank list.
type Result[T any] struct {
	Items        []T      `json:"items"`
	Total        int      `json:"total"`
	Matched      int      `json:"matched"`
	Criteria     Criteria `json:"criteria"`
	Empty        bool     `json:"empty"`
	EmptyMessage string   `json:"empty_message,omitempty"`
}

// NewResult filters records and wraps the outcome with its empty-state copy.
func NewResult[T any](records []T, schema Schema[T], c Criteria, emptyMessage string) Result[T] {
	items := Apply(records, schema, c)
	res := Result[T]{
		Items:    items,
		Total:    len(records),
		Matched:  len(items),
		Criteria: c,
		Empty:    len(items) == 0,
	}
	if res.Empty {
		res.EmptyMessage = emptyMessage
	}
	return res
}
