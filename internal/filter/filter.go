// Package filter narrows static record lists by a free-text query and
// exact-match enum criteria. It is shared by the cases, tips and alerts
// views.
package filter

import (
	"net/url"
	"strings"
)

// All is the enum sentinel that matches every value.
const All = "all"

// Criteria is the set of predicates applied to a list. An empty query and
// an empty or "all" enum value match everything for that dimension. Values
// are used verbatim: whitespace is part of the query and the sentinel is
// the exact lower-case "all".
type Criteria struct {
	Query string            `json:"query"`
	Enums map[string]string `json:"enums,omitempty"`
}

// Schema configures how criteria map onto a record type.
type Schema[T any] struct {
	// Search lists the fields the text query is matched against.
	Search []func(T) string
	// Enums maps an enum dimension name to the field it compares.
	Enums map[string]func(T) string
}

// FromQuery reads the text query from key "q" and every enum dimension of
// the schema from the parameter of the same name.
func FromQuery[T any](values url.Values, schema Schema[T]) Criteria {
	c := Criteria{Query: values.Get("q")}
	for name := range schema.Enums {
		if v := values.Get(name); v != "" {
			if c.Enums == nil {
				c.Enums = make(map[string]string, len(schema.Enums))
			}
			c.Enums[name] = v
		}
	}
	return c
}

// Apply returns the records that satisfy every active predicate, in their
// original order. The input is never modified and the result never aliases it.
func Apply[T any](records []T, schema Schema[T], c Criteria) []T {
	query := strings.ToLower(c.Query)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if !matchesQuery(rec, schema.Search, query) {
			continue
		}
		if !matchesEnums(rec, schema.Enums, c.Enums) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesQuery[T any](rec T, fields []func(T) string, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(rec)), query) {
			return true
		}
	}
	return false
}

func matchesEnums[T any](rec T, fields map[string]func(T) string, want map[string]string) bool {
	for name, value := range want {
		if value == "" || value == All {
			continue
		}
		field, ok := fields[name]
		if !ok {
			continue
		}
		if field(rec) != value {
			return false
		}
	}
	return true
}
