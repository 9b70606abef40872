// Package filter evaluates search predicates against entity records.
//
// A filter set matches a record only when every predicate matches
// (logical AND). Values that are numeric on both sides compare
// numerically; everything else compares as exact case-insensitive
// strings. The only structured operators are $gte and $lte; unknown
// operators fall back to equality.
package filter

import (
	"strconv"
	"strings"

	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
)

// Operator is a comparison kind.
type Operator string

const (
	OpEq  Operator = "eq"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
)

// Filter is a single (field, operator, value) predicate.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// FromBody builds a filter set from the structured request form:
//
//	{"filters": {"brand": "Toyota", "year": {"$gte": 2020}}}
//
// Object values contribute one predicate per operator key; plain
// values mean equality.
func FromBody(filters map[string]any) []Filter {
	var out []Filter
	for field, raw := range filters {
		if ops, ok := raw.(map[string]any); ok {
			for op, value := range ops {
				out = append(out, Filter{Field: field, Op: parseOp(op), Value: value})
			}
			continue
		}
		out = append(out, Filter{Field: field, Op: OpEq, Value: raw})
	}
	return out
}

// FromQuery builds an equality-only filter set from flat query
// parameters.
func FromQuery(params map[string]string) []Filter {
	var out []Filter
	for field, value := range params {
		out = append(out, Filter{Field: field, Op: OpEq, Value: value})
	}
	return out
}

func parseOp(s string) Operator {
	switch s {
	case "$gte":
		return OpGte
	case "$lte":
		return OpLte
	}
	// Unknown operator keys compare as equality.
	return OpEq
}

// Matches reports whether rec satisfies every filter.
func Matches(rec entity.Record, filters []Filter) bool {
	for _, f := range filters {
		if !matchOne(rec, f) {
			return false
		}
	}
	return true
}

func matchOne(rec entity.Record, f Filter) bool {
	got, ok := rec[f.Field]
	if !ok {
		return false
	}

	gotNum, gotIsNum := toNumber(got)
	wantNum, wantIsNum := toNumber(f.Value)
	if gotIsNum && wantIsNum {
		switch f.Op {
		case OpGte:
			return gotNum >= wantNum
		case OpLte:
			return gotNum <= wantNum
		default:
			return gotNum == wantNum
		}
	}

	// String comparison: exact match after lower-casing both sides.
	// Ordering operators have no string meaning and degrade to
	// equality.
	return strings.EqualFold(toString(got), toString(f.Value))
}

// toNumber converts numeric values and numeric-looking strings.
func toNumber(v any) (float64, bool) {
	if n, ok := entity.AsFloat(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	}
	return ""
}
