// Package entity defines the stored record kinds: cars, cities and
// documents.
package entity

import (
	"fmt"
	"strings"
)

// Kind names one stored collection.
type Kind string

const (
	KindCar      Kind = "car"
	KindCity     Kind = "city"
	KindDocument Kind = "document"
)

// Label returns the capitalized kind name used in error messages
// ("Car with id 3 not found").
func (k Kind) Label() string {
	switch k {
	case KindCar:
		return "Car"
	case KindCity:
		return "City"
	case KindDocument:
		return "Document"
	}
	return string(k)
}

// Record is one stored entity as decoded from JSON. Records keep
// arbitrary fields so partial updates merge without a fixed schema,
// matching the on-disk files.
type Record map[string]any

// ID returns the record id, or 0 when absent or non-numeric.
func (r Record) ID() int {
	n, _ := AsInt(r["id"])
	return n
}

// Clone returns a shallow copy. Field values are JSON scalars, so a
// shallow copy is enough to isolate callers from store mutations.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AsInt coerces a decoded JSON value to an int.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// AsFloat coerces a decoded JSON value to a float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// AsString coerces a decoded JSON value to a string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// requiredFields lists the fields a create request must carry, in the
// order they appear in the validation error message.
var requiredFields = map[Kind][]string{
	KindCar:      {"brand", "model", "year", "price_usd"},
	KindCity:     {"name", "delivery_days", "delivery_cost"},
	KindDocument: {"category", "name"},
}

// ValidationError reports missing required fields on a create request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validate checks that rec carries every required field for kind.
// Returns a *ValidationError naming the full required set when any
// field is absent, mirroring the single fixed message the API emits.
func Validate(kind Kind, rec Record) error {
	required := requiredFields[kind]
	for _, f := range required {
		if _, ok := rec[f]; !ok {
			return &ValidationError{Missing: required}
		}
	}
	return nil
}
