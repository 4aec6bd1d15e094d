package remote

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// Constraint narrows an object listing. Constraints travel to the store as
// a JSON array in the `constraints` query parameter; the constraint type
// vocabulary ("equals", "greater than", ...) is the store's, spaces
// included.
type Constraint struct {
	Key   string `json:"key"`
	Type  string `json:"constraint_type"`
	Value any    `json:"value,omitempty"`
}

// Eq matches records whose field equals value.
func Eq(key string, value any) Constraint {
	return Constraint{Key: key, Type: "equals", Value: value}
}

// NotEq matches records whose field differs from value.
func NotEq(key string, value any) Constraint {
	return Constraint{Key: key, Type: "not equal", Value: value}
}

// GreaterThan matches records whose field exceeds value.
func GreaterThan(key string, value any) Constraint {
	return Constraint{Key: key, Type: "greater than", Value: value}
}

// LessThan matches records whose field is below value.
func LessThan(key string, value any) Constraint {
	return Constraint{Key: key, Type: "less than", Value: value}
}

// IsEmpty matches records whose field is unset.
func IsEmpty(key string) Constraint {
	return Constraint{Key: key, Type: "is_empty"}
}

// NotEmpty matches records whose field is set.
func NotEmpty(key string) Constraint {
	return Constraint{Key: key, Type: "is_not_empty"}
}

// listPath builds an object listing path with paging and constraints.
func listPath(base string, cursor, limit int, cons []Constraint) (string, error) {
	q := url.Values{}
	q.Set("cursor", strconv.Itoa(cursor))
	q.Set("limit", strconv.Itoa(limit))
	if len(cons) > 0 {
		encoded, err := json.Marshal(cons)
		if err != nil {
			return "", err
		}
		q.Set("constraints", string(encoded))
	}
	return base + "?" + q.Encode(), nil
}
