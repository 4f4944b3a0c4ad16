// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package clause compiles optional request inputs into parameterized SQL fragments.
package clause

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the comparison applied to a single filter input.
type Kind int

const (
	KindPrefix Kind = iota
	KindGreaterThan
	KindLessThan
	KindPresence
)

func (k Kind) String() string {
	switch k {
	case KindPrefix:
		return "prefix"
	case KindGreaterThan:
		return "greater-than"
	case KindLessThan:
		return "less-than"
	case KindPresence:
		return "presence"
	default:
		return "unknown"
	}
}

// Input is one named, optional filter. Value is nil when the caller did not supply it.
type Input struct {
	Name   string
	Column string
	Kind   Kind
	Value  any
}

// Bound pairs the names of a lower and an upper bound input.
type Bound struct {
	Min string
	Max string
}

// Clause is a WHERE clause with $n placeholders and the values bound to them, in order.
type Clause struct {
	SQL  string
	Args []any
}

// Prefix builds a case-insensitive prefix match input.
func Prefix(name, column string, value *string) Input {
	in := Input{Name: name, Column: column, Kind: KindPrefix}
	if value != nil {
		in.Value = *value
	}
	return in
}

// GreaterThan builds a strict lower bound input.
func GreaterThan(name, column string, value *int) Input {
	in := Input{Name: name, Column: column, Kind: KindGreaterThan}
	if value != nil {
		in.Value = *value
	}
	return in
}

// LessThan builds a strict upper bound input.
func LessThan(name, column string, value *int) Input {
	in := Input{Name: name, Column: column, Kind: KindLessThan}
	if value != nil {
		in.Value = *value
	}
	return in
}

// Presence builds a flag input that restricts rows to column > 0 when the flag is true.
func Presence(name, column string, value *bool) Input {
	in := Input{Name: name, Column: column, Kind: KindPresence}
	if value != nil {
		in.Value = *value
	}
	return in
}

// CheckInt32 rejects a supplied value that does not fit a 32-bit integer column.
func CheckInt32(name string, value *int) error {
	if value != nil && (*value > math.MaxInt32 || *value < math.MinInt32) {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrOutOfRange, name, math.MinInt32, math.MaxInt32)
	}
	return nil
}

// CompileFilter turns the supplied inputs into a WHERE clause, in declaration order.
// It returns a nil clause when no input contributes a predicate.
func CompileFilter(inputs []Input, bounds ...Bound) (*Clause, error) {
	if err := checkBounds(inputs, bounds); err != nil {
		return nil, err
	}

	var fragments []string
	var args []any

	for _, in := range inputs {
		if in.Value == nil {
			continue
		}

		switch in.Kind {
		case KindPrefix:
			s, ok := in.Value.(string)
			if !ok {
				return nil, fmt.Errorf("filter %s: expected string, got %T", in.Name, in.Value)
			}
			args = append(args, s+"%")
			fragments = append(fragments, fmt.Sprintf("%s ILIKE $%d", in.Column, len(args)))
		case KindGreaterThan, KindLessThan:
			n, ok := in.Value.(int)
			if !ok {
				return nil, fmt.Errorf("filter %s: expected int, got %T", in.Name, in.Value)
			}
			op := ">"
			if in.Kind == KindLessThan {
				op = "<"
			}
			args = append(args, strconv.Itoa(n))
			fragments = append(fragments, fmt.Sprintf("%s %s $%d", in.Column, op, len(args)))
		case KindPresence:
			b, ok := in.Value.(bool)
			if !ok {
				return nil, fmt.Errorf("filter %s: expected bool, got %T", in.Name, in.Value)
			}
			if b {
				fragments = append(fragments, in.Column+" > 0")
			}
		default:
			return nil, fmt.Errorf("filter %s: unsupported kind %s", in.Name, in.Kind)
		}
	}

	if len(fragments) == 0 {
		return nil, nil
	}

	return &Clause{
		SQL:  "WHERE " + strings.Join(fragments, " AND "),
		Args: args,
	}, nil
}

func checkBounds(inputs []Input, bounds []Bound) error {
	if len(bounds) == 0 {
		return nil
	}

	values := make(map[string]int, len(inputs))
	for _, in := range inputs {
		if n, ok := in.Value.(int); ok {
			values[in.Name] = n
		}
	}

	for _, b := range bounds {
		lo, hasLo := values[b.Min]
		hi, hasHi := values[b.Max]
		if hasLo && hasHi && hi < lo {
			return fmt.Errorf("%w: %s cannot be greater than %s", ErrInvalidRange, b.Min, b.Max)
		}
	}
	return nil
}
