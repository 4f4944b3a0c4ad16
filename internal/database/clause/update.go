// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package clause

import (
	"fmt"
	"strconv"
	"strings"
)

// Change is a new value for one logical field.
type Change struct {
	Field string
	Value any
}

// Changes is the ordered list of fields a partial update writes.
type Changes []Change

// Set appends field when value is non-nil.
func Set[T any](changes Changes, field string, value *T) Changes {
	if value == nil {
		return changes
	}
	return append(changes, Change{Field: field, Value: *value})
}

// Update is a SET list with $n placeholders and the values bound to them, in order.
type Update struct {
	SQL  string
	Args []any
}

// Next returns the placeholder that follows the SET list, reserved for the row key.
func (u *Update) Next() string {
	return "$" + strconv.Itoa(len(u.Args)+1)
}

// CompileUpdate builds the SET list for changes. columns maps logical field names
// to storage columns where the two differ; other fields are used verbatim.
func CompileUpdate(changes Changes, columns map[string]string) (*Update, error) {
	if len(changes) == 0 {
		return nil, ErrNoData
	}

	fragments := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes))

	for i, ch := range changes {
		column := ch.Field
		if mapped, ok := columns[ch.Field]; ok {
			column = mapped
		}
		fragments = append(fragments, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, ch.Value)
	}

	return &Update{
		SQL:  strings.Join(fragments, ", "),
		Args: args,
	}, nil
}
