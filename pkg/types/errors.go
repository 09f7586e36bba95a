// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// MissingFieldError reports a required field absent from an input table.
// It is fatal and raised before any row of the batch is processed.
type MissingFieldError struct {
	// Table names the input table ("publications", "authors",
	// "organizations").
	Table string

	// Field names the missing field.
	Field string

	// RowID identifies the offending row where one exists.
	RowID string
}

func (e *MissingFieldError) Error() string {
	if e.RowID == "" {
		return fmt.Sprintf("%s: missing required field %q", e.Table, e.Field)
	}
	return fmt.Sprintf("%s: row %s: missing required field %q", e.Table, e.RowID, e.Field)
}
