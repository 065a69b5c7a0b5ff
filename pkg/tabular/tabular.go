// Package tabular holds the pure sort and pagination helpers used by table
// views. Nothing here mutates its input.
package tabular

import (
	"fmt"
	"strings"
)

// Direction is a sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts asc, ascending, desc and descending in any case.
// Empty parses as Ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("unknown sort direction %q", s)
	}
}

// SortSpec orders records by the value at a dotted field path.
type SortSpec struct {
	Field     string
	Direction Direction
}

// PageSpec selects one page of an ordered collection.
type PageSpec struct {
	// Index is zero-based.
	Index int
	Size  int
}
