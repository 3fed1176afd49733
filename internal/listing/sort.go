package listing

import (
	"fmt"
	"slices"
	"strings"
)

type Column int

const (
	ColumnName Column = iota
	ColumnDate
	ColumnTime
	ColumnLocation
	ColumnStatus
)

var columnNames = map[Column]string{
	ColumnName:     "name",
	ColumnDate:     "date",
	ColumnTime:     "time",
	ColumnLocation: "location",
	ColumnStatus:   "status",
}

func (c Column) String() string {
	if s, ok := columnNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

func ParseColumn(s string) (Column, error) {
	for c, name := range columnNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown sort column %q", s)
}

type Order int

const (
	Asc Order = iota
	Desc
)

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// Key returns the column's sort key. Every column sorts as text, so dates
// order lexicographically on their DD-MM-YYYY form.
func (r Row) Key(c Column) string {
	switch c {
	case ColumnDate:
		return r.Date
	case ColumnTime:
		return r.Time
	case ColumnLocation:
		return r.Location
	case ColumnStatus:
		return r.Status
	default:
		return r.Name
	}
}

// Sort returns a stably sorted copy of rows. Rows with equal keys keep their
// input order in both directions; descending negates the comparison rather
// than reversing the result.
func Sort(rows []Row, c Column, o Order) []Row {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b Row) int {
		cmp := strings.Compare(a.Key(c), b.Key(c))
		if o == Desc {
			return -cmp
		}
		return cmp
	})
	return out
}
