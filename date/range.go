package date

import "fmt"

// Range represents a range of dates, boundaries included. A zero boundary
// leaves that side of the range open.
type Range struct{ From, To Date }

// Year returns the range of the whole year y.
func Year(y int) Range {
	return Range{From: New(y, 1, 1), To: New(y, 12, 31)}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// IsValid reports whether the range is not empty.
func (r Range) IsValid() bool {
	return r.From.IsZero() || r.To.IsZero() || !r.From.After(r.To)
}

func (r Range) String() string {
	switch {
	case r.From.IsZero() && r.To.IsZero():
		return "all time"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.To)
	case r.To.IsZero():
		return fmt.Sprintf("since %s", r.From)
	default:
		return fmt.Sprintf("%s to %s", r.From, r.To)
	}
}
