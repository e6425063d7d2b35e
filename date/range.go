package date

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range of days starting on 'from' and spanning 'days' days after it.
func NewRange(from Date, days int) Range {
	return Range{From: from, To: from.Add(days)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
