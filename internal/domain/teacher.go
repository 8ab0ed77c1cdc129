package domain

// Teacher is a faculty roster entry.
type Teacher struct {
	ID               string
	Name             string
	CanTeach         []string // subject codes, whitespace already stripped
	AvailabilityDays []Day    // defaults to all six days when unset
}

// DefaultAvailability is the full week, used whenever a teacher row omits
// availability_days or supplies an empty set.
func DefaultAvailability() []Day {
	return []Day{0, 1, 2, 3, 4, 5}
}

// CanTeachSubject reports whether this teacher's can_teach set contains the
// given subject code. Comparison is exact and case-sensitive.
func (t Teacher) CanTeachSubject(code string) bool {
	for _, c := range t.CanTeach {
		if c == code {
			return true
		}
	}
	return false
}

// AvailableOn reports whether the teacher can be scheduled on the given
// day.
func (t Teacher) AvailableOn(d Day) bool {
	for _, avail := range t.AvailabilityDays {
		if avail == d {
			return true
		}
	}
	return false
}

// HasFullAvailability reports whether the teacher is free all six days —
// the condition that decides whether day-pairing applies.
func (t Teacher) HasFullAvailability() bool {
	return len(t.AvailabilityDays) >= NumDays
}

// AvailableDayPairs returns the subset of DayPairs where both days are in
// this teacher's availability.
func (t Teacher) AvailableDayPairs() []DayPair {
	var pairs []DayPair
	for _, p := range DayPairs {
		if t.AvailableOn(p.First) && t.AvailableOn(p.Second) {
			pairs = append(pairs, p)
		}
	}
	return pairs
}
