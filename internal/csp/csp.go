// Package csp builds the constraint model over an expanded event list: the
// (section, subject) groups that share a teacher and a day-placement rule,
// and the pairwise conflict predicates the solver checks its placements
// against. The validator does not use these predicates: it runs its own
// check over the decoded records.
package csp

import "github.com/campustt/timetable-engine/internal/domain"

// Group is all the meeting events belonging to one (section, subject)
// pair — the unit the "same teacher" and day-pairing rules apply across.
type Group struct {
	Key    domain.GroupKey
	Events []int // indices into the owning event slice
}

// BuildGroups partitions events by (SectionID, SubjectCode), preserving
// first-seen order so output is deterministic.
func BuildGroups(events []domain.MeetingEvent) []Group {
	index := make(map[domain.GroupKey]int)
	var groups []Group
	for i := range events {
		key := events[i].Key()
		if gi, ok := index[key]; ok {
			groups[gi].Events = append(groups[gi].Events, i)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Key: key, Events: []int{i}})
	}
	return groups
}

// ReferenceTeacher returns the first entry of the group's first event's
// ValidTeachers — a "first candidate as reference" heuristic used to
// decide a group's day-placement rule before any teacher variable is
// actually bound.
func ReferenceTeacher(events []domain.MeetingEvent, g Group) domain.Teacher {
	return events[g.Events[0]].ValidTeachers[0]
}

// IsRestricted reports whether a teacher's availability is narrower than
// the full week — the condition that switches a group from day-pairing to
// same-day placement.
func IsRestricted(t domain.Teacher) bool {
	return !t.HasFullAvailability()
}

// LectureLabPair returns the indices of the lecture and lab events in a
// group, and whether both are present.
func LectureLabPair(events []domain.MeetingEvent, g Group) (lecture, lab int, ok bool) {
	lecture, lab = -1, -1
	for _, i := range g.Events {
		switch events[i].Type {
		case domain.Lecture:
			lecture = i
		case domain.Lab:
			lab = i
		}
	}
	return lecture, lab, lecture != -1 && lab != -1
}

// SplitNonLabPair returns the two non_lab meeting indices of a group in
// MeetingIdx order (0 first, 1 second), and whether exactly two exist.
func SplitNonLabPair(events []domain.MeetingEvent, g Group) (first, second int, ok bool) {
	var nonLab []int
	for _, i := range g.Events {
		if events[i].Type == domain.NonLab {
			nonLab = append(nonLab, i)
		}
	}
	if len(nonLab) != 2 {
		return -1, -1, false
	}
	if events[nonLab[0]].MeetingIdx <= events[nonLab[1]].MeetingIdx {
		return nonLab[0], nonLab[1], true
	}
	return nonLab[1], nonLab[0], true
}

// PairViolated reports whether a group's two paired events sit outside
// the day-placement rule: with a full-availability reference teacher, the
// lecture (or first half-meeting) must land on the first day and the lab
// (or second half-meeting) on the second day of one canonical day pair;
// with a restricted reference teacher, both must land on a single day.
// Groups with no pair are never violated.
func PairViolated(events []domain.MeetingEvent, g Group) bool {
	a, b, ok := LectureLabPair(events, g)
	if !ok {
		a, b, ok = SplitNonLabPair(events, g)
	}
	if !ok {
		return false
	}
	da, db := events[a].Assignment.Day, events[b].Assignment.Day
	if IsRestricted(ReferenceTeacher(events, g)) {
		return da != db
	}
	for _, p := range domain.DayPairs {
		if da == p.First && db == p.Second {
			return false
		}
	}
	return true
}

// TeachersOverlap reports whether two events, if assigned to the same
// teacher and the same day, would clash on time.
func TeachersOverlap(a, b domain.MeetingEvent) bool {
	if a.Assignment.Day != b.Assignment.Day {
		return false
	}
	if a.Teacher().ID != b.Teacher().ID {
		return false
	}
	return domain.Overlaps(a.Assignment.Start, a.DurationSlots, b.Assignment.Start, b.DurationSlots)
}

// RoomsOverlap reports whether two events clash on a shared room, on the
// same day, at overlapping times. The gymnasium is exempt: it's allowed
// to host multiple simultaneous PE sections.
func RoomsOverlap(a, b domain.MeetingEvent) bool {
	if a.Assignment.Day != b.Assignment.Day {
		return false
	}
	ra, rb := a.Room(), b.Room()
	if ra.ID != rb.ID {
		return false
	}
	if ra.IsGymnasium() {
		return false
	}
	return domain.Overlaps(a.Assignment.Start, a.DurationSlots, b.Assignment.Start, b.DurationSlots)
}

// ViolatesAvailability reports whether an event's assigned day falls
// outside its assigned teacher's availability.
func ViolatesAvailability(e domain.MeetingEvent) bool {
	if e.Assignment.TeacherIdx < 0 || e.Assignment.TeacherIdx >= len(e.ValidTeachers) {
		return false
	}
	return !e.Teacher().AvailableOn(e.Assignment.Day)
}

// SectionsOverlap reports whether two events clash for the same cohort
// section — a student-schedule collision. Different programs never clash
// even if two section IDs happened to coincide; callers pass events whose
// SectionID already encodes the program (e.g. "CS1A" vs "IT1A"), so a
// plain ID comparison is sufficient.
func SectionsOverlap(a, b domain.MeetingEvent) bool {
	if a.SectionID != b.SectionID {
		return false
	}
	if a.Assignment.Day != b.Assignment.Day {
		return false
	}
	return domain.Overlaps(a.Assignment.Start, a.DurationSlots, b.Assignment.Start, b.DurationSlots)
}
