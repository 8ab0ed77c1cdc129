package domain

// MeetingEvent is the central scheduling unit: one lecture, lab, or half of
// a split non-lab meeting, for one subject within one cohort section.
//
// ValidTeachers and ValidRooms are resolved once by the eligibility filter
// (C3) and never change afterward; Day/Start/TeacherIdx/RoomIdx are the
// solver's decision variables, set only once a solve produces an
// assignment.
type MeetingEvent struct {
	SectionID     string
	SubjectCode   string
	SubjectName   string
	Type          MeetingKind
	DurationSlots int
	MeetingIdx    int // 0, or 1 for the second half of a split non-lab/lab pair

	ValidTeachers []Teacher
	ValidRooms    []Room

	Assignment Assignment
}

// Assignment holds the four decision variables the constraint model binds
// per event: which day, which start slot, which of ValidTeachers, and
// which of ValidRooms. Index fields are -1 until a solve assigns them.
type Assignment struct {
	Day        Day
	Start      int
	TeacherIdx int
	RoomIdx    int
}

// UnassignedAssignment is the placeholder (every field -1) used before a
// solve runs.
var UnassignedAssignment = Assignment{Day: -1, Start: -1, TeacherIdx: -1, RoomIdx: -1}

// Teacher resolves the event's assigned teacher, panicking if unassigned —
// callers must only call this after a successful solve.
func (e *MeetingEvent) Teacher() Teacher {
	return e.ValidTeachers[e.Assignment.TeacherIdx]
}

// Room resolves the event's assigned room.
func (e *MeetingEvent) Room() Room {
	return e.ValidRooms[e.Assignment.RoomIdx]
}

// End returns the half-open interval's exclusive end slot under the
// current assignment.
func (e *MeetingEvent) End() int {
	return e.Assignment.Start + e.DurationSlots
}

// GroupKey identifies the (section, subject) group an event belongs to —
// the unit across which "same teacher" and day-pairing constraints apply.
type GroupKey struct {
	SectionID   string
	SubjectCode string
}

func (e *MeetingEvent) Key() GroupKey {
	return GroupKey{SectionID: e.SectionID, SubjectCode: e.SubjectCode}
}
