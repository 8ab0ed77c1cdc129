package domain

// MeetingRecord is one decoded, fully populated scheduled meeting.
// The engine never emits a partial record: every field below is set.
type MeetingRecord struct {
	SectionID     string
	SubjectCode   string
	SubjectName   string
	Type          MeetingKind
	TeacherName   string
	RoomID        string // the room's display name
	Day           string
	StartTimeSlot string
	DurationSlots int
}

// Result is the engine's output envelope: a possibly-empty schedule plus
// diagnostic logs. "Empty schedule plus non-empty log" is the canonical
// no-solution reply.
type Result struct {
	Schedule []MeetingRecord
	Logs     []string
}
