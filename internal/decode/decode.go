// Package decode turns a solved event list into the MeetingRecord rows
// the engine returns as its external result. The room field carries the
// room's display name, not its ID.
package decode

import "github.com/campustt/timetable-engine/internal/domain"

// Decode converts every event to a MeetingRecord. Events are assumed
// fully assigned (the solver never leaves TeacherIdx/RoomIdx at -1 for an
// event with a nonempty candidate list).
func Decode(events []domain.MeetingEvent) []domain.MeetingRecord {
	records := make([]domain.MeetingRecord, 0, len(events))
	for _, e := range events {
		records = append(records, domain.MeetingRecord{
			SectionID:     e.SectionID,
			SubjectCode:   e.SubjectCode,
			SubjectName:   e.SubjectName,
			Type:          e.Type,
			TeacherName:   e.Teacher().Name,
			RoomID:        e.Room().Name,
			Day:           e.Assignment.Day.String(),
			StartTimeSlot: domain.SlotLabels[e.Assignment.Start],
			DurationSlots: e.DurationSlots,
		})
	}
	return records
}
