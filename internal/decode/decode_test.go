package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campustt/timetable-engine/internal/domain"
)

func TestDecodeUsesRoomDisplayName(t *testing.T) {
	events := []domain.MeetingEvent{
		{
			SectionID: "CS1A", SubjectCode: "CS101", SubjectName: "Intro to Programming",
			Type: domain.Lecture, DurationSlots: 4,
			ValidTeachers: []domain.Teacher{{ID: "T1", Name: "Ada Lovelace"}},
			ValidRooms:    []domain.Room{{ID: "R1", Name: "Room 101"}},
			Assignment:    domain.Assignment{Day: 0, Start: 2, TeacherIdx: 0, RoomIdx: 0},
		},
	}

	records := Decode(events)
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "Ada Lovelace", r.TeacherName)
	assert.Equal(t, "Room 101", r.RoomID, "the room field carries the display name, not the id")
	assert.Equal(t, "Mon", r.Day)
	assert.Equal(t, domain.SlotLabels[2], r.StartTimeSlot)
	assert.Equal(t, 4, r.DurationSlots)
}
