package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campustt/timetable-engine/internal/catalog"
)

func TestGenerateEndToEnd(t *testing.T) {
	in := Input{
		Subjects: []catalog.SubjectRow{
			{Code: "CS101", Name: "Intro to Programming", Program: "CS", YearLevel: "1", Semester: "1", LectureHoursPerWeek: 3.0},
			{Code: "PE1", Name: "Physical Education 1", Program: "CS", YearLevel: "1", Semester: "1", LectureHoursPerWeek: 2.0},
		},
		Teachers: []catalog.TeacherRow{
			{TeacherID: "T1", TeacherName: "Ada Lovelace", CanTeach: "CS101"},
			{TeacherID: "T2", TeacherName: "Coach Rivera", CanTeach: "PE1"},
		},
		Rooms: []catalog.RoomRow{
			{RoomID: "R1", RoomName: "Room 101"},
			{RoomID: "R2", RoomName: "LPU_Gymnasium"},
		},
		SemesterFilter:  "1",
		Programs:        []string{"CS"},
		ProgramSections: map[string]map[int]int{"CS": {1: 1}},
	}

	result := Generate(context.Background(), in, zap.NewNop())

	require.NotEmpty(t, result.Schedule)
	assert.NotEmpty(t, result.Logs)
}

func TestGenerateWithNoValidTeachersReturnsEmptySchedule(t *testing.T) {
	in := Input{
		Subjects: []catalog.SubjectRow{
			{Code: "CS101", Program: "CS", YearLevel: "1", Semester: "1", LectureHoursPerWeek: 3.0},
		},
		Teachers:        nil,
		Rooms:           []catalog.RoomRow{{RoomID: "R1", RoomName: "Room 101"}},
		Programs:        []string{"CS"},
		ProgramSections: map[string]map[int]int{"CS": {1: 1}},
	}

	result := Generate(context.Background(), in, zap.NewNop())
	assert.Empty(t, result.Schedule)
	assert.NotEmpty(t, result.Logs)
}

func TestGenerateKeepsCiscoLabExclusive(t *testing.T) {
	in := Input{
		Subjects: []catalog.SubjectRow{
			{Code: "CS14", Name: "Networking 2", Program: "CS", YearLevel: "1", Semester: "1", LectureHoursPerWeek: 2.0, LabHoursPerWeek: 3.0},
			{Code: "CS101", Name: "Intro to Programming", Program: "CS", YearLevel: "1", Semester: "1", LectureHoursPerWeek: 3.0},
		},
		Teachers: []catalog.TeacherRow{
			{TeacherID: "T1", TeacherName: "Grace Hopper", CanTeach: "CS14"},
			{TeacherID: "T2", TeacherName: "Ada Lovelace", CanTeach: "CS101"},
		},
		Rooms: []catalog.RoomRow{
			{RoomID: "R1", RoomName: "Room 101"},
			{RoomID: "R2", RoomName: "Room 102"},
			{RoomID: "R3", RoomName: "Cisco Lab", IsLaboratory: true},
		},
		SemesterFilter:  1,
		Programs:        []string{"CS"},
		ProgramSections: map[string]map[int]int{"CS": {1: 1}},
	}

	result := Generate(context.Background(), in, zap.NewNop())
	require.NotEmpty(t, result.Schedule)

	for _, m := range result.Schedule {
		inCisco := strings.Contains(strings.ToLower(m.RoomID), "cisco")
		if m.SubjectCode == "CS14" {
			assert.True(t, inCisco, "networking meetings belong in the Cisco lab, got %s", m.RoomID)
		} else {
			assert.False(t, inCisco, "%s must never use the Cisco lab", m.SubjectCode)
		}
	}
}

func TestGenerateSchedulesBothProgramsIndependently(t *testing.T) {
	in := Input{
		Subjects: []catalog.SubjectRow{
			{Code: "CS101", Name: "Intro to Programming", Program: "CS", YearLevel: "1", Semester: "1", LectureHoursPerWeek: 3.0},
			{Code: "IT101", Name: "IT Fundamentals", Program: "IT", YearLevel: "1", Semester: "1", LectureHoursPerWeek: 3.0},
		},
		Teachers: []catalog.TeacherRow{
			{TeacherID: "T1", TeacherName: "Ada Lovelace", CanTeach: "CS101"},
			{TeacherID: "T2", TeacherName: "Grace Hopper", CanTeach: "IT101"},
		},
		Rooms: []catalog.RoomRow{
			{RoomID: "R1", RoomName: "Room 101"},
			{RoomID: "R2", RoomName: "Room 102"},
		},
		SemesterFilter:  1,
		Programs:        []string{"CS", "IT"},
		ProgramSections: map[string]map[int]int{"CS": {1: 1}, "IT": {1: 1}},
	}

	result := Generate(context.Background(), in, zap.NewNop())
	require.NotEmpty(t, result.Schedule)

	sections := make(map[string]bool)
	for _, m := range result.Schedule {
		sections[m.SectionID] = true
	}
	assert.True(t, sections["CS1A"], "CS cohort must be scheduled")
	assert.True(t, sections["IT1A"], "IT cohort must be scheduled")
}
