package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campustt/timetable-engine/internal/domain"
)

type recordingLogger struct {
	warnings []string
	infos    []string
}

func (l *recordingLogger) Infof(format string, args ...any) { l.infos = append(l.infos, format) }
func (l *recordingLogger) Warnf(format string, args ...any) { l.warnings = append(l.warnings, format) }

func sampleCatalog() Catalog {
	return Catalog{
		Subjects: []domain.Subject{
			{Code: "CS101", Name: "Intro to Programming", Program: domain.ProgramCS, YearLevel: 1, Semester: 1, LectureHoursPerWeek: 3, LabHoursPerWeek: 1.5},
			{Code: "PE1", Name: "Physical Education 1", Program: domain.ProgramCS, YearLevel: 1, Semester: 1, LectureHoursPerWeek: 2},
		},
		Teachers: []domain.Teacher{
			{ID: "T1", Name: "Ada Lovelace", CanTeach: []string{"CS101"}, AvailabilityDays: domain.DefaultAvailability()},
			{ID: "T2", Name: "Coach Rivera", CanTeach: []string{"PE1"}, AvailabilityDays: domain.DefaultAvailability()},
		},
		Rooms: []domain.Room{
			{ID: "R1", Name: "Room 101"},
			{ID: "R2", Name: "Computer Lab", IsLaboratory: true},
			{ID: "R4", Name: "LPU_Gymnasium"},
		},
	}
}

func TestExpandProducesLectureAndLabEvents(t *testing.T) {
	log := &recordingLogger{}
	req := Request{
		Programs:       []domain.Program{domain.ProgramCS},
		SectionCounts:  map[domain.Program]map[int]int{domain.ProgramCS: {1: 1}},
		SemesterFilter: 1,
	}

	events := Expand(sampleCatalog(), req, log)

	var lecture, lab, pe int
	for _, e := range events {
		switch {
		case e.SubjectCode == "CS101" && e.Type == domain.Lecture:
			lecture++
		case e.SubjectCode == "CS101" && e.Type == domain.Lab:
			lab++
		case e.SubjectCode == "PE1":
			pe++
		}
	}
	assert.Equal(t, 1, lecture)
	assert.Equal(t, 1, lab)
	assert.Equal(t, 1, pe, "PE1 is single-session, so it must not be split into two meetings")
}

func TestExpandSplitsEvenNonLabLecture(t *testing.T) {
	log := &recordingLogger{}
	cat := sampleCatalog()
	cat.Subjects = []domain.Subject{
		{Code: "CS200", Name: "Data Structures", Program: domain.ProgramCS, YearLevel: 1, Semester: 1, LectureHoursPerWeek: 3},
	}
	cat.Teachers = []domain.Teacher{
		{ID: "T1", Name: "Ada Lovelace", CanTeach: []string{"CS200"}, AvailabilityDays: domain.DefaultAvailability()},
	}
	req := Request{
		Programs:       []domain.Program{domain.ProgramCS},
		SectionCounts:  map[domain.Program]map[int]int{domain.ProgramCS: {1: 1}},
		SemesterFilter: 1,
	}

	events := Expand(cat, req, log)
	require.Len(t, events, 2)
	assert.Equal(t, domain.NonLab, events[0].Type)
	assert.Equal(t, 3, events[0].DurationSlots)
	assert.Equal(t, 3, events[1].DurationSlots)
}

func TestExpandSkipsSubjectWithNoQualifiedTeachers(t *testing.T) {
	log := &recordingLogger{}
	cat := sampleCatalog()
	cat.Teachers = nil // nobody can teach anything

	req := Request{
		Programs:       []domain.Program{domain.ProgramCS},
		SectionCounts:  map[domain.Program]map[int]int{domain.ProgramCS: {1: 1}},
		SemesterFilter: 1,
	}

	events := Expand(cat, req, log)
	assert.Empty(t, events)
	assert.NotEmpty(t, log.warnings)
}

func TestExpandSkipsYearWithNoCurriculum(t *testing.T) {
	log := &recordingLogger{}
	req := Request{
		Programs:       []domain.Program{domain.ProgramCS},
		SectionCounts:  map[domain.Program]map[int]int{domain.ProgramCS: {4: 1}}, // no year-4 subjects exist
		SemesterFilter: 1,
	}

	events := Expand(sampleCatalog(), req, log)
	assert.Empty(t, events)
}
