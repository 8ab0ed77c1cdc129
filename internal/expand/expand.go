// Package expand turns a catalog (subjects, teachers, rooms) plus a demand
// request (programs and per-program/year section counts) into the flat
// list of MeetingEvents the constraint model schedules: cohort-section
// generation, relevant-subject selection, and per-subject lecture/lab/
// non-lab event synthesis. A subject component with no matching rooms has
// its hours zeroed; the subject is dropped only when both components end
// up empty.
package expand

import (
	"fmt"
	"sort"

	"github.com/campustt/timetable-engine/internal/domain"
	"github.com/campustt/timetable-engine/internal/eligibility"
	"github.com/campustt/timetable-engine/internal/numeric"
)

// Logger is the subset of engine.Recorder this package needs.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Request describes the demand to expand: which programs to generate
// cohorts for, how many sections per program/year, and the semester
// filter (0 means unfiltered).
type Request struct {
	Programs       []domain.Program
	SectionCounts  map[domain.Program]map[int]int // program -> year -> section count
	SemesterFilter int
}

// Catalog is the loaded, cleaned input the expander draws from.
type Catalog struct {
	Subjects []domain.Subject
	Teachers []domain.Teacher
	Rooms    []domain.Room
}

// Expand builds cohort sections from req, then for each cohort's relevant
// subjects produces the meeting events that section/subject needs.
func Expand(cat Catalog, req Request, log Logger) []domain.MeetingEvent {
	availableYears := collectAvailableYears(cat.Subjects, req.Programs)

	sections := buildCohortSections(req, availableYears, log)
	if len(sections) == 0 {
		log.Warnf("no cohort sections generated for requested programs/years/semester")
		return nil
	}

	var events []domain.MeetingEvent
	for _, section := range sections {
		relevant := relevantSubjects(cat.Subjects, section)
		if len(relevant) == 0 {
			log.Warnf("no relevant subjects found for cohort %s (year %d, semester %d); skipping cohort",
				section.ID, section.YearLevel, section.Semester)
			continue
		}
		for _, subj := range relevant {
			events = append(events, expandSubject(section, subj, cat, log)...)
		}
	}
	return events
}

func collectAvailableYears(subjects []domain.Subject, programs []domain.Program) map[int]bool {
	want := make(map[domain.Program]bool, len(programs))
	for _, p := range programs {
		want[p] = true
	}
	years := make(map[int]bool)
	for _, s := range subjects {
		if want[s.Program] {
			years[s.YearLevel] = true
		}
	}
	return years
}

func buildCohortSections(req Request, availableYears map[int]bool, log Logger) []domain.CohortSection {
	var sections []domain.CohortSection
	for _, program := range req.Programs {
		counts := req.SectionCounts[program]
		years := make([]int, 0, len(counts))
		for y := range counts {
			years = append(years, y)
		}
		sort.Ints(years)

		for _, year := range years {
			numSections := counts[year]
			if numSections <= 0 {
				continue
			}
			if !availableYears[year] {
				log.Infof("skipping %s year %d: no curriculum available", program, year)
				continue
			}
			for idx := 0; idx < numSections; idx++ {
				sections = append(sections, domain.NewCohortSection(program, year, idx, req.SemesterFilter))
			}
		}
	}
	return sections
}

func relevantSubjects(subjects []domain.Subject, section domain.CohortSection) []domain.Subject {
	var out []domain.Subject
	for _, s := range subjects {
		if s.YearLevel != section.YearLevel {
			continue
		}
		if section.Semester != 0 && !numeric.SameSemester(s.Semester, section.Semester) {
			continue
		}
		if !s.ServesProgram(section.Program) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func expandSubject(section domain.CohortSection, subj domain.Subject, cat Catalog, log Logger) []domain.MeetingEvent {
	validTeachers := eligibility.Teachers(cat.Teachers, subj.Code)
	if len(validTeachers) == 0 {
		log.Warnf("skipping %s for %s: no qualified teachers", subj.Code, section.ID)
		return nil
	}

	rooms := eligibility.Rooms(cat.Rooms, subj.Code, log)

	lectureHours := subj.LectureHoursPerWeek
	labHours := subj.LabHoursPerWeek
	isLab := subj.IsLabSubject()

	if isLab {
		if lectureHours > 0 && len(rooms.Lecture) == 0 {
			log.Warnf("skipping %s lecture for %s: no matching lecture rooms", subj.Code, section.ID)
			lectureHours = 0
		}
		if labHours > 0 && len(rooms.Lab) == 0 {
			log.Warnf("skipping %s lab for %s: no matching lab rooms", subj.Code, section.ID)
			labHours = 0
		}
		if lectureHours == 0 && labHours == 0 {
			return nil
		}
	} else if lectureHours > 0 && len(rooms.Lecture) == 0 {
		log.Warnf("skipping %s for %s: no matching lecture rooms", subj.Code, section.ID)
		return nil
	}

	base := domain.MeetingEvent{
		SectionID:     section.ID,
		SubjectCode:   subj.Code,
		SubjectName:   subj.Name,
		ValidTeachers: validTeachers,
		Assignment:    domain.UnassignedAssignment,
	}

	var events []domain.MeetingEvent

	if isLab {
		if lectureHours > 0 {
			e := base
			e.Type = domain.Lecture
			e.DurationSlots = int(lectureHours * 2)
			e.ValidRooms = rooms.Lecture
			e.MeetingIdx = 0
			events = append(events, e)
		}
		if labHours > 0 {
			e := base
			e.Type = domain.Lab
			e.DurationSlots = int(labHours * 2)
			e.ValidRooms = rooms.Lab
			e.MeetingIdx = 1
			events = append(events, e)
		}
		return events
	}

	if lectureHours == 0 {
		return nil
	}

	totalSlots := int(lectureHours * 2)
	singleSession := domain.IsSingleSession(subj.Code)

	if totalSlots%2 == 0 && totalSlots >= 2 && !singleSession {
		half := totalSlots / 2
		for idx := 0; idx < 2; idx++ {
			e := base
			e.Type = domain.NonLab
			e.DurationSlots = half
			e.ValidRooms = rooms.Lecture
			e.MeetingIdx = idx
			events = append(events, e)
		}
		return events
	}

	e := base
	e.Type = domain.NonLab
	e.DurationSlots = totalSlots
	e.ValidRooms = rooms.Lecture
	e.MeetingIdx = 0
	return append(events, e)
}

// Describe renders a human-readable summary of one expanded event, for
// diagnostic logging.
func Describe(e domain.MeetingEvent) string {
	return fmt.Sprintf("%s/%s[%s#%d] dur=%d teachers=%d rooms=%d",
		e.SectionID, e.SubjectCode, e.Type, e.MeetingIdx, e.DurationSlots,
		len(e.ValidTeachers), len(e.ValidRooms))
}
