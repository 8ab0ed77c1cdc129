package catalog

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campustt/timetable-engine/internal/domain"
	"github.com/campustt/timetable-engine/internal/numeric"
)

// Loader applies struct validation and a skip-or-coerce data-quality
// policy (log a warning, keep going) while turning raw catalog rows into
// domain records.
type Loader struct {
	validate *validator.Validate
}

func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// LoadSubjects validates and coerces subject rows. A row that fails
// structural validation (missing code, unrecognized program) is skipped
// with a warning; a row with a malformed year_level is likewise skipped.
func (l *Loader) LoadSubjects(rows []SubjectRow, log Logger) []domain.Subject {
	subjects := make([]domain.Subject, 0, len(rows))
	for _, row := range rows {
		if err := l.validate.Struct(row); err != nil {
			log.Warnf("skipping subject row %q: %v", row.Code, err)
			continue
		}

		yearLevel, ok := safeRequiredInt(row.YearLevel)
		if !ok {
			log.Warnf("invalid year_level %v for subject %s", row.YearLevel, row.Code)
			continue
		}

		available := make([]domain.Program, 0, len(row.AvailablePrograms))
		for _, p := range row.AvailablePrograms {
			available = append(available, domain.Program(strings.ToUpper(strings.TrimSpace(p))))
		}

		subjects = append(subjects, domain.Subject{
			Code:                strings.TrimSpace(row.Code),
			Name:                row.Name,
			Program:             domain.Program(strings.ToUpper(row.Program)),
			AvailablePrograms:   available,
			YearLevel:           yearLevel,
			Semester:            numeric.SafeInt(row.Semester),
			LectureHoursPerWeek: numeric.SafeFloat(row.LectureHoursPerWeek),
			LabHoursPerWeek:     numeric.SafeFloat(row.LabHoursPerWeek),
		})
	}
	return subjects
}

// LoadTeachers drops rows missing a teacher id or name, strips whitespace
// from can_teach, and defaults availability to the full week when absent
// or empty.
func (l *Loader) LoadTeachers(rows []TeacherRow, log Logger) []domain.Teacher {
	teachers := make([]domain.Teacher, 0, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row.TeacherID)
		name := strings.TrimSpace(row.TeacherName)
		if id == "" || name == "" {
			log.Warnf("skipping teacher row due to missing id or name: %+v", row)
			continue
		}

		canTeach := make([]string, 0)
		for _, code := range strings.Split(row.CanTeach, ",") {
			code = strings.TrimSpace(code)
			if code != "" {
				canTeach = append(canTeach, code)
			}
		}

		days := make([]domain.Day, 0, len(row.AvailabilityDays))
		for _, d := range row.AvailabilityDays {
			if idx, ok := dayNameToIndex[strings.TrimSpace(d)]; ok {
				days = append(days, idx)
			}
		}
		if len(days) == 0 {
			days = domain.DefaultAvailability()
		}

		teachers = append(teachers, domain.Teacher{
			ID:               id,
			Name:             name,
			CanTeach:         canTeach,
			AvailabilityDays: days,
		})
	}
	return teachers
}

// LoadRooms coerces room rows, defaulting IsLaboratory to false when the
// field is malformed or absent.
func (l *Loader) LoadRooms(rows []RoomRow, log Logger) []domain.Room {
	rooms := make([]domain.Room, 0, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row.RoomID)
		if id == "" {
			log.Warnf("skipping room row with no room_id: %+v", row)
			continue
		}
		rooms = append(rooms, domain.Room{
			ID:           id,
			Name:         row.RoomName,
			IsLaboratory: safeBool(row.IsLaboratory),
		})
	}
	return rooms
}

func safeRequiredInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	n := numeric.SafeIntDefault(v, -1)
	if n < 0 {
		return 0, false
	}
	return n, true
}

func safeBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case nil:
		return false
	default:
		return numeric.SafeInt(v) != 0
	}
}
