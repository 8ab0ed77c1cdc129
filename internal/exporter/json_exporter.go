// Package exporter renders a generated schedule to an indented JSON file,
// grouped by day. The file shape is a convenience for operators, not part
// of the engine's interface.
package exporter

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/campustt/timetable-engine/internal/domain"
)

// ScheduleExport is the JSON document written to disk.
type ScheduleExport struct {
	Summary  Summary       `json:"summary"`
	Schedule []DaySchedule `json:"schedule"`
	Logs     []string      `json:"logs"`
}

// Summary holds a handful of counts useful for a quick sanity glance at
// an exported file.
type Summary struct {
	TotalMeetings int `json:"total_meetings"`
	TotalSections int `json:"total_sections"`
	TotalTeachers int `json:"total_teachers"`
}

// DaySchedule groups every meeting that falls on one weekday.
type DaySchedule struct {
	Day      string          `json:"day"`
	Meetings []MeetingExport `json:"meetings"`
}

// MeetingExport is one exported meeting row.
type MeetingExport struct {
	Section  string `json:"section"`
	Subject  string `json:"subject"`
	Type     string `json:"type"`
	Teacher  string `json:"teacher"`
	Room     string `json:"room"`
	Start    string `json:"start"`
	Duration int    `json:"duration_slots"`
}

// WriteJSON renders result to filename as indented JSON, grouped by day
// and sorted within each day by start slot then section.
func WriteJSON(result domain.Result, filename string) error {
	export := ScheduleExport{
		Summary:  summarize(result.Schedule),
		Schedule: groupByDay(result.Schedule),
		Logs:     result.Logs,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func summarize(records []domain.MeetingRecord) Summary {
	sections := make(map[string]bool)
	teachers := make(map[string]bool)
	for _, r := range records {
		sections[r.SectionID] = true
		teachers[r.TeacherName] = true
	}
	return Summary{
		TotalMeetings: len(records),
		TotalSections: len(sections),
		TotalTeachers: len(teachers),
	}
}

func groupByDay(records []domain.MeetingRecord) []DaySchedule {
	byDay := make(map[string][]MeetingExport)
	for _, r := range records {
		byDay[r.Day] = append(byDay[r.Day], MeetingExport{
			Section:  r.SectionID,
			Subject:  r.SubjectCode,
			Type:     string(r.Type),
			Teacher:  r.TeacherName,
			Room:     r.RoomID,
			Start:    r.StartTimeSlot,
			Duration: r.DurationSlots,
		})
	}

	days := make([]DaySchedule, 0, len(domain.DayLabels))
	for _, label := range domain.DayLabels {
		meetings := byDay[label]
		sort.Slice(meetings, func(i, j int) bool {
			if meetings[i].Start != meetings[j].Start {
				return meetings[i].Start < meetings[j].Start
			}
			return meetings[i].Section < meetings[j].Section
		})
		if len(meetings) == 0 {
			continue
		}
		days = append(days, DaySchedule{Day: label, Meetings: meetings})
	}
	return days
}
