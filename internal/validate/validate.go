// Package validate runs a final O(n^2) sanity sweep over a decoded
// schedule, independent of whatever internal bookkeeping the solver used
// to build it. It only logs what it finds — callers return the schedule
// either way.
package validate

import (
	"fmt"
	"strings"

	"github.com/campustt/timetable-engine/internal/domain"
)

// Logger is the subset of engine.Recorder this package needs.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Schedule scans every pair of meetings and logs a warning for each
// section conflict (same section, same day, overlapping time) and each
// teacher conflict (same teacher, same day, overlapping time). A meeting's
// time runs from the start of its first slot to the end of its last
// (StartTimeSlot plus DurationSlots). Time overlap is checked by comparing
// the "HH:MM" boundary strings directly, which is valid because every slot
// label is zero-padded to the same width.
func Schedule(records []domain.MeetingRecord, log Logger) {
	log.Infof("validating schedule for conflicts")

	found := 0
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			a, b := records[i], records[j]
			if a.Day != b.Day || !timeOverlaps(spanLabel(a), spanLabel(b)) {
				continue
			}
			if a.SectionID == b.SectionID {
				found++
				log.Warnf("section conflict: %s on %s - %s (%s) vs %s (%s)",
					a.SectionID, a.Day, a.SubjectCode, a.StartTimeSlot, b.SubjectCode, b.StartTimeSlot)
			}
			if a.TeacherName == b.TeacherName {
				found++
				log.Warnf("teacher conflict: %s on %s - %s (%s) vs %s (%s)",
					a.TeacherName, a.Day, a.SubjectCode, a.StartTimeSlot, b.SubjectCode, b.StartTimeSlot)
			}
		}
	}

	if found == 0 {
		log.Infof("no conflicts found in generated schedule")
		return
	}
	log.Infof("found %d conflicts in generated schedule", found)
}

func timeOverlaps(slotA, slotB string) bool {
	startA, endA, okA := splitSlot(slotA)
	startB, endB, okB := splitSlot(slotB)
	if !okA || !okB {
		return false
	}
	return startA < endB && startB < endA
}

// spanLabel widens a record's start-slot label to cover the whole meeting.
// A label that is not on the slot grid, or a duration under two slots,
// leaves the start-slot label as it is.
func spanLabel(r domain.MeetingRecord) string {
	for idx, label := range domain.SlotLabels {
		last := idx + r.DurationSlots - 1
		if label == r.StartTimeSlot && r.DurationSlots > 1 && last < domain.SlotsPerDay {
			start, _, _ := splitSlot(label)
			_, end, _ := splitSlot(domain.SlotLabels[last])
			return start + "-" + end
		}
	}
	return r.StartTimeSlot
}

func splitSlot(label string) (start, end string, ok bool) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Summarize renders a one-line description of a record, used by callers
// that want a compact conflict report beyond the line-by-line log.
func Summarize(r domain.MeetingRecord) string {
	return fmt.Sprintf("%s/%s %s %s %s", r.SectionID, r.SubjectCode, r.Day, r.StartTimeSlot, r.TeacherName)
}
