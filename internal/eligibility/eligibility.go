// Package eligibility resolves, for one subject, the teacher and room sets
// a meeting event may draw from: teacher eligibility via can_teach,
// and room eligibility via the Cisco-Lab / Gymnasium / Physics exclusivity
// rules, applied in a fixed precedence order.
package eligibility

import "github.com/campustt/timetable-engine/internal/domain"

// Logger is the subset of engine.Recorder this package needs.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Teachers returns the subset of roster that lists subjectCode in its
// can_teach set.
func Teachers(roster []domain.Teacher, subjectCode string) []domain.Teacher {
	var out []domain.Teacher
	for _, t := range roster {
		if t.CanTeachSubject(subjectCode) {
			out = append(out, t)
		}
	}
	return out
}

// RoomSet is the lecture/lab room pools for one subject, after exclusivity
// rules are applied.
type RoomSet struct {
	Lecture []domain.Room
	Lab     []domain.Room
}

// Rooms computes the eligible lecture and lab room pools for subjectCode:
// Cisco-Lab exclusivity for networking subjects (and exclusion for
// everyone else), Gymnasium exclusivity for PE subjects (and exclusion for
// everyone else), then the Physics override that lets physics labs use
// ordinary non-gym rooms. When a ruled-in pool (Cisco-Lab, Gymnasium) turns
// out empty, the rule is logged and dropped in favor of the default pool
// rather than leaving the subject with no rooms at all.
func Rooms(inventory []domain.Room, subjectCode string, log Logger) RoomSet {
	var lecture, lab []domain.Room
	var cisco, gym []domain.Room
	for _, r := range inventory {
		if r.IsCiscoLab() {
			cisco = append(cisco, r)
			continue
		}
		if r.IsGymnasium() {
			gym = append(gym, r)
			continue
		}
		if r.IsLaboratory {
			lab = append(lab, r)
		} else {
			lecture = append(lecture, r)
		}
	}

	switch {
	case domain.IsNetworkingSubject(subjectCode):
		if len(cisco) == 0 {
			log.Warnf("no Cisco-Lab room available for networking subject %s; falling back to default rooms", subjectCode)
		} else {
			lecture, lab = cisco, cisco
		}
	case domain.IsPESubject(subjectCode):
		if len(gym) == 0 {
			log.Warnf("no gymnasium available for PE subject %s; falling back to default rooms", subjectCode)
		} else {
			lecture, lab = gym, gym
		}
	case domain.IsPhysicsSubject(subjectCode):
		// Physics labs need no special equipment: they can run in any
		// ordinary non-laboratory, non-gymnasium room.
		lab = lecture
	}

	return RoomSet{Lecture: lecture, Lab: lab}
}
