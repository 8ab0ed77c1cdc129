// Package solver drives the constraint model csp.BuildGroups describes to
// a concrete assignment. There is no CP-SAT binding available in Go, so
// this is a constructive placement pass followed by a simulated-annealing
// repair loop, run as several parallel restarts bounded by a wall-clock
// budget — the same constructive-plus-local-search shape a graph-coloring
// solver would use, generalized to this domain's variables (day, start
// slot, teacher index, room index) instead of graph colors.
package solver

import (
	"context"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campustt/timetable-engine/internal/csp"
	"github.com/campustt/timetable-engine/internal/domain"
)

// Logger is the subset of engine.Recorder this package needs.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Config bounds one solve attempt: a wall-clock budget and a number of
// parallel restarts ("workers", mirroring CP-SAT's portfolio search).
type Config struct {
	Budget  time.Duration
	Workers int
	// EnforceRooms, when false, drops the room no-overlap predicate —
	// the fallback model's "only teacher + section no-overlap retained."
	EnforceRooms bool
	// EnforceAvailability, when false, drops the teacher day-availability
	// predicate — also dropped by the fallback model.
	EnforceAvailability bool
	// EnforcePairing, when false, drops the lecture/lab and split non-lab
	// day-placement rule, leaving paired meetings free to land on any days.
	EnforcePairing bool
}

// PrimaryConfig is the full model: 60s budget, 8-way portfolio search,
// every conflict predicate enforced.
var PrimaryConfig = Config{Budget: 60 * time.Second, Workers: 8, EnforceRooms: true, EnforceAvailability: true, EnforcePairing: true}

// FallbackConfig drops the room no-overlap, teacher availability, and
// day-pairing predicates, keeping only teacher and section no-overlap — a
// reduced model used only once the primary model fails to fully resolve.
var FallbackConfig = Config{Budget: 10 * time.Second, Workers: 8, EnforceRooms: false, EnforceAvailability: false}

// Outcome is one solve attempt's result. Conflicts is the real hard
// constraint-violation count under cfg's enforced predicates — never
// mixed with the soft room-distribution term, so callers can gate and
// compare on it directly.
type Outcome struct {
	Events    []domain.MeetingEvent
	Conflicts int
}

// Solve runs Config.Workers independent construct-then-repair attempts in
// parallel, each seeded differently, and returns the best one found before
// ctx or the budget expires. A zero-conflict Outcome means the schedule is
// fully feasible; a nonzero one is the least-bad attempt, returning the
// closest approximation rather than failing outright.
func Solve(ctx context.Context, events []domain.MeetingEvent, cfg Config, log Logger) Outcome {
	groups := csp.BuildGroups(events)

	ctx, cancel := context.WithTimeout(ctx, cfg.Budget)
	defer cancel()

	results := make([]Outcome, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			results[w] = attempt(ctx, events, groups, cfg, int64(w*104729+1))
			return nil
		})
	}
	_ = g.Wait() // attempt never returns an error; it only respects ctx

	best := results[0]
	for _, r := range results[1:] {
		if r.Conflicts < best.Conflicts {
			best = r
		}
	}
	log.Infof("solver: best of %d restarts has %d conflicts", cfg.Workers, best.Conflicts)
	return best
}

// attempt runs one construct+repair cycle on a private copy of events, so
// parallel restarts never share mutable state.
func attempt(ctx context.Context, events []domain.MeetingEvent, groups []csp.Group, cfg Config, seed int64) Outcome {
	work := make([]domain.MeetingEvent, len(events))
	copy(work, events)
	rng := rand.New(rand.NewSource(seed))

	groupOf := groupIndexByEvent(groups, len(work))
	construct(work, groups, rng, cfg)
	conflicts := repair(ctx, work, groups, groupOf, rng, cfg)
	return Outcome{Events: work, Conflicts: conflicts}
}

// groupIndexByEvent maps each event index to the index of the group
// (csp.BuildGroups) it belongs to, so a teacher move on one event can be
// propagated to every event that must share its teacher.
func groupIndexByEvent(groups []csp.Group, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = -1
	}
	for gi, g := range groups {
		for _, i := range g.Events {
			idx[i] = gi
		}
	}
	return idx
}

// construct performs the greedy initial placement: pick a candidate
// teacher per group (randomized per restart, so different parallel
// attempts explore different points of the teacher-index domain),
// choose a day placement per the day-pairing rule, then place each event
// at the earliest slot/room combination that doesn't conflict with what's
// been placed already.
func construct(events []domain.MeetingEvent, groups []csp.Group, rng *rand.Rand, cfg Config) {
	var placed []int

	for _, g := range groups {
		teacherIdx := 0
		if n := len(events[g.Events[0]].ValidTeachers); n > 1 {
			teacherIdx = rng.Intn(n)
		}
		for _, i := range g.Events {
			events[i].Assignment.TeacherIdx = teacherIdx
		}
		// The day-pairing heuristic still keys off the first candidate
		// teacher regardless of which one got assigned above: the first
		// candidate is the proxy for restricted-vs-full availability
		// detection, independent of which teacher the search binds.
		reference := csp.ReferenceTeacher(events, g)

		days := dayPlacementOrder(events, g, reference)

		lecture, lab, isLectureLabPair := csp.LectureLabPair(events, g)
		first, second, isSplitPair := csp.SplitNonLabPair(events, g)

		switch {
		case isLectureLabPair:
			placePaired(events, placed, lecture, lab, days, cfg)
			placed = append(placed, lecture, lab)
			for _, i := range g.Events {
				if i != lecture && i != lab {
					placeSingle(events, placed, i, days, cfg)
					placed = append(placed, i)
				}
			}
		case isSplitPair:
			placePaired(events, placed, first, second, days, cfg)
			placed = append(placed, first, second)
		default:
			for _, i := range g.Events {
				placeSingle(events, placed, i, days, cfg)
				placed = append(placed, i)
			}
		}
	}
}

// dayPlacementOrder returns the candidate (first-day, second-day) pairs to
// try, in preference order. A teacher with full availability tries the
// three canonical day pairs (MW, TTh, FS); a restricted teacher tries each
// of its available days as both halves of the pair, which construct
// collapses to "same day" placement for that group.
func dayPlacementOrder(events []domain.MeetingEvent, g csp.Group, reference domain.Teacher) [][2]domain.Day {
	if !csp.IsRestricted(reference) {
		var pairs [][2]domain.Day
		for _, p := range reference.AvailableDayPairs() {
			pairs = append(pairs, [2]domain.Day{p.First, p.Second})
		}
		if len(pairs) > 0 {
			return pairs
		}
	}
	var sameDay [][2]domain.Day
	for _, d := range reference.AvailabilityDays {
		sameDay = append(sameDay, [2]domain.Day{d, d})
	}
	if len(sameDay) == 0 {
		sameDay = [][2]domain.Day{{0, 0}}
	}
	return sameDay
}

// placePaired places two group members on the first and second day of the
// first day-option that admits a conflict-free slot/room/teacher for both.
func placePaired(events []domain.MeetingEvent, placed []int, a, b int, days [][2]domain.Day, cfg Config) {
	for _, pair := range days {
		aSlot, aRoom, ok := bestSlotRoom(events, placed, a, pair[0], cfg)
		if !ok {
			continue
		}
		events[a].Assignment.Day = pair[0]
		events[a].Assignment.Start = aSlot
		events[a].Assignment.RoomIdx = aRoom

		withA := make([]int, len(placed), len(placed)+1)
		copy(withA, placed)
		withA = append(withA, a)
		bSlot, bRoom, ok := bestSlotRoom(events, withA, b, pair[1], cfg)
		if ok {
			events[b].Assignment.Day = pair[1]
			events[b].Assignment.Start = bSlot
			events[b].Assignment.RoomIdx = bRoom
			return
		}
	}
	// No option was fully conflict-free; fall back to the least-bad
	// placement and let repair() try to fix it.
	pair := days[0]
	events[a].Assignment.Day = pair[0]
	events[a].Assignment.Start, events[a].Assignment.RoomIdx = anySlotRoom(events[a])
	events[b].Assignment.Day = pair[1]
	events[b].Assignment.Start, events[b].Assignment.RoomIdx = anySlotRoom(events[b])
}

func placeSingle(events []domain.MeetingEvent, placed []int, i int, days [][2]domain.Day, cfg Config) {
	for _, pair := range days {
		for _, d := range []domain.Day{pair[0], pair[1]} {
			slot, room, ok := bestSlotRoom(events, placed, i, d, cfg)
			if ok {
				events[i].Assignment.Day = d
				events[i].Assignment.Start = slot
				events[i].Assignment.RoomIdx = room
				return
			}
		}
	}
	events[i].Assignment.Day = days[0][0]
	events[i].Assignment.Start, events[i].Assignment.RoomIdx = anySlotRoom(events[i])
}

// bestSlotRoom scans start slots (earliest first) and rooms for the first
// combination that conflicts with nothing already placed.
func bestSlotRoom(events []domain.MeetingEvent, placed []int, i int, day domain.Day, cfg Config) (slot, room int, ok bool) {
	e := events[i]
	latest := domain.LatestStart(e.DurationSlots)
	for s := 0; s <= latest; s++ {
		for r := range e.ValidRooms {
			candidate := e
			candidate.Assignment = domain.Assignment{Day: day, Start: s, TeacherIdx: e.Assignment.TeacherIdx, RoomIdx: r}
			if !conflictsWithAny(events, placed, i, candidate, cfg) {
				return s, r, true
			}
		}
	}
	return 0, 0, false
}

func anySlotRoom(e domain.MeetingEvent) (int, int) {
	return 0, 0
}

func conflictsWithAny(events []domain.MeetingEvent, placed []int, i int, candidate domain.MeetingEvent, cfg Config) bool {
	if cfg.EnforceAvailability && csp.ViolatesAvailability(candidate) {
		return true
	}
	for _, j := range placed {
		other := events[j]
		if csp.TeachersOverlap(candidate, other) || csp.SectionsOverlap(candidate, other) {
			return true
		}
		if cfg.EnforceRooms && csp.RoomsOverlap(candidate, other) {
			return true
		}
	}
	return false
}

// repair runs a simulated-annealing style local search: repeatedly pick a
// random event, propose a new day/start/room/teacher, and accept the move
// if it does not increase the combined score (ten points per hard conflict
// plus the soft room-distribution term, or, with decreasing probability as
// the run cools, even if it does). The loop stops as soon as no hard
// conflict remains. Returns the final *hard* conflict count — the soft
// term never leaks into what callers use to judge feasibility.
func repair(ctx context.Context, events []domain.MeetingEvent, groups []csp.Group, groupOf []int, rng *rand.Rand, cfg Config) int {
	hard, score := countConflicts(events, groups, cfg)
	if hard == 0 || len(events) == 0 {
		return hard
	}

	temperature := 10.0
	const coolingRate = 0.995
	iterations := 200 * len(events)

	for it := 0; it < iterations && hard > 0; it++ {
		select {
		case <-ctx.Done():
			return hard
		default:
		}

		i := rng.Intn(len(events))
		kind := rng.Intn(4)
		touched := touchedIndices(groups, groupOf, i, kind)

		before := make([]domain.Assignment, len(touched))
		for k, j := range touched {
			before[k] = events[j].Assignment
		}

		applyMove(events, groups, groupOf, i, kind, rng)
		hardAfter, scoreAfter := countConflicts(events, groups, cfg)

		delta := scoreAfter - score
		accept := delta <= 0
		if !accept && temperature > 0.01 {
			accept = rng.Float64() < math.Exp(-float64(delta)/temperature)
		}

		if accept {
			hard, score = hardAfter, scoreAfter
		} else {
			for k, j := range touched {
				events[j].Assignment = before[k]
			}
		}
		temperature *= coolingRate
	}
	return hard
}

// touchedIndices returns the event indices a move of the given kind will
// mutate: a lone event for day/start/room moves, or the whole owning
// group for a teacher move, since every event in a (section, subject)
// group must keep sharing one teacher.
func touchedIndices(groups []csp.Group, groupOf []int, i, kind int) []int {
	if kind == 3 {
		if gi := groupOf[i]; gi >= 0 {
			return groups[gi].Events
		}
	}
	return []int{i}
}

// applyMove mutates event i's day, start, or room, or — for kind 3 —
// reassigns its whole group to a different candidate teacher.
func applyMove(events []domain.MeetingEvent, groups []csp.Group, groupOf []int, i, kind int, rng *rand.Rand) {
	e := &events[i]
	switch kind {
	case 0:
		if e.Assignment.TeacherIdx >= 0 && e.Assignment.TeacherIdx < len(e.ValidTeachers) {
			if days := e.Teacher().AvailabilityDays; len(days) > 0 {
				e.Assignment.Day = days[rng.Intn(len(days))]
				return
			}
		}
		e.Assignment.Day = domain.Day(rng.Intn(domain.NumDays))
	case 1:
		latest := domain.LatestStart(e.DurationSlots)
		e.Assignment.Start = rng.Intn(latest + 1)
	case 2:
		if len(e.ValidRooms) > 0 {
			e.Assignment.RoomIdx = rng.Intn(len(e.ValidRooms))
		}
	default:
		n := len(e.ValidTeachers)
		if n <= 1 {
			return
		}
		newIdx := rng.Intn(n)
		for _, j := range touchedIndices(groups, groupOf, i, kind) {
			events[j].Assignment.TeacherIdx = newIdx
		}
	}
}

// countConflicts returns the real hard constraint-violation count (teacher
// and section conflicts, plus — when enforced — room, availability, and
// day-pairing conflicts) separately from score, which folds in a soft
// room-distribution term on top of the same hard count. Callers gate and
// compare feasibility on hard alone; score is used only by repair's
// acceptance test, which runs only while hard conflicts remain.
func countConflicts(events []domain.MeetingEvent, groups []csp.Group, cfg Config) (hard, score int) {
	for i := 0; i < len(events); i++ {
		if cfg.EnforceAvailability && csp.ViolatesAvailability(events[i]) {
			hard++
		}
		for j := i + 1; j < len(events); j++ {
			if csp.TeachersOverlap(events[i], events[j]) {
				hard++
			}
			if csp.SectionsOverlap(events[i], events[j]) {
				hard++
			}
			if cfg.EnforceRooms && csp.RoomsOverlap(events[i], events[j]) {
				hard++
			}
		}
	}
	if cfg.EnforcePairing {
		for _, g := range groups {
			if csp.PairViolated(events, g) {
				hard++
			}
		}
	}
	return hard, hard*10 + roomImbalance(events)
}

// roomImbalance is a small objective term favoring spread-out room usage:
// the variance-like sum of (uses - average)^2 over every candidate room,
// unused ones counting as zero uses. It is not scaled: countConflicts adds
// it to ten times the hard count, so a large imbalance can outweigh a
// single conflict in repair's acceptance test.
func roomImbalance(events []domain.MeetingEvent) int {
	counts := make(map[string]int)
	for _, e := range events {
		for _, r := range e.ValidRooms {
			if _, ok := counts[r.ID]; !ok {
				counts[r.ID] = 0
			}
		}
	}
	for _, e := range events {
		if e.Assignment.RoomIdx < 0 || e.Assignment.RoomIdx >= len(e.ValidRooms) {
			continue
		}
		counts[e.Room().ID]++
	}
	if len(counts) == 0 {
		return 0
	}
	avg := float64(len(events)) / float64(len(counts))
	var variance float64
	for _, c := range counts {
		d := float64(c) - avg
		variance += d * d
	}
	return int(variance)
}
