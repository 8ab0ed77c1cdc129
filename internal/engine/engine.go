// Package engine wires the catalog loader, demand expander, eligibility
// filter, solver, decoder, and validator into the single call the engine
// exposes: Generate(ctx, Input, logger) Result.
package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campustt/timetable-engine/internal/catalog"
	"github.com/campustt/timetable-engine/internal/decode"
	"github.com/campustt/timetable-engine/internal/domain"
	"github.com/campustt/timetable-engine/internal/expand"
	"github.com/campustt/timetable-engine/internal/numeric"
	"github.com/campustt/timetable-engine/internal/solver"
	"github.com/campustt/timetable-engine/internal/validate"
)

// Input is the single request shape Generate accepts.
type Input struct {
	Subjects []catalog.SubjectRow
	Teachers []catalog.TeacherRow
	Rooms    []catalog.RoomRow

	// SemesterFilter accepts a string or an int; 0/"" means unfiltered.
	SemesterFilter any

	// ProgramSections maps program -> year level -> section count.
	ProgramSections map[string]map[int]int

	// Programs defaults to ["CS"] when empty.
	Programs []string
}

// Generate runs the full pipeline: load the catalog, expand demand into
// meeting events, solve (with a fallback model on timeout/infeasibility),
// decode, and validate. It never panics or returns an error for
// data-quality problems or infeasibility — those are logged into the
// returned Result instead.
func Generate(ctx context.Context, in Input, logger *zap.Logger) Result {
	runID := uuid.NewString()
	rec := NewRecorder(logger, runID)

	rec.Infof("starting schedule generation (run %s)", runID)

	loader := catalog.NewLoader()
	subjects := loader.LoadSubjects(in.Subjects, rec)
	teachers := loader.LoadTeachers(in.Teachers, rec)
	rooms := loader.LoadRooms(in.Rooms, rec)

	if len(teachers) == 0 {
		rec.Warnf("no valid teacher data loaded, cannot generate schedule")
		return Result{Schedule: nil, Logs: rec.Lines()}
	}

	programs := resolvePrograms(in.Programs)
	counts := resolveSectionCounts(in.ProgramSections)
	semesterFilter := numeric.SafeInt(in.SemesterFilter)

	events := expand.Expand(
		expand.Catalog{Subjects: subjects, Teachers: teachers, Rooms: rooms},
		expand.Request{Programs: programs, SectionCounts: counts, SemesterFilter: semesterFilter},
		rec,
	)
	if len(events) == 0 {
		rec.Warnf("no meeting events generated; nothing to schedule")
		return Result{Schedule: nil, Logs: rec.Lines()}
	}
	rec.Infof("expanded %d meeting events", len(events))

	rec.Infof("solving primary model...")
	outcome := solver.Solve(ctx, events, solver.PrimaryConfig, rec)
	if outcome.Conflicts > 0 {
		rec.Warnf("primary model did not fully resolve (%d conflicts); retrying with fallback model", outcome.Conflicts)
		fallback := solver.Solve(ctx, events, solver.FallbackConfig, rec)
		if fallback.Conflicts < outcome.Conflicts {
			outcome = fallback
		}
	}

	if outcome.Conflicts > 0 {
		rec.Warnf("no feasible schedule found (%d conflicts remain after primary and fallback models); returning empty schedule", outcome.Conflicts)
		return Result{Schedule: nil, Logs: rec.Lines()}
	}

	records := decode.Decode(outcome.Events)
	validate.Schedule(records, rec)

	rec.Infof("schedule generation complete: %d meetings", len(records))
	return Result{Schedule: records, Logs: rec.Lines()}
}

// Result is the engine's output envelope.
type Result = domain.Result

func resolvePrograms(in []string) []domain.Program {
	if len(in) == 0 {
		return []domain.Program{domain.ProgramCS}
	}
	out := make([]domain.Program, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Program(p))
	}
	return out
}

func resolveSectionCounts(in map[string]map[int]int) map[domain.Program]map[int]int {
	out := make(map[domain.Program]map[int]int, len(in))
	for program, years := range in {
		out[domain.Program(program)] = years
	}
	return out
}
