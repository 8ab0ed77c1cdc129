package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// Recorder double-writes every log call: a structured zap event for
// operators tailing the service's logs, and a plain string appended to
// the log slice returned to callers.
type Recorder struct {
	logger *zap.Logger
	runID  string
	lines  []string
}

func NewRecorder(logger *zap.Logger, runID string) *Recorder {
	return &Recorder{logger: logger.With(zap.String("run_id", runID)), runID: runID}
}

func (r *Recorder) Infof(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.lines = append(r.lines, line)
	r.logger.Info(line)
}

func (r *Recorder) Warnf(format string, args ...any) {
	line := "Warning: " + fmt.Sprintf(format, args...)
	r.lines = append(r.lines, line)
	r.logger.Warn(line)
}

// Lines returns the accumulated plain-text log, in call order.
func (r *Recorder) Lines() []string {
	if r.lines == nil {
		return []string{}
	}
	return r.lines
}
