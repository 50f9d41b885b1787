package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultSlowThreshold is the duration after which a timed operation is
// logged at WARN instead of DEBUG.
const DefaultSlowThreshold = 250 * time.Millisecond

// Timer measures one operation and logs its duration when stopped
type Timer struct {
	start     time.Time
	name      string
	log       zerolog.Logger
	threshold time.Duration
	now       func() time.Time
}

// NewTimer starts a timer for the named operation
func NewTimer(name string, log zerolog.Logger) *Timer {
	return &Timer{
		start:     time.Now(),
		name:      name,
		log:       log,
		threshold: DefaultSlowThreshold,
		now:       time.Now,
	}
}

// WithThreshold overrides the slow-operation threshold
func (t *Timer) WithThreshold(d time.Duration) *Timer {
	t.threshold = d
	return t
}

// Stop logs the elapsed time together with any extra fields and returns it
func (t *Timer) Stop(fields map[string]interface{}) time.Duration {
	duration := t.now().Sub(t.start)

	event := t.log.Debug()
	msg := "Operation completed"
	if duration > t.threshold {
		event = t.log.Warn()
		msg = "Slow operation detected"
	}

	event.
		Str("operation", t.name).
		Dur("duration_ms", duration).
		Fields(fields).
		Msg(msg)

	return duration
}
