package index

import (
	"log/slog"
	"time"
)

// EventType labels the outcome of an ingestion attempt.
type EventType string

const (
	// EventRecordIndexed means the record was decoded and both index
	// structures were updated (or the record decoded to zero columns).
	EventRecordIndexed EventType = "record_indexed"

	// EventRecordRejected means ingestion aborted before touching the
	// index structures.
	EventRecordRejected EventType = "record_rejected"
)

// Event describes one ingestion attempt.
type Event struct {
	Type      EventType
	Key       []byte    // source key as passed by the caller; not retained
	Columns   int       // decoded column count (0 when decoding failed)
	Err       error     // nil for EventRecordIndexed
	Timestamp time.Time // when the attempt finished
}

// Observer receives an Event after every ingestion attempt.
//
// OnEvent is called synchronously from Index, outside the index locks, so
// a slow observer delays the ingestion stream but never blocks readers.
// The Key slice is only valid for the duration of the call.
type Observer interface {
	OnEvent(event Event)
}

// notify delivers an event to the configured observer, if any.
func (r *Rover) notify(typ EventType, key []byte, columns int, err error) {
	if r.obs == nil {
		return
	}

	r.obs.OnEvent(Event{
		Type:      typ,
		Key:       key,
		Columns:   columns,
		Err:       err,
		Timestamp: time.Now(),
	})
}

// LoggingObserver logs every ingestion event using structured logging.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates an observer logging through the given
// logger, or slog.Default() when logger is nil.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface.
func (lo *LoggingObserver) OnEvent(event Event) {
	if event.Err != nil {
		lo.logger.Warn("record rejected",
			"event", event.Type,
			"key", string(event.Key),
			"columns", event.Columns,
			"err", event.Err,
		)

		return
	}

	lo.logger.Debug("record indexed",
		"event", event.Type,
		"key", string(event.Key),
		"columns", event.Columns,
	)
}
