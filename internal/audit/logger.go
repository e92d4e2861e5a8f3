package audit

import "go.uber.org/zap"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata map[string]any
}

// Logger writes one structured line per state change. It never fails
// the operation that produced the event.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) {
	fields := []zap.Field{
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
	}
	if ev.EntityID != "" {
		fields = append(fields, zap.String("entity_id", ev.EntityID))
	}
	if len(ev.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}
	l.log.Info("audit", fields...)
}
