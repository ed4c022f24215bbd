package eventhandler

import (
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/pkg/logger"
)

// NewAuditHandler returns a catch-all subscriber that turns every
// domain event into one structured log line.
func NewAuditHandler(log *logger.Logger) shared.EventHandler {
	auditLog := log.With(logger.Component("events"))
	return func(ev shared.Event) error {
		auditLog.Info(string(ev.EventType()),
			logger.String("aggregate_id", ev.AggregateID()),
			logger.Any("payload", ev.Payload()),
		)
		return nil
	}
}
