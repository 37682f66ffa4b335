package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"log/slog"
)

// Fanout pushes evt to every connection independently.
//
// It is best-effort: a connection whose Send fails is logged and counted,
// the remaining connections still receive the event. No retry, no queue.
func Fanout(log *slog.Logger, conns []contract.Connection, evt domain.Event) domain.DeliveryResult {
	var result domain.DeliveryResult
	for _, conn := range conns {
		if err := conn.Send(evt); err != nil {
			result.Failed++
			log.Debug("Delivery failed",
				"event", evt.Name,
				"user_id", conn.UserID(),
				"connection_id", conn.ID(),
				"error", err)
			continue
		}
		result.Targets++
	}
	result.Delivered = result.Targets > 0
	return result
}
