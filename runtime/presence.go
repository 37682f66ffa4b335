package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// PresenceNotifier tells a user's contacts that the user went online or offline.
// Contacts are recomputed from the message store at every call.
type PresenceNotifier struct {
	log      *slog.Logger
	registry contract.IRegistry
	store    contract.IMessageStore
}

func NewPresenceNotifier(log *slog.Logger, registry contract.IRegistry, store contract.IMessageStore) *PresenceNotifier {
	return &PresenceNotifier{log: log, registry: registry, store: store}
}

// BroadcastStatus delivers user:status to every live connection of every
// online contact of userID. Offline contacts are skipped, nothing is queued.
func (p *PresenceNotifier) BroadcastStatus(ctx context.Context, userID domain.UserID, online bool) (domain.DeliveryResult, error) {
	contacts, err := p.store.DistinctContactsOf(ctx, userID)
	if err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("contacts of %s: %w", userID, err)
	}
	contacts = lo.Uniq(lo.Without(contacts, userID))

	evt := domain.Event{
		Name:    domain.EventUserStatus,
		Payload: domain.StatusEvent{UserID: userID, Online: online},
	}

	var result domain.DeliveryResult
	for _, contact := range contacts {
		conns := p.registry.HandlesFor(contact)
		if len(conns) == 0 {
			continue
		}
		result = result.Merge(Fanout(p.log, conns, evt))
	}

	p.log.Debug("Presence broadcast",
		"user_id", userID,
		"online", online,
		"contacts", len(contacts),
		"targets", result.Targets,
		"failed", result.Failed)
	return result, nil
}
