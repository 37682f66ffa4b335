package runtime

import (
	"chat-relay/domain"
	"chat-relay/mocks"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPresenceNotifier_Broadcasts_To_Online_Contacts_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	registry := NewRegistry()
	notifier := NewPresenceNotifier(testLog, registry, store)

	alice, bob, carol, dave := newUserID(), newUserID(), newUserID(), newUserID()
	aliceConn := newFakeConn(alice)
	bobPhone, bobLaptop := newFakeConn(bob), newFakeConn(bob)
	carolConn := newFakeConn(carol)
	registry.Add(alice, aliceConn)
	registry.Add(bob, bobPhone)
	registry.Add(bob, bobLaptop)
	registry.Add(carol, carolConn)

	// Given alice talked with bob and dave, and her own id leaked into the list
	store.EXPECT().DistinctContactsOf(gomock.Any(), alice).
		Return([]domain.UserID{bob, dave, alice, bob}, nil)

	// When alice goes online
	result, err := notifier.BroadcastStatus(context.Background(), alice, true)
	req.NoError(err)

	// Then both bob devices hear it once, carol is no contact and dave is offline
	req.Equal(domain.DeliveryResult{Delivered: true, Targets: 2}, result)
	want := domain.Event{Name: domain.EventUserStatus, Payload: domain.StatusEvent{UserID: alice, Online: true}}
	req.Equal([]domain.Event{want}, bobPhone.received())
	req.Equal([]domain.Event{want}, bobLaptop.received())
	req.Empty(carolConn.received())
	req.Empty(aliceConn.received())
}

func TestPresenceNotifier_No_Contacts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	notifier := NewPresenceNotifier(testLog, NewRegistry(), store)
	alice := newUserID()

	store.EXPECT().DistinctContactsOf(gomock.Any(), alice).Return(nil, nil)

	result, err := notifier.BroadcastStatus(context.Background(), alice, false)
	req.NoError(err)
	req.False(result.Delivered)
}

func TestPresenceNotifier_Failing_Connection_Does_Not_Stop_Others(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	registry := NewRegistry()
	notifier := NewPresenceNotifier(testLog, registry, store)

	alice, bob, carol := newUserID(), newUserID(), newUserID()
	bobConn, carolConn := newFakeConn(bob), newFakeConn(carol)
	bobConn.broken = true
	registry.Add(bob, bobConn)
	registry.Add(carol, carolConn)
	store.EXPECT().DistinctContactsOf(gomock.Any(), alice).Return([]domain.UserID{bob, carol}, nil)

	result, err := notifier.BroadcastStatus(context.Background(), alice, false)
	req.NoError(err)

	req.Equal(domain.DeliveryResult{Delivered: true, Targets: 1, Failed: 1}, result)
	req.Len(carolConn.received(), 1)
	req.Equal(domain.StatusEvent{UserID: alice, Online: false}, carolConn.received()[0].Payload)
}

func TestPresenceNotifier_Store_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIMessageStore(ctrl)
	notifier := NewPresenceNotifier(testLog, NewRegistry(), store)
	alice := newUserID()
	boom := stderrors.New("badger: closed")

	store.EXPECT().DistinctContactsOf(gomock.Any(), alice).Return(nil, boom)

	result, err := notifier.BroadcastStatus(context.Background(), alice, true)
	req.ErrorIs(err, boom)
	req.Equal(domain.DeliveryResult{}, result)
}
