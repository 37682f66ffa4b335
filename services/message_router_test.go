package services

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/runtime"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	registry *runtime.Registry
	messages *mocks.MockIMessageStore
	users    *mocks.MockIUserStore
	router   *MessageRouter
}

func newRouterFixture(t *testing.T) routerFixture {
	ctrl := gomock.NewController(t)
	registry := runtime.NewRegistry()
	messages := mocks.NewMockIMessageStore(ctrl)
	users := mocks.NewMockIUserStore(ctrl)
	return routerFixture{
		registry: registry,
		messages: messages,
		users:    users,
		router:   NewMessageRouter(testLog, registry, messages, users, 20),
	}
}

func storedMessage(sender, receiver domain.UserID, content string) domain.Message {
	return domain.Message{
		ID:         uuid.NewString(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestMessageRouter_Send_To_Offline_Receiver(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alice, bob := newUserID(), newUserID()
	origin := newConn(alice, "alice")
	persisted := storedMessage(alice, bob, "hi")

	// Given bob exists but has no live connection
	f.users.EXPECT().GetUser(gomock.Any(), bob).Return(domain.User{ID: bob, Username: "bob"}, nil)
	// Then the message is still persisted
	f.messages.EXPECT().CreateMessage(gomock.Any(), alice, bob, "hi").Return(persisted, nil).Times(1)

	message, result, err := f.router.Send(context.Background(), origin,
		domain.SendMessageRequest{Content: "hi", ReceiverID: string(bob)})

	req.NoError(err)
	req.Equal(persisted, message)
	// And nothing was pushed to bob
	req.False(result.Delivered)
	req.Zero(result.Targets)
	// And alice got her confirmation
	req.Len(origin.named(domain.EventMessageSent), 1)
}

func TestMessageRouter_Send_Fans_Out_To_Every_Receiver_Connection(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alice, bob := newUserID(), newUserID()
	persisted := storedMessage(alice, bob, "hi")

	// Given alice has two devices and bob two devices
	origin, otherAliceDevice := newConn(alice, "alice"), newConn(alice, "alice")
	bobPhone, bobLaptop := newConn(bob, "bob"), newConn(bob, "bob")
	f.registry.Add(alice, origin)
	f.registry.Add(alice, otherAliceDevice)
	f.registry.Add(bob, bobPhone)
	f.registry.Add(bob, bobLaptop)

	f.users.EXPECT().GetUser(gomock.Any(), bob).Return(domain.User{ID: bob, Username: "bob"}, nil)
	f.messages.EXPECT().CreateMessage(gomock.Any(), alice, bob, "hi").Return(persisted, nil)

	_, result, err := f.router.Send(context.Background(), origin,
		domain.SendMessageRequest{Content: "hi", ReceiverID: string(bob)})
	req.NoError(err)
	req.Equal(2, result.Targets)

	// Then both of bob's connections receive the same payload
	phone := bobPhone.named(domain.EventMessageReceived)
	laptop := bobLaptop.named(domain.EventMessageReceived)
	req.Len(phone, 1)
	req.Len(laptop, 1)
	req.Equal(phone[0], laptop[0])

	payload := phone[0].Payload.(domain.MessagePayload)
	req.Equal(persisted, payload.Message)
	req.Equal(domain.UserSummary{ID: alice, Username: "alice"}, *payload.Sender)
	req.Equal(domain.UserSummary{ID: bob, Username: "bob"}, *payload.Receiver)

	// And only the issuing connection gets message:sent
	sent := origin.named(domain.EventMessageSent)
	req.Len(sent, 1)
	req.Equal(persisted.ID, sent[0].Payload.(domain.MessagePayload).Message.ID)
	req.Zero(otherAliceDevice.count())
}

func TestMessageRouter_Send_Rejections(t *testing.T) {
	alice, bob := newUserID(), newUserID()

	tests := []struct {
		name    string
		request domain.SendMessageRequest
		expect  func(f routerFixture)
		want    error
	}{
		{
			name:    "empty content",
			request: domain.SendMessageRequest{Content: "", ReceiverID: string(bob)},
			want:    errors.ErrValidation,
		},
		{
			name:    "content too long",
			request: domain.SendMessageRequest{Content: strings.Repeat("a", 21), ReceiverID: string(bob)},
			want:    errors.ErrValidation,
		},
		{
			name:    "malformed receiver",
			request: domain.SendMessageRequest{Content: "hi", ReceiverID: "bob"},
			want:    errors.ErrValidation,
		},
		{
			name:    "unknown receiver",
			request: domain.SendMessageRequest{Content: "hi", ReceiverID: string(bob)},
			expect: func(f routerFixture) {
				f.users.EXPECT().GetUser(gomock.Any(), bob).Return(domain.User{}, errors.ErrNotFound)
			},
			want: errors.ErrNotFound,
		},
		{
			name:    "message to self",
			request: domain.SendMessageRequest{Content: "hi", ReceiverID: string(alice)},
			expect: func(f routerFixture) {
				f.users.EXPECT().GetUser(gomock.Any(), alice).Return(domain.User{ID: alice}, nil)
			},
			want: errors.ErrSelfMessage,
		},
		{
			name:    "store down",
			request: domain.SendMessageRequest{Content: "hi", ReceiverID: string(bob)},
			expect: func(f routerFixture) {
				f.users.EXPECT().GetUser(gomock.Any(), bob).Return(domain.User{ID: bob}, nil)
				f.messages.EXPECT().CreateMessage(gomock.Any(), alice, bob, "hi").
					Return(domain.Message{}, stderrors.New("badger: closed"))
			},
			want: errors.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newRouterFixture(t)
			origin := newConn(alice, "alice")
			receiverConn := newConn(bob, "bob")
			f.registry.Add(bob, receiverConn)
			if tt.expect != nil {
				tt.expect(f)
			}

			_, result, err := f.router.Send(context.Background(), origin, tt.request)

			req.ErrorIs(err, tt.want)
			req.False(result.Delivered)
			// Nobody hears about a failed send
			req.Zero(origin.count())
			req.Zero(receiverConn.count())
		})
	}
}

func TestMessageRouter_Send_Censors_Content(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newRouterFixture(t)
	censor := mocks.NewMockCensor(ctrl)
	f.router.WithCensor(censor)
	alice, bob := newUserID(), newUserID()

	f.users.EXPECT().GetUser(gomock.Any(), bob).Return(domain.User{ID: bob}, nil)
	censor.EXPECT().Censor("you badger").Return(domain.CensorResult{Content: "you ******", Words: []string{"badger"}})
	// Then the censored version is what gets stored
	f.messages.EXPECT().CreateMessage(gomock.Any(), alice, bob, "you ******").
		Return(storedMessage(alice, bob, "you ******"), nil)

	message, _, err := f.router.Send(context.Background(), newConn(alice, "alice"),
		domain.SendMessageRequest{Content: "you badger", ReceiverID: string(bob)})
	req.NoError(err)
	req.Equal("you ******", message.Content)
}

func TestMessageRouter_Send_Broken_Receiver_Connection_Does_Not_Stop_Others(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alice, bob := newUserID(), newUserID()
	broken, healthy := newConn(bob, "bob"), newConn(bob, "bob")
	broken.broken = true
	f.registry.Add(bob, broken)
	f.registry.Add(bob, healthy)

	f.users.EXPECT().GetUser(gomock.Any(), bob).Return(domain.User{ID: bob}, nil)
	f.messages.EXPECT().CreateMessage(gomock.Any(), alice, bob, "hi").Return(storedMessage(alice, bob, "hi"), nil)

	_, result, err := f.router.Send(context.Background(), newConn(alice, "alice"),
		domain.SendMessageRequest{Content: "hi", ReceiverID: string(bob)})
	req.NoError(err)
	req.Equal(domain.DeliveryResult{Delivered: true, Targets: 1, Failed: 1}, result)
	req.Len(healthy.named(domain.EventMessageReceived), 1)
}

func TestMessageRouter_MarkRead(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alice, bob := newUserID(), newUserID()
	aliceConn := newConn(alice, "alice")
	f.registry.Add(alice, aliceConn)
	message := storedMessage(alice, bob, "hi")
	read := message
	read.Read = true

	// Given the first read flips the flag and the second finds it already read
	gomock.InOrder(
		f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil),
		f.messages.EXPECT().SetRead(gomock.Any(), message.ID).Return(read, true, nil),
		f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(read, nil),
	)

	result, err := f.router.MarkRead(context.Background(), bob, message.ID)
	req.NoError(err)
	req.Equal(1, result.Targets)

	result, err = f.router.MarkRead(context.Background(), bob, message.ID)
	req.NoError(err)
	req.False(result.Delivered)

	// Then alice received exactly one receipt
	receipts := aliceConn.named(domain.EventMessageRead)
	req.Len(receipts, 1)
	req.Equal(domain.ReadPayload{MessageID: message.ID, ReadBy: bob}, receipts[0].Payload)
}

func TestMessageRouter_MarkRead_Lost_Race_Sends_Nothing(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alice, bob := newUserID(), newUserID()
	aliceConn := newConn(alice, "alice")
	f.registry.Add(alice, aliceConn)
	message := storedMessage(alice, bob, "hi")

	// Given another reader flipped the flag between the check and the write
	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil)
	f.messages.EXPECT().SetRead(gomock.Any(), message.ID).Return(message, false, nil)

	result, err := f.router.MarkRead(context.Background(), bob, message.ID)
	req.NoError(err)
	req.False(result.Delivered)
	req.Zero(aliceConn.count())
}

func TestMessageRouter_MarkRead_Rejections(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alice, bob, eve := newUserID(), newUserID(), newUserID()
	message := storedMessage(alice, bob, "hi")

	// Unknown id
	unknown := uuid.NewString()
	f.messages.EXPECT().GetMessage(gomock.Any(), unknown).Return(domain.Message{}, errors.ErrNotFound)
	_, err := f.router.MarkRead(context.Background(), bob, unknown)
	req.ErrorIs(err, errors.ErrNotFound)

	// Malformed id never reaches the store
	_, err = f.router.MarkRead(context.Background(), bob, "42")
	req.ErrorIs(err, errors.ErrNotFound)

	// Only the receiver may mark it read, the sender included
	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil).Times(2)
	_, err = f.router.MarkRead(context.Background(), eve, message.ID)
	req.ErrorIs(err, errors.ErrUnauthorized)
	_, err = f.router.MarkRead(context.Background(), alice, message.ID)
	req.ErrorIs(err, errors.ErrUnauthorized)
}

func TestMessageRouter_History(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alice, bob := newUserID(), newUserID()
	page := domain.HistoryPage{Messages: []domain.Message{storedMessage(bob, alice, "hey")}}

	f.users.EXPECT().UserExists(gomock.Any(), bob).Return(true, nil)
	f.messages.EXPECT().History(gomock.Any(), alice, bob, nil, 10).Return(page, nil)

	got, err := f.router.History(context.Background(), alice, string(bob), nil, 10)
	req.NoError(err)
	req.Equal(page, got)

	_, err = f.router.History(context.Background(), alice, "not-a-uuid", nil, 10)
	req.ErrorIs(err, errors.ErrValidation)

	// An unknown peer never reaches the message store
	stranger := newUserID()
	f.users.EXPECT().UserExists(gomock.Any(), stranger).Return(false, nil)
	_, err = f.router.History(context.Background(), alice, string(stranger), nil, 10)
	req.ErrorIs(err, errors.ErrNotFound)
}
