package repositories

import (
	"bytes"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 50
	maxConflictRetries  = 5
)

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages int
	now           func() time.Time
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages int) *MessageRepository {
	if limitMessages <= 0 {
		limitMessages = defaultHistoryLimit
	}
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages, now: time.Now}
}

// Keys:
//
//	msg:{id}                                    -> encoded message
//	conv:{low}:{high}:{unix_nanos_padded}:{id}  -> message id, history index
//	contact:{user}:{other}                      -> empty, one per direction
//
// The 19-digit zero padding keeps lexicographical order chronological.
func messageKey(id string) []byte {
	return []byte("msg:" + id)
}

func conversationPrefix(a, b domain.UserID) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("conv:%s:%s:", a, b)
}

func conversationKey(m domain.Message) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s",
		conversationPrefix(m.SenderID, m.ReceiverID), m.CreatedAt.UnixNano(), m.ID))
}

func contactPrefix(userID domain.UserID) string {
	return fmt.Sprintf("contact:%s:", userID)
}

// CreateMessage stores the message, its history entry and the contact index
// in a single transaction.
func (r *MessageRepository) CreateMessage(ctx context.Context, senderID, receiverID domain.UserID, content string) (domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  r.now().UTC(),
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(message.ID), encodeMessage(message)); err != nil {
			return err
		}
		if err := txn.Set(conversationKey(message), []byte(message.ID)); err != nil {
			return err
		}
		if err := txn.Set([]byte(contactPrefix(senderID)+string(receiverID)), nil); err != nil {
			return err
		}
		return txn.Set([]byte(contactPrefix(receiverID)+string(senderID)), nil)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (r *MessageRepository) GetMessage(ctx context.Context, id string) (domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}
	var message domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		message, err = getMessage(txn, id)
		return err
	})
	return message, err
}

func getMessage(txn *badger.Txn, id string) (domain.Message, error) {
	item, err := txn.Get(messageKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Message{}, fmt.Errorf("%w: message %s", errors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Message{}, err
	}
	var message domain.Message
	err = item.Value(func(val []byte) error {
		message, err = decodeMessage(val)
		return err
	})
	return message, err
}

// SetRead flips the read flag inside one read-write transaction.
// Badger aborts the later of two concurrent transactions touching the same
// key with ErrConflict; the retry then observes the flag already set, so
// exactly one caller gets changed == true.
func (r *MessageRepository) SetRead(ctx context.Context, id string) (domain.Message, bool, error) {
	var (
		message domain.Message
		changed bool
	)
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.Message{}, false, err
		}
		changed = false
		err := r.db.Update(func(txn *badger.Txn) error {
			var err error
			message, err = getMessage(txn, id)
			if err != nil {
				return err
			}
			if message.Read {
				return nil
			}
			message.Read = true
			changed = true
			return txn.Set(messageKey(id), encodeMessage(message))
		})
		if stderrors.Is(err, badger.ErrConflict) {
			r.log.Debug("Read flag conflict, retrying", "message_id", id, "attempt", attempt)
			continue
		}
		return message, changed, err
	}
	return domain.Message{}, false, badger.ErrConflict
}

// DistinctContactsOf lists every user that exchanged at least one message
// with userID, using the contact index maintained by CreateMessage.
func (r *MessageRepository) DistinctContactsOf(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var contacts []domain.UserID
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(contactPrefix(userID))
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			contact := domain.UserID(bytes.TrimPrefix(it.Item().Key(), prefix))
			if contact != userID {
				contacts = append(contacts, contact)
			}
		}
		return nil
	})
	return contacts, err
}

// History pages through the conversation between userID and peerID, newest first.
// cursor is the key suffix returned by the previous page; nil starts from the newest message.
func (r *MessageRepository) History(ctx context.Context, userID, peerID domain.UserID, cursor *string, limit int) (domain.HistoryPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.HistoryPage{}, err
	}
	if limit <= 0 || limit > r.limitMessages {
		limit = r.limitMessages
	}
	prefixStr := conversationPrefix(userID, peerID)
	prefix := []byte(prefixStr)

	var (
		page    domain.HistoryPage
		lastKey string
		ids     []string
		more    bool
	)
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Highest possible timestamp, then walk back in time
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999;")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && strings.HasSuffix(string(it.Item().Key()), *cursor) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			// One more key past a full page means a next page exists
			if len(ids) == limit {
				more = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			if err := item.Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			}); err != nil {
				return err
			}
		}

		for _, id := range ids {
			message, err := getMessage(txn, id)
			if err != nil {
				return err
			}
			page.Messages = append(page.Messages, message)
		}
		return nil
	})
	if err != nil {
		return domain.HistoryPage{}, err
	}
	if more {
		page.Cursor = &lastKey
	}
	return page, nil
}
