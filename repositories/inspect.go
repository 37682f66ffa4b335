package repositories

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dgraph-io/badger/v4"
)

const maxDetailRunes = 40

// Entry is one decoded key of the store, for offline inspection.
type Entry struct {
	Key    string
	Kind   string
	Detail string
}

// Scan decodes up to limit entries whose key starts with prefix.
// An undecodable value is reported in Detail instead of failing the scan.
func Scan(db *badger.DB, prefix string, limit int) ([]Entry, error) {
	var entries []Entry
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if limit > 0 && len(entries) >= limit {
				return nil
			}
			item := it.Item()
			key := string(item.KeyCopy(nil))
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			entries = append(entries, describe(key, val))
		}
		return nil
	})
	return entries, err
}

func describe(key string, val []byte) Entry {
	kind, _, _ := strings.Cut(key, ":")
	entry := Entry{Key: key, Kind: kind}

	switch kind {
	case "msg":
		m, err := decodeMessage(val)
		if err != nil {
			entry.Detail = "corrupted: " + err.Error()
			break
		}
		entry.Detail = fmt.Sprintf("%s -> %s read=%t %q", m.SenderID, m.ReceiverID, m.Read, truncate(m.Content))
	case "user":
		u, err := decodeUser(val)
		if err != nil {
			entry.Detail = "corrupted: " + err.Error()
			break
		}
		entry.Detail = fmt.Sprintf("%s <%s> roles=%s", u.Username, u.Email, strings.Join(u.Roles, ","))
	case "email", "conv":
		entry.Detail = string(val)
	default:
		entry.Detail = fmt.Sprintf("%d bytes", len(val))
	}
	return entry
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxDetailRunes {
		return s
	}
	return string([]rune(s)[:maxDetailRunes]) + "…"
}
