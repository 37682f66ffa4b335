package repositories

import (
	"chat-relay/domain"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Records are stored in protobuf wire format so they stay readable by any
// protobuf tool and tolerate added fields.
//
//	message: 1 id, 2 sender_id, 3 receiver_id, 4 content, 5 created_at (unix nanos), 6 read
//	user:    1 id, 2 email, 3 username, 4 password_hash, 5 roles (repeated), 6 created_at (unix seconds)

func encodeMessage(m domain.Message) []byte {
	var b []byte
	b = appendString(b, 1, m.ID)
	b = appendString(b, 2, string(m.SenderID))
	b = appendString(b, 3, string(m.ReceiverID))
	b = appendString(b, 4, m.Content)
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.CreatedAt.UnixNano()))
	if m.Read {
		b = protowire.AppendTag(b, 6, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

func decodeMessage(b []byte) (domain.Message, error) {
	var m domain.Message
	err := walkFields(b, func(num protowire.Number, str string, varint uint64) {
		switch num {
		case 1:
			m.ID = str
		case 2:
			m.SenderID = domain.UserID(str)
		case 3:
			m.ReceiverID = domain.UserID(str)
		case 4:
			m.Content = str
		case 5:
			m.CreatedAt = time.Unix(0, int64(varint)).UTC()
		case 6:
			m.Read = protowire.DecodeBool(varint)
		}
	})
	return m, err
}

func encodeUser(u domain.User) []byte {
	var b []byte
	b = appendString(b, 1, string(u.ID))
	b = appendString(b, 2, u.Email)
	b = appendString(b, 3, u.Username)
	b = appendString(b, 4, u.PasswordHash)
	for _, role := range u.Roles {
		b = appendString(b, 5, role)
	}
	b = protowire.AppendTag(b, 6, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(u.CreatedAt.Unix()))
	return b
}

func decodeUser(b []byte) (domain.User, error) {
	var u domain.User
	err := walkFields(b, func(num protowire.Number, str string, varint uint64) {
		switch num {
		case 1:
			u.ID = domain.UserID(str)
		case 2:
			u.Email = str
		case 3:
			u.Username = str
		case 4:
			u.PasswordHash = str
		case 5:
			u.Roles = append(u.Roles, str)
		case 6:
			u.CreatedAt = time.Unix(int64(varint), 0).UTC()
		}
	})
	return u, err
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// walkFields visits every length-delimited and varint field of b.
// Fields of other wire types are skipped.
func walkFields(b []byte, visit func(num protowire.Number, str string, varint uint64)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("decode tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return fmt.Errorf("decode field %d: %w", num, protowire.ParseError(n))
			}
			visit(num, v, 0)
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("decode field %d: %w", num, protowire.ParseError(n))
			}
			visit(num, "", v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nil
}
