// Package runtime holds the in-memory presence state and the fan-out machinery.
// It contains no persistence and no transport logic.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

const defaultShardCount = 64

// presenceEntry is the live connection set of one user.
// An empty presenceEntry never stays in a shard.
type presenceEntry map[domain.ConnectionID]contract.Connection

type shard struct {
	mu    sync.RWMutex
	users map[domain.UserID]presenceEntry
}

// Registry is the single source of truth for presence.
//
// Users are spread over independent shards, each guarded by its own lock, so
// every operation on one user key is linearizable while users living in
// other shards proceed in parallel. Removing the last connection deletes the
// entry in the same critical section: readers either see live handles or no
// entry at all.
type Registry struct {
	shards []*shard
}

func NewRegistry() *Registry {
	return NewRegistryWithShards(defaultShardCount)
}

func NewRegistryWithShards(count int) *Registry {
	if count <= 0 {
		count = defaultShardCount
	}
	shards := make([]*shard, count)
	for i := range shards {
		shards[i] = &shard{users: make(map[domain.UserID]presenceEntry)}
	}
	return &Registry{shards: shards}
}

func (r *Registry) shardFor(userID domain.UserID) *shard {
	return r.shards[xxhash.Sum64String(string(userID))%uint64(len(r.shards))]
}

// Add registers conn for userID, creating the entry if needed.
// Registering the same connection twice keeps a single handle.
// It reports whether the user just came online.
func (r *Registry) Add(userID domain.UserID, conn contract.Connection) bool {
	s := r.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.users[userID]
	if !ok {
		entry = make(presenceEntry)
		s.users[userID] = entry
	}
	entry[conn.ID()] = conn
	return !ok
}

// Remove drops connID from userID's entry and deletes the entry once empty.
// Unknown users or connections are ignored, duplicate disconnects happen.
// It reports whether the user just went offline.
func (r *Registry) Remove(userID domain.UserID, connID domain.ConnectionID) bool {
	s := r.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.users[userID]
	if !ok {
		return false
	}
	if _, exists := entry[connID]; !exists {
		return false
	}
	delete(entry, connID)
	if len(entry) == 0 {
		delete(s.users, userID)
		return true
	}
	return false
}

func (r *Registry) IsOnline(userID domain.UserID) bool {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok
}

// HandlesFor returns a snapshot of the live connections of userID.
// The slice is owned by the caller and is nil when the user is offline.
func (r *Registry) HandlesFor(userID domain.UserID) []contract.Connection {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.users[userID]
	if !ok {
		return nil
	}
	return lo.Values(entry)
}

func (r *Registry) BulkStatus(userIDs []domain.UserID) map[domain.UserID]bool {
	return lo.SliceToMap(userIDs, func(id domain.UserID) (domain.UserID, bool) {
		return id, r.IsOnline(id)
	})
}

// OnlineUsers lists every user holding at least one connection.
// Shards are visited one after the other, the result is not a global snapshot.
func (r *Registry) OnlineUsers() []domain.UserID {
	var users []domain.UserID
	for _, s := range r.shards {
		s.mu.RLock()
		users = append(users, lo.Keys(s.users)...)
		s.mu.RUnlock()
	}
	return users
}

// Count returns the number of online users and of live connections.
func (r *Registry) Count() (users int, connections int) {
	for _, s := range r.shards {
		s.mu.RLock()
		users += len(s.users)
		for _, entry := range s.users {
			connections += len(entry)
		}
		s.mu.RUnlock()
	}
	return users, connections
}
