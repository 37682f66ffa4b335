package runtime

import (
	"chat-relay/domain"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// KeyedMutex serializes work per user key using a fixed set of stripes.
// Two users may share a stripe, which only costs some parallelism.
type KeyedMutex struct {
	stripes []sync.Mutex
}

func NewKeyedMutex(stripes int) *KeyedMutex {
	if stripes <= 0 {
		stripes = defaultShardCount
	}
	return &KeyedMutex{stripes: make([]sync.Mutex, stripes)}
}

// Lock acquires the stripe of userID and returns its unlock function.
func (k *KeyedMutex) Lock(userID domain.UserID) func() {
	m := &k.stripes[xxhash.Sum64String(string(userID))%uint64(len(k.stripes))]
	m.Lock()
	return m.Unlock
}
