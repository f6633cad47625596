package tmdb

import (
	"strings"
	"sync"
)

// KeyRing is the rotation cursor over a fixed set of API keys.
type KeyRing struct {
	mu   sync.Mutex
	keys []string
	idx  int
}

// NewKeyRing drops blank keys and fails when nothing usable is left.
func NewKeyRing(keys ...string) (*KeyRing, error) {
	usable := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			usable = append(usable, k)
		}
	}
	if len(usable) == 0 {
		return nil, ErrNoAPIKeys
	}
	return &KeyRing{keys: usable}, nil
}

// Current returns the key requests should use right now.
func (k *KeyRing) Current() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.keys[k.idx]
}

// RotateFrom advances past failed and returns the key to retry with.
// When another request already rotated away from failed the cursor is left
// alone, so a burst of 429s moves the ring by one position only.
func (k *KeyRing) RotateFrom(failed string) string {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.keys[k.idx] == failed {
		k.idx = (k.idx + 1) % len(k.keys)
	}
	return k.keys[k.idx]
}

// Len reports how many keys the ring holds.
func (k *KeyRing) Len() int {
	return len(k.keys)
}
