// Package auth gates bot access behind a static admin allow-list.
package auth

import "sync"

// Allowlist holds the set of Telegram user IDs permitted to use the bot.
// Membership is exact identity equality. The set may be replaced at runtime
// when the config file changes, hence the lock.
type Allowlist struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

// NewAllowlist builds an allow-list from the given IDs.
func NewAllowlist(ids []int64) *Allowlist {
	a := &Allowlist{}
	a.Replace(ids)
	return a
}

// Allowed reports whether the user ID is on the list.
func (a *Allowlist) Allowed(id int64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.ids[id]
	return ok
}

// Replace swaps the entire list, used by config hot reload.
func (a *Allowlist) Replace(ids []int64) {
	next := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}

	a.mu.Lock()
	a.ids = next
	a.mu.Unlock()
}

// Size returns the number of listed IDs.
func (a *Allowlist) Size() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.ids)
}
