package mem

import (
	"sync"

	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/normalize"
)

// Cache keeps the member list in memory keyed by telegram handle.
// Sign-in resolves a handle on every request, and the club roster is
// small and changes rarely.
type Cache struct {
	mu    sync.RWMutex
	valid bool
	users map[string]domain.User
}

func New() *Cache {
	return &Cache{
		users: make(map[string]domain.User),
	}
}

// Update rebuilds the cache from a full member list.
func (c *Cache) Update(users []domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users = make(map[string]domain.User, len(users))
	for i := range users {
		handle := normalize.Handle(users[i].Telegram)
		c.users[handle] = users[i]
	}
	c.valid = true
}

func (c *Cache) GetByTelegram(handle string) (domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.User{}, false
	}
	user, ok := c.users[normalize.Handle(handle)]
	if !ok {
		return domain.User{}, false
	}
	return user, true
}

// Invalidate drops the cache; the next miss rebuilds it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
