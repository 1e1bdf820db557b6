package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// userCache provides an in-memory LRU cache for user lookups with
// time-based expiration. Entries are invalidated on any account update.
type userCache struct {
	lru *expirable.LRU[string, *domain.User]
}

// newUserCache creates a new user cache with the specified size and TTL
func newUserCache(size int, ttl time.Duration) *userCache {
	return &userCache{
		lru: expirable.NewLRU[string, *domain.User](size, nil, ttl),
	}
}

// Get retrieves a user from the cache
func (c *userCache) Get(userID string) (*domain.User, bool) {
	return c.lru.Get(userID)
}

// Set stores a user in the cache
func (c *userCache) Set(userID string, user *domain.User) {
	c.lru.Add(userID, user)
}

// Invalidate removes a user from the cache
func (c *userCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
