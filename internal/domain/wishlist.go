package domain

import "time"

// WishlistItem is an anonymous wish. Ownership is proven by presenting the
// client-generated owner token; the token is never returned in listings and
// items are never tied to a user account.
type WishlistItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerToken  string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
