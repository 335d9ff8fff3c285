package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds the bcrypt hash, never the plain text.
//
// IsAdmin is decided once at registration and never changed afterwards.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	IsAdmin   bool      `json:"isAdmin"`
	Avatar    *string   `json:"avatar,omitempty"`
	Flag      *string   `json:"flag,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the user view returned from auth and profile endpoints.
type PublicUser struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsAdmin   bool       `json:"isAdmin"`
	Avatar    *string    `json:"avatar"`
	Flag      *string    `json:"flag"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Public strips the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
		Avatar:  u.Avatar,
		Flag:    u.Flag,
	}
}

// PublicWithCreatedAt is the admin listing variant.
func (u *User) PublicWithCreatedAt() PublicUser {
	p := u.Public()
	created := u.CreatedAt
	p.CreatedAt = &created
	return p
}
