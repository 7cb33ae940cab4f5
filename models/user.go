package models

import "time"

// User is one registered account. Passwords are stored as bcrypt
// hashes and never serialized.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
