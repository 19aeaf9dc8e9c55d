package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash and is never serialized in responses.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
