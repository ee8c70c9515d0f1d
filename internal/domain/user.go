// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

// ErrUserNotFound indicates that the user is not found.
var ErrUserNotFound = errors.New("user not found")

// AccountUser holds account owner data.
type AccountUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
