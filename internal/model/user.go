package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByLogin(ctx context.Context, login string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByToken(ctx context.Context, token string) (User, error)
	UpdateToken(ctx context.Context, id int64, token string) error
	List(ctx context.Context) ([]User, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	APIToken     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
