package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// User defines persistence for accounts
type User interface {
	// CreateUser inserts u and fills in its ID and CreatedAt.
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, int, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	// UpdateAvatar sets or clears (nil) the stored avatar path.
	UpdateAvatar(ctx context.Context, id int64, avatar *string) error
}
