package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	List(ctx context.Context) ([]User, error)
	SetActive(ctx context.Context, userID string, active bool) (bool, error)
	Delete(ctx context.Context, userID string) (bool, error)
}
