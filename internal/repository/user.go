package repository

import (
	"context"
	"fmt"

	"blogger/internal/logger"
	"blogger/internal/models"

	"go.uber.org/zap"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	logger.WithCtx(ctx).Debug("get user by username (repo)", zap.String("username", username))

	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password, role, created_at FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, noRows(err)
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) error {
	logger.WithCtx(ctx).Info("create user (repo)", zap.String("username", u.Username), zap.String("role", u.Role))

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id, created_at`,
		u.Username, u.Password, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
