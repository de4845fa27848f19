package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"blogger/internal/apperr"
	"blogger/internal/auth"
	"blogger/internal/logger"
	"blogger/internal/models"
	"blogger/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}

type AuthService struct {
	repo     UserRepo
	verifier auth.Verifier
}

func NewAuthService(repo UserRepo, verifier auth.Verifier) *AuthService {
	return &AuthService{repo: repo, verifier: verifier}
}

var errInvalidCredentials = apperr.Unauthenticated("Invalid credentials")

// Login checks username/password and returns a token from the configured
// verifier. Unknown user and wrong password look the same to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	log := logger.WithCtx(ctx)
	log.Info("login attempt", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("login: user not found", zap.String("username", username))
			return nil, errInvalidCredentials
		}
		log.Error("login: lookup failed", zap.Error(err))
		return nil, apperr.FromDB(err, "Internal server error")
	}

	if !CheckPassword(password, user.Password) {
		log.Warn("login: wrong password", zap.String("username", username))
		return nil, errInvalidCredentials
	}

	token, err := s.verifier.Issue(ctx, user)
	if err != nil {
		log.Error("login: issue token", zap.Error(err))
		return nil, apperr.Internal("Internal server error", err)
	}

	log.Info("login ok", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	return &models.LoginResponse{
		Token: token,
		User:  models.LoginUser{ID: user.ID, Username: user.Username, Role: user.Role},
	}, nil
}

// CreateUser stores a user; with hash set the password is bcrypt-hashed first.
func (s *AuthService) CreateUser(ctx context.Context, username, password, role string, hash bool) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, apperr.Validation("Missing required fields", "username and password are required", "username", "password")
	}
	if role == "" {
		role = "admin"
	}

	stored := password
	if hash {
		h, err := HashPassword(password)
		if err != nil {
			return nil, apperr.Internal("Failed to hash password", err)
		}
		stored = h
	}

	u := &models.User{Username: username, Password: stored, Role: role}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		mapped := apperr.FromDB(err, "Failed to create user")
		if apperr.IsKind(mapped, apperr.KindDuplicate) {
			return nil, apperr.Duplicate("Duplicate entry", "A user with this username already exists")
		}
		return nil, mapped
	}
	return u, nil
}

// GetUser is the lookup behind the check-user command.
func (s *AuthService) GetUser(ctx context.Context, username string) (*models.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.FromDB(err, "Failed to fetch user")
	}
	return u, nil
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword accepts either a bcrypt hash or a legacy plaintext value.
func CheckPassword(password, stored string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
