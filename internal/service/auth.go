package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// Auth implements the credential lifecycle: registration, login with
// token rotation, and bearer token resolution.
type Auth struct {
	userStore model.UserStore
	tokens    model.TokenGenerator
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokens model.TokenGenerator,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a user with a hashed password and an initial session
// token. A taken login yields model.ErrConflict.
func (a *Auth) Register(ctx context.Context, login, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "login", login)

	if login == "" || password == "" {
		return model.User{}, model.NewValidationError("login and password are required")
	}

	_, err := a.userStore.GetByLogin(ctx, login)
	if err == nil {
		a.logger.Info("Auth service: login already taken", "login", login)
		return model.User{}, model.ErrConflict
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by login",
			"login", login,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	tok, err := a.tokens.Generate()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Login:        login,
		PasswordHash: string(hash),
		APIToken:     tok,
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, model.ErrConflict
		}
		a.logger.Error("Auth service: failed to create user",
			"login", login,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "login", login, "user_id", user.ID)

	return user, nil
}

// Login verifies credentials and rotates the session token. Unknown
// login and password mismatch both yield model.ErrInvalidCredentials so
// login existence is not revealed.
func (a *Auth) Login(ctx context.Context, login, password string) (model.User, error) {
	a.logger.Debug("Auth service: logging in user", "login", login)

	if login == "" || password == "" {
		return model.User{}, model.NewValidationError("login and password are required")
	}

	user, err := a.userStore.GetByLogin(ctx, login)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by login",
			"login", login,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, model.ErrInvalidCredentials
	}

	tok, err := a.tokens.Generate()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := a.userStore.UpdateToken(ctx, user.ID, tok); err != nil {
		a.logger.Error("Auth service: failed to rotate token",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to rotate token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "login", login, "user_id", user.ID)

	user.APIToken = tok
	return user, nil
}

// ResolveToken maps a bearer token to a user identity. An empty or
// unknown token resolves to no identity without error; only a store
// failure is returned as an error.
func (a *Auth) ResolveToken(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	user, err := a.userStore.GetByToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get user by token: %w", err)
	}

	return user.ID, true, nil
}
