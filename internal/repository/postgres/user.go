package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/bookshelf-server/internal/model"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (login, password_hash, api_token)
			  VALUES ($1, $2, $3)
			  RETURNING id, login, password_hash, api_token, created_at, updated_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.APIToken,
	).Scan(
		&savedUser.ID, &savedUser.Login, &savedUser.PasswordHash, &savedUser.APIToken,
		&savedUser.CreatedAt, &savedUser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (model.User, error) {
	var user model.User
	query := `SELECT id, login, password_hash, api_token, created_at, updated_at
			  FROM users WHERE login = $1`

	err := r.db.QueryRow(ctx, query, login).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.APIToken,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, login, password_hash, api_token, created_at, updated_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.APIToken,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByToken(ctx context.Context, token string) (model.User, error) {
	var user model.User
	query := `SELECT id, login, password_hash, api_token, created_at, updated_at
			  FROM users WHERE api_token = $1`

	err := r.db.QueryRow(ctx, query, token).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.APIToken,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by token: %w", err)
	}

	return user, nil
}

// UpdateToken overwrites the stored session token, invalidating the
// previous one.
func (r *UserRepository) UpdateToken(ctx context.Context, id int64, token string) error {
	query := `UPDATE users SET api_token = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, token)
	if err != nil {
		return fmt.Errorf("failed to update user token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, login, password_hash, api_token, created_at, updated_at
			  FROM users ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID, &user.Login, &user.PasswordHash, &user.APIToken,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
