package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela admin_users.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetByUsername busca administrador pelo username (case-insensitive).
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	const query = `
        SELECT id, username, password_hash, last_login, created_at, updated_at
        FROM admin_users
        WHERE lower(username) = lower($1)
    `

	row := r.pool.QueryRow(ctx, query, strings.TrimSpace(username))
	return scanUser(row)
}

// GetByID busca administrador pelo id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	const query = `
        SELECT id, username, password_hash, last_login, created_at, updated_at
        FROM admin_users
        WHERE id = $1
    `

	row := r.pool.QueryRow(ctx, query, id)
	return scanUser(row)
}

// TouchLastLogin registra o instante do login bem-sucedido.
func (r *Repository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	const query = `
        UPDATE admin_users
        SET last_login = now(), updated_at = now()
        WHERE id = $1
    `

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
