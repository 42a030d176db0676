package message

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageColumns = "id, sender_name, message, created_at"

// Repository provê acesso à tabela messages.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create grava um novo recado.
func (r *Repository) Create(ctx context.Context, senderName, text string) (*Message, error) {
	const query = `
        INSERT INTO messages (sender_name, message)
        VALUES ($1, $2)
        RETURNING ` + messageColumns + `
    `

	row := r.pool.QueryRow(ctx, query, senderName, text)
	return scanMessage(row)
}

// List devolve os recados do mais novo para o mais antigo. Com limit
// zero ou negativo devolve todos.
func (r *Repository) List(ctx context.Context, limit int) ([]Message, error) {
	query := `
        SELECT ` + messageColumns + `
        FROM messages
        ORDER BY created_at DESC
    `
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderName, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Delete remove um recado.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStats conta o total e os recados do dia e da semana corrente.
func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	const query = `
        SELECT
            count(*),
            count(*) FILTER (WHERE created_at >= date_trunc('day', now())),
            count(*) FILTER (WHERE created_at >= now() - interval '7 days')
        FROM messages
    `

	var s Stats
	if err := r.pool.QueryRow(ctx, query).Scan(&s.Total, &s.Today, &s.ThisWeek); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanMessage(row pgx.Row) (*Message, error) {
	var m Message
	if err := row.Scan(&m.ID, &m.SenderName, &m.Message, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
