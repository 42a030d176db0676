package event

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const infoColumns = "id, event_date, event_time, event_location, additional_info, created_at, updated_at"

// Repository provê acesso à tabela event_info.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Get devolve o registro mais recente. A tabela funciona como singleton;
// na presença de mais de uma linha vale a última gravada.
func (r *Repository) Get(ctx context.Context) (*Info, error) {
	const query = `
        SELECT ` + infoColumns + `
        FROM event_info
        ORDER BY updated_at DESC
        LIMIT 1
    `

	row := r.pool.QueryRow(ctx, query)
	return scanInfo(row)
}

// Upsert atualiza o registro existente ou cria o primeiro.
func (r *Repository) Upsert(ctx context.Context, input UpdateInput) (*Info, error) {
	const update = `
        UPDATE event_info
        SET event_date = $1, event_time = $2, event_location = $3, additional_info = $4, updated_at = now()
        WHERE id = (SELECT id FROM event_info ORDER BY updated_at DESC LIMIT 1)
        RETURNING ` + infoColumns + `
    `

	row := r.pool.QueryRow(ctx, update, input.EventDate, input.EventTime, input.EventLocation, input.AdditionalInfo)
	info, err := scanInfo(row)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	const insert = `
        INSERT INTO event_info (event_date, event_time, event_location, additional_info)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + infoColumns + `
    `

	row = r.pool.QueryRow(ctx, insert, input.EventDate, input.EventTime, input.EventLocation, input.AdditionalInfo)
	return scanInfo(row)
}

func scanInfo(row pgx.Row) (*Info, error) {
	var i Info
	err := row.Scan(&i.ID, &i.EventDate, &i.EventTime, &i.EventLocation, &i.AdditionalInfo, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}
