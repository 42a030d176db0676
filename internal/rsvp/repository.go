package rsvp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chadecozinha/api/internal/db"
)

// Repository provê acesso às tabelas rsvps e guests.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GuestRow carrega os campos de um acompanhante a persistir.
type GuestRow struct {
	Name     string
	LastName string
	Whatsapp string
	CPF      string
}

// CreateWithGuests insere a confirmação e todos os acompanhantes em uma
// única transação: ou tudo entra, ou nada entra.
func (r *Repository) CreateWithGuests(ctx context.Context, record RSVP, guests []GuestRow) (*RSVP, error) {
	const insertRSVP = `
        INSERT INTO rsvps (name, last_name, whatsapp, cpf, attendance, message)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, last_name, whatsapp, cpf, attendance, message, created_at
    `
	const insertGuest = `
        INSERT INTO guests (rsvp_id, name, last_name, whatsapp, cpf)
        VALUES ($1, $2, $3, $4, $5)
    `

	var created RSVP
	err := db.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx, insertRSVP,
			record.Name, record.LastName, record.Whatsapp, record.CPF, record.Attendance, record.Message)
		if err := scanRSVP(row, &created); err != nil {
			return err
		}

		for _, g := range guests {
			if _, err := tx.Exec(ctx, insertGuest, created.ID, g.Name, g.LastName, g.Whatsapp, g.CPF); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListAll devolve todas as confirmações, mais recentes primeiro.
func (r *Repository) ListAll(ctx context.Context) ([]RSVP, error) {
	const query = `
        SELECT id, name, last_name, whatsapp, cpf, attendance, message, created_at
        FROM rsvps
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RSVP
	for rows.Next() {
		var rec RSVP
		if err := scanRSVP(rows, &rec); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}

// GetByID busca uma confirmação específica.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*RSVP, error) {
	const query = `
        SELECT id, name, last_name, whatsapp, cpf, attendance, message, created_at
        FROM rsvps
        WHERE id = $1
    `

	var rec RSVP
	if err := scanRSVP(r.pool.QueryRow(ctx, query, id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete remove a confirmação; os acompanhantes caem junto pelo cascade.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rsvps WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListGuests devolve os acompanhantes de uma confirmação, na ordem de criação.
func (r *Repository) ListGuests(ctx context.Context, rsvpID uuid.UUID) ([]Guest, error) {
	const query = `
        SELECT id, rsvp_id, name, last_name, whatsapp, cpf, created_at
        FROM guests
        WHERE rsvp_id = $1
        ORDER BY created_at ASC
    `

	rows, err := r.pool.Query(ctx, query, rsvpID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []Guest
	for rows.Next() {
		var g Guest
		if err := rows.Scan(&g.ID, &g.RSVPID, &g.Name, &g.LastName, &g.Whatsapp, &g.CPF, &g.CreatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

// ReplaceGuests substitui a lista de acompanhantes (apaga e recria) em
// uma transação.
func (r *Repository) ReplaceGuests(ctx context.Context, rsvpID uuid.UUID, guests []GuestRow) error {
	const insertGuest = `
        INSERT INTO guests (rsvp_id, name, last_name, whatsapp, cpf)
        VALUES ($1, $2, $3, $4, $5)
    `

	return db.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM guests WHERE rsvp_id = $1`, rsvpID); err != nil {
			return err
		}
		for _, g := range guests {
			if _, err := tx.Exec(ctx, insertGuest, rsvpID, g.Name, g.LastName, g.Whatsapp, g.CPF); err != nil {
				return err
			}
		}
		return nil
	})
}

// CountGuests conta acompanhantes de todas as confirmações.
func (r *Repository) CountGuests(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM guests`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanRSVP(row pgx.Row, out *RSVP) error {
	err := row.Scan(&out.ID, &out.Name, &out.LastName, &out.Whatsapp, &out.CPF, &out.Attendance, &out.Message, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
