package gift

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chadecozinha/api/internal/db"
)

const giftColumns = "id, name, description, price, image, link, category, purchased, reserved_by_name, reserved_at, order_index, created_at"

// Repository provê acesso à tabela gifts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListAll devolve todos os presentes na ordem de exibição.
func (r *Repository) ListAll(ctx context.Context) ([]Gift, error) {
	query := fmt.Sprintf(`SELECT %s FROM gifts ORDER BY order_index ASC, created_at ASC`, giftColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gifts []Gift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, *g)
	}

	return gifts, rows.Err()
}

// GetByID busca um presente específico.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Gift, error) {
	query := fmt.Sprintf(`SELECT %s FROM gifts WHERE id = $1`, giftColumns)
	return scanGift(r.pool.QueryRow(ctx, query, id))
}

// Create insere um presente no fim da lista (order_index = max+1).
func (r *Repository) Create(ctx context.Context, g Gift) (*Gift, error) {
	query := fmt.Sprintf(`
        INSERT INTO gifts (name, description, price, image, link, category, order_index)
        VALUES ($1, $2, $3, $4, $5, $6, (SELECT coalesce(max(order_index), 0) + 1 FROM gifts))
        RETURNING %s
    `, giftColumns)

	row := r.pool.QueryRow(ctx, query,
		strings.TrimSpace(g.Name),
		strings.TrimSpace(g.Description),
		g.Price,
		strings.TrimSpace(g.Image),
		strings.TrimSpace(g.Link),
		strings.TrimSpace(g.Category),
	)
	return scanGift(row)
}

// Update altera somente os campos presentes no input. Position é tratado
// pelo serviço, não aqui.
func (r *Repository) Update(ctx context.Context, input UpdateInput) (*Gift, error) {
	setParts := []string{}
	args := []any{}
	idx := 1

	if input.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", idx))
		args = append(args, strings.TrimSpace(*input.Name))
		idx++
	}
	if input.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", idx))
		args = append(args, strings.TrimSpace(*input.Description))
		idx++
	}
	if input.Price != nil {
		setParts = append(setParts, fmt.Sprintf("price = $%d", idx))
		args = append(args, *input.Price)
		idx++
	}
	if input.Image != nil {
		setParts = append(setParts, fmt.Sprintf("image = $%d", idx))
		args = append(args, strings.TrimSpace(*input.Image))
		idx++
	}
	if input.Link != nil {
		setParts = append(setParts, fmt.Sprintf("link = $%d", idx))
		args = append(args, strings.TrimSpace(*input.Link))
		idx++
	}
	if input.Category != nil {
		setParts = append(setParts, fmt.Sprintf("category = $%d", idx))
		args = append(args, strings.TrimSpace(*input.Category))
		idx++
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, input.ID)
	}

	args = append(args, input.ID)
	query := fmt.Sprintf(`UPDATE gifts SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), idx, giftColumns)

	return scanGift(r.pool.QueryRow(ctx, query, args...))
}

// Delete remove o presente. Irreversível.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reserve marca o presente como comprado com atualização condicional: só
// escreve se ainda estiver disponível, evitando a corrida de duas reservas
// simultâneas.
func (r *Repository) Reserve(ctx context.Context, id uuid.UUID, reserverName string) (*Gift, error) {
	query := fmt.Sprintf(`
        UPDATE gifts
        SET purchased = true, reserved_by_name = $2, reserved_at = now()
        WHERE id = $1 AND purchased = false
        RETURNING %s
    `, giftColumns)

	g, err := scanGift(r.pool.QueryRow(ctx, query, id, strings.TrimSpace(reserverName)))
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// Nenhuma linha: ou o presente não existe, ou já estava reservado.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrAlreadyReserved
}

// Unreserve disponibiliza o presente novamente (ação administrativa).
func (r *Repository) Unreserve(ctx context.Context, id uuid.UUID) (*Gift, error) {
	query := fmt.Sprintf(`
        UPDATE gifts
        SET purchased = false, reserved_by_name = NULL, reserved_at = NULL
        WHERE id = $1
        RETURNING %s
    `, giftColumns)

	return scanGift(r.pool.QueryRow(ctx, query, id))
}

// UpdateOrder grava order_index = posição (base 1) para toda a permutação
// em uma única transação; nada é persistido parcialmente.
func (r *Repository) UpdateOrder(ctx context.Context, ordered []uuid.UUID) error {
	return db.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		for pos, id := range ordered {
			tag, err := tx.Exec(ctx, `UPDATE gifts SET order_index = $1 WHERE id = $2`, pos+1, id)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

func scanGift(row pgx.Row) (*Gift, error) {
	var g Gift
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Price, &g.Image, &g.Link, &g.Category,
		&g.Purchased, &g.ReservedByName, &g.ReservedAt, &g.OrderIndex, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}
