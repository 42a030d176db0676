package gift

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("presente não encontrado")
	ErrAlreadyReserved = errors.New("presente já reservado")
	ErrReorderMismatch = errors.New("reordenação não cobre a lista completa")
)

// CategoryAll é a categoria sintética que desliga o filtro.
const CategoryAll = "Todos"

// Gift representa um item da lista de presentes.
type Gift struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          float64    `json:"price"`
	Image          string     `json:"image"`
	Link           string     `json:"link"`
	Category       string     `json:"category"`
	Purchased      bool       `json:"purchased"`
	ReservedByName *string    `json:"reserved_by_name,omitempty"`
	ReservedAt     *time.Time `json:"reserved_at,omitempty"`
	OrderIndex     int        `json:"order_index"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CreateInput encapsula o cadastro de um presente. Price chega como texto
// decimal do formulário; Image e Link de imagem são mutuamente exclusivos.
type CreateInput struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Price       string `json:"preco"`
	Image       string `json:"imagem"`
	Link        string `json:"link"`
	Category    string `json:"categoria"`
}

// UpdateInput permite alteração parcial de campos. Position é a posição
// desejada em base 1 e dispara o fluxo de reordenação quando muda.
type UpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Link        *string
	Category    *string
	Position    *int
}

// Stats agrega números exibidos no painel.
type Stats struct {
	Total          int     `json:"total"`
	Purchased      int     `json:"purchased"`
	Available      int     `json:"available"`
	TotalValue     float64 `json:"total_value"`
	PurchasedValue float64 `json:"purchased_value"`
}

// SortOrder controla a ordenação por preço da vitrine.
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder normaliza o parâmetro de ordenação; valores desconhecidos
// caem em SortNone.
func ParseSortOrder(value string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(SortAsc):
		return SortAsc
	case string(SortDesc):
		return SortDesc
	default:
		return SortNone
	}
}

// NextSortOrder avança o ciclo none → asc → desc → none.
func NextSortOrder(current SortOrder) SortOrder {
	switch current {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}
