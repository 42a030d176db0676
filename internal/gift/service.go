package gift

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ValidationError indica entrada rejeitada antes de qualquer escrita.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

// MoveDirection indica o sentido do passo discreto de reordenação.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

type repository interface {
	ListAll(ctx context.Context) ([]Gift, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Gift, error)
	Create(ctx context.Context, g Gift) (*Gift, error)
	Update(ctx context.Context, input UpdateInput) (*Gift, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reserve(ctx context.Context, id uuid.UUID, reserverName string) (*Gift, error)
	Unreserve(ctx context.Context, id uuid.UUID) (*Gift, error)
	UpdateOrder(ctx context.Context, ordered []uuid.UUID) error
}

// Service reúne as regras da lista de presentes.
type Service struct {
	repo repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// Page é o recorte paginado devolvido à vitrine.
type Page struct {
	Items      []Gift    `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
	NextOrder  SortOrder `json:"proxima_ordenacao"`
}

// List devolve a lista completa na ordem de exibição.
func (s *Service) List(ctx context.Context) ([]Gift, error) {
	return s.repo.ListAll(ctx)
}

// ListPage aplica busca, categoria, ordenação por preço e paginação sobre
// a lista completa, na mesma sequência da vitrine. Também devolve a
// próxima ordenação do ciclo, usada pelo botão de preço.
func (s *Service) ListPage(ctx context.Context, search, category string, order SortOrder, page int) (*Page, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Filter(all, search, category)
	sorted := SortByPrice(filtered, order)
	items, totalPages := Paginate(sorted, page, PageSize)

	if page < 1 || (totalPages > 0 && page > totalPages) {
		page = 1
	}

	return &Page{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(sorted),
		NextOrder:  NextSortOrder(order),
	}, nil
}

// ListCategories enumera as categorias disponíveis.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(all), nil
}

// Get busca um presente.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Gift, error) {
	return s.repo.GetByID(ctx, id)
}

// Create valida e cadastra um presente no fim da lista.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Gift, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, invalid("nome obrigatório")
	}

	price, err := ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, Gift{
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Image:       input.Image,
		Link:        input.Link,
		Category:    input.Category,
	})
}

// Update aplica alterações parciais; quando Position muda, refaz a
// permutação completa pelo caminho de reordenação.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Gift, error) {
	updated, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.Position != nil {
		if err := s.moveToPosition(ctx, input.ID, *input.Position); err != nil {
			return nil, err
		}
		return s.repo.GetByID(ctx, input.ID)
	}

	return updated, nil
}

// Delete remove o presente. Irreversível; a imagem armazenada é tratada
// pelo chamador.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Reserve marca o presente como comprado em nome do convidado.
func (s *Service) Reserve(ctx context.Context, id uuid.UUID, reserverName string) (*Gift, error) {
	if strings.TrimSpace(reserverName) == "" {
		return nil, invalid("informe seu nome para reservar")
	}
	return s.repo.Reserve(ctx, id, reserverName)
}

// Unreserve torna o presente disponível novamente.
func (s *Service) Unreserve(ctx context.Context, id uuid.UUID) (*Gift, error) {
	return s.repo.Unreserve(ctx, id)
}

// Reorder persiste a permutação completa enviada pelo painel. A lista
// precisa conter exatamente os ids atuais, sem faltas nem repetições.
func (s *Service) Reorder(ctx context.Context, ordered []uuid.UUID) ([]Gift, error) {
	current, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(ordered) != len(current) {
		return nil, ErrReorderMismatch
	}

	existing := make(map[uuid.UUID]struct{}, len(current))
	for _, g := range current {
		existing[g.ID] = struct{}{}
	}
	seen := make(map[uuid.UUID]struct{}, len(ordered))
	for _, id := range ordered {
		if _, ok := existing[id]; !ok {
			return nil, ErrReorderMismatch
		}
		if _, dup := seen[id]; dup {
			return nil, ErrReorderMismatch
		}
		seen[id] = struct{}{}
	}

	if err := s.repo.UpdateOrder(ctx, ordered); err != nil {
		return nil, err
	}

	return s.repo.ListAll(ctx)
}

// Move desloca o presente uma posição acima ou abaixo; nas bordas é no-op.
func (s *Service) Move(ctx context.Context, id uuid.UUID, direction MoveDirection) ([]Gift, error) {
	current, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	pos := indexOf(current, id)
	if pos < 0 {
		return nil, ErrNotFound
	}

	target := pos
	switch direction {
	case MoveUp:
		target = pos - 1
	case MoveDown:
		target = pos + 1
	default:
		return nil, invalid("direção inválida")
	}

	if target < 0 || target >= len(current) {
		return current, nil
	}

	ordered := permutationIDs(current)
	ordered[pos], ordered[target] = ordered[target], ordered[pos]

	if err := s.repo.UpdateOrder(ctx, ordered); err != nil {
		return nil, err
	}

	return s.repo.ListAll(ctx)
}

// GetStats calcula os agregados exibidos no painel.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(all)}
	for _, g := range all {
		stats.TotalValue += g.Price
		if g.Purchased {
			stats.Purchased++
			stats.PurchasedValue += g.Price
		} else {
			stats.Available++
		}
	}

	return stats, nil
}

// ParsePrice aceita texto decimal com ponto ou vírgula.
func ParsePrice(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, invalid("preço obrigatório")
	}

	normalized := strings.ReplaceAll(value, ",", ".")
	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil || price < 0 {
		return 0, invalid("preço inválido")
	}
	return price, nil
}

func (s *Service) moveToPosition(ctx context.Context, id uuid.UUID, position int) error {
	current, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	pos := indexOf(current, id)
	if pos < 0 {
		return ErrNotFound
	}

	if position < 1 {
		position = 1
	}
	if position > len(current) {
		position = len(current)
	}
	target := position - 1
	if target == pos {
		return nil
	}

	ordered := permutationIDs(current)
	moved := ordered[pos]
	ordered = append(ordered[:pos], ordered[pos+1:]...)

	rest := make([]uuid.UUID, 0, len(current))
	rest = append(rest, ordered[:target]...)
	rest = append(rest, moved)
	rest = append(rest, ordered[target:]...)

	return s.repo.UpdateOrder(ctx, rest)
}

func indexOf(gifts []Gift, id uuid.UUID) int {
	for i, g := range gifts {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func permutationIDs(gifts []Gift) []uuid.UUID {
	ids := make([]uuid.UUID, len(gifts))
	for i, g := range gifts {
		ids[i] = g.ID
	}
	return ids
}
