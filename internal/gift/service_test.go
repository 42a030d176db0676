package gift

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubGiftRepo struct {
	gifts       []Gift
	orderCalls  int
	createCalls int
}

func (s *stubGiftRepo) ListAll(ctx context.Context) ([]Gift, error) {
	out := make([]Gift, len(s.gifts))
	copy(out, s.gifts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (s *stubGiftRepo) GetByID(ctx context.Context, id uuid.UUID) (*Gift, error) {
	for i := range s.gifts {
		if s.gifts[i].ID == id {
			g := s.gifts[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubGiftRepo) Create(ctx context.Context, g Gift) (*Gift, error) {
	s.createCalls++
	g.ID = uuid.New()
	g.OrderIndex = len(s.gifts) + 1
	g.CreatedAt = time.Now()
	s.gifts = append(s.gifts, g)
	return &g, nil
}

func (s *stubGiftRepo) Update(ctx context.Context, input UpdateInput) (*Gift, error) {
	for i := range s.gifts {
		if s.gifts[i].ID == input.ID {
			if input.Name != nil {
				s.gifts[i].Name = *input.Name
			}
			if input.Price != nil {
				s.gifts[i].Price = *input.Price
			}
			g := s.gifts[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubGiftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range s.gifts {
		if s.gifts[i].ID == id {
			s.gifts = append(s.gifts[:i], s.gifts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *stubGiftRepo) Reserve(ctx context.Context, id uuid.UUID, reserverName string) (*Gift, error) {
	for i := range s.gifts {
		if s.gifts[i].ID == id {
			if s.gifts[i].Purchased {
				return nil, ErrAlreadyReserved
			}
			now := time.Now()
			s.gifts[i].Purchased = true
			s.gifts[i].ReservedByName = &reserverName
			s.gifts[i].ReservedAt = &now
			g := s.gifts[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubGiftRepo) Unreserve(ctx context.Context, id uuid.UUID) (*Gift, error) {
	for i := range s.gifts {
		if s.gifts[i].ID == id {
			s.gifts[i].Purchased = false
			s.gifts[i].ReservedByName = nil
			s.gifts[i].ReservedAt = nil
			g := s.gifts[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubGiftRepo) UpdateOrder(ctx context.Context, ordered []uuid.UUID) error {
	s.orderCalls++
	pos := make(map[uuid.UUID]int, len(ordered))
	for i, id := range ordered {
		pos[id] = i + 1
	}
	for i := range s.gifts {
		s.gifts[i].OrderIndex = pos[s.gifts[i].ID]
	}
	return nil
}

func newStubRepo(n int) *stubGiftRepo {
	repo := &stubGiftRepo{}
	for i := 0; i < n; i++ {
		repo.gifts = append(repo.gifts, Gift{
			ID:         uuid.New(),
			Name:       "Presente",
			Price:      float64(10 * (i + 1)),
			OrderIndex: i + 1,
		})
	}
	return repo
}

func TestCreateValidaEntrada(t *testing.T) {
	repo := newStubRepo(0)
	svc := NewService(repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"sem nome", CreateInput{Price: "100"}},
		{"sem preço", CreateInput{Name: "Batedeira"}},
		{"preço inválido", CreateInput{Name: "Batedeira", Price: "abc"}},
		{"preço negativo", CreateInput{Name: "Batedeira", Price: "-5"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("esperado erro de validação, obtido %v", err)
			}
		})
	}

	if repo.createCalls != 0 {
		t.Errorf("entrada inválida não deveria chegar ao repositório")
	}
}

func TestCreateAceitaVirgulaDecimal(t *testing.T) {
	svc := NewService(newStubRepo(0))

	created, err := svc.Create(context.Background(), CreateInput{Name: "Batedeira", Price: "249,90"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if created.Price != 249.90 {
		t.Errorf("preço = %v, esperado 249.90", created.Price)
	}
}

func TestReserveExigeNome(t *testing.T) {
	repo := newStubRepo(1)
	svc := NewService(repo)

	_, err := svc.Reserve(context.Background(), repo.gifts[0].ID, "   ")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("esperado erro de validação, obtido %v", err)
	}
}

func TestReserveConflito(t *testing.T) {
	repo := newStubRepo(1)
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Reserve(ctx, repo.gifts[0].ID, "Ana"); err != nil {
		t.Fatalf("primeira reserva deveria passar: %v", err)
	}

	_, err := svc.Reserve(ctx, repo.gifts[0].ID, "Bia")
	if !errors.Is(err, ErrAlreadyReserved) {
		t.Fatalf("esperado ErrAlreadyReserved, obtido %v", err)
	}
}

func TestReorderPermutacaoCompleta(t *testing.T) {
	repo := newStubRepo(3)
	svc := NewService(repo)
	ctx := context.Background()

	ids := []uuid.UUID{repo.gifts[2].ID, repo.gifts[0].ID, repo.gifts[1].ID}
	ordered, err := svc.Reorder(ctx, ids)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	for i, g := range ordered {
		if g.ID != ids[i] {
			t.Errorf("posição %d: esperado %s, obtido %s", i, ids[i], g.ID)
		}
		if g.OrderIndex != i+1 {
			t.Errorf("order_index da posição %d = %d, esperado %d", i, g.OrderIndex, i+1)
		}
	}
}

func TestReorderRejeitaListaIncompleta(t *testing.T) {
	repo := newStubRepo(3)
	svc := NewService(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		ids  []uuid.UUID
	}{
		{"faltando item", []uuid.UUID{repo.gifts[0].ID, repo.gifts[1].ID}},
		{"id estranho", []uuid.UUID{repo.gifts[0].ID, repo.gifts[1].ID, uuid.New()}},
		{"id duplicado", []uuid.UUID{repo.gifts[0].ID, repo.gifts[1].ID, repo.gifts[1].ID}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Reorder(ctx, tc.ids); !errors.Is(err, ErrReorderMismatch) {
				t.Fatalf("esperado ErrReorderMismatch, obtido %v", err)
			}
		})
	}

	if repo.orderCalls != 0 {
		t.Errorf("permutação inválida não deveria ser persistida")
	}
}

func TestMove(t *testing.T) {
	repo := newStubRepo(3)
	svc := NewService(repo)
	ctx := context.Background()

	first := repo.gifts[0].ID
	second := repo.gifts[1].ID

	ordered, err := svc.Move(ctx, second, MoveUp)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ordered[0].ID != second || ordered[1].ID != first {
		t.Error("mover para cima deveria trocar com o anterior")
	}
}

func TestMoveNasBordas(t *testing.T) {
	repo := newStubRepo(2)
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Move(ctx, repo.gifts[0].ID, MoveUp); err != nil {
		t.Fatalf("mover o primeiro para cima deveria ser no-op: %v", err)
	}
	if _, err := svc.Move(ctx, repo.gifts[1].ID, MoveDown); err != nil {
		t.Fatalf("mover o último para baixo deveria ser no-op: %v", err)
	}
	if repo.orderCalls != 0 {
		t.Errorf("no-op não deveria persistir ordem, houve %d chamadas", repo.orderCalls)
	}
}

func TestUpdateComPosicao(t *testing.T) {
	repo := newStubRepo(4)
	svc := NewService(repo)
	ctx := context.Background()

	last := repo.gifts[3].ID
	position := 1
	updated, err := svc.Update(ctx, UpdateInput{ID: last, Position: &position})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if updated.OrderIndex != 1 {
		t.Errorf("order_index = %d, esperado 1", updated.OrderIndex)
	}

	all, _ := svc.List(ctx)
	for i, g := range all {
		if g.OrderIndex != i+1 {
			t.Errorf("sequência quebrada na posição %d: %d", i, g.OrderIndex)
		}
	}
}

func TestGetStats(t *testing.T) {
	repo := newStubRepo(3)
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Reserve(ctx, repo.gifts[0].ID, "Ana"); err != nil {
		t.Fatalf("reserva falhou: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if stats.Total != 3 || stats.Purchased != 1 || stats.Available != 2 {
		t.Errorf("contadores incorretos: %+v", stats)
	}
	if stats.TotalValue != 60 || stats.PurchasedValue != 10 {
		t.Errorf("valores incorretos: %+v", stats)
	}
}
