package rsvp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubRSVPRepo struct {
	records []RSVP
	guests  map[uuid.UUID][]Guest
	writes  int
}

func newStubRSVPRepo() *stubRSVPRepo {
	return &stubRSVPRepo{guests: make(map[uuid.UUID][]Guest)}
}

func (s *stubRSVPRepo) CreateWithGuests(ctx context.Context, record RSVP, guests []GuestRow) (*RSVP, error) {
	s.writes++
	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	s.records = append(s.records, record)
	for _, g := range guests {
		s.guests[record.ID] = append(s.guests[record.ID], Guest{
			ID:       uuid.New(),
			RSVPID:   record.ID,
			Name:     g.Name,
			LastName: g.LastName,
			Whatsapp: g.Whatsapp,
			CPF:      g.CPF,
		})
	}
	return &record, nil
}

func (s *stubRSVPRepo) ListAll(ctx context.Context) ([]RSVP, error) {
	// mais recentes primeiro, como a consulta real
	out := make([]RSVP, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *stubRSVPRepo) GetByID(ctx context.Context, id uuid.UUID) (*RSVP, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubRSVPRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			delete(s.guests, id)
			return nil
		}
	}
	return ErrNotFound
}

func (s *stubRSVPRepo) ListGuests(ctx context.Context, rsvpID uuid.UUID) ([]Guest, error) {
	return s.guests[rsvpID], nil
}

func (s *stubRSVPRepo) ReplaceGuests(ctx context.Context, rsvpID uuid.UUID, guests []GuestRow) error {
	s.writes++
	s.guests[rsvpID] = nil
	for _, g := range guests {
		s.guests[rsvpID] = append(s.guests[rsvpID], Guest{
			ID:       uuid.New(),
			RSVPID:   rsvpID,
			Name:     g.Name,
			LastName: g.LastName,
			Whatsapp: g.Whatsapp,
			CPF:      g.CPF,
		})
	}
	return nil
}

func (s *stubRSVPRepo) CountGuests(ctx context.Context) (int, error) {
	total := 0
	for _, g := range s.guests {
		total += len(g)
	}
	return total, nil
}

func TestSubmitSeparaNomeESobrenome(t *testing.T) {
	repo := newStubRSVPRepo()
	svc := NewService(repo)

	created, err := svc.Submit(context.Background(), SubmitInput{
		FullName:   "Maria da Silva Souza",
		CPF:        "12345678901",
		Whatsapp:   "11987654321",
		Attendance: "sim",
		Message:    "  ",
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if created.Name != "Maria" || created.LastName != "da Silva Souza" {
		t.Errorf("nome dividido incorretamente: %q / %q", created.Name, created.LastName)
	}
	if created.CPF != "123.456.789-01" {
		t.Errorf("CPF sem máscara: %q", created.CPF)
	}
	if created.Whatsapp != "(11) 98765-4321" {
		t.Errorf("WhatsApp sem máscara: %q", created.Whatsapp)
	}
	if created.Message != nil {
		t.Error("mensagem em branco deveria virar nil")
	}
}

func TestSubmitComAcompanhantes(t *testing.T) {
	repo := newStubRSVPRepo()
	svc := NewService(repo)

	created, err := svc.Submit(context.Background(), SubmitInput{
		FullName:   "João Pereira",
		CPF:        "98765432100",
		Attendance: "SIM",
		Companions: []CompanionInput{
			{FullName: "Ana Pereira", CPF: "11122233344"},
			{FullName: "Caio Pereira", CPF: "55566677788", Whatsapp: "11912345678"},
		},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	guests, _ := svc.Guests(context.Background(), created.ID)
	if len(guests) != 2 {
		t.Fatalf("esperado 2 acompanhantes, obtido %d", len(guests))
	}
	if guests[0].Name != "Ana" || guests[0].LastName != "Pereira" {
		t.Errorf("acompanhante dividido incorretamente: %q / %q", guests[0].Name, guests[0].LastName)
	}
	if guests[0].CPF != "111.222.333-44" {
		t.Errorf("CPF do acompanhante sem máscara: %q", guests[0].CPF)
	}
}

func TestSubmitRejeicoesNaoEscrevem(t *testing.T) {
	repo := newStubRSVPRepo()
	svc := NewService(repo)
	ctx := context.Background()

	many := make([]CompanionInput, MaxCompanions+1)
	for i := range many {
		many[i] = CompanionInput{FullName: "Convidado Extra", CPF: "12345678901"}
	}

	cases := []struct {
		name  string
		input SubmitInput
	}{
		{"sem nome", SubmitInput{CPF: "123", Attendance: "sim"}},
		{"sem sobrenome", SubmitInput{FullName: "Maria", CPF: "123", Attendance: "sim"}},
		{"sem cpf", SubmitInput{FullName: "Maria Souza", Attendance: "sim"}},
		{"presença inválida", SubmitInput{FullName: "Maria Souza", CPF: "123", Attendance: "talvez"}},
		{"acompanhante sem recusa", SubmitInput{
			FullName: "Maria Souza", CPF: "123", Attendance: "nao",
			Companions: []CompanionInput{{FullName: "Ana Souza", CPF: "456"}},
		}},
		{"acompanhantes demais", SubmitInput{
			FullName: "Maria Souza", CPF: "123", Attendance: "sim", Companions: many,
		}},
		{"acompanhante sem sobrenome", SubmitInput{
			FullName: "Maria Souza", CPF: "123", Attendance: "sim",
			Companions: []CompanionInput{{FullName: "Ana", CPF: "456"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.input)
			if err == nil {
				t.Fatal("esperado erro de validação")
			}
		})
	}

	if repo.writes != 0 {
		t.Errorf("validação rejeitada não deveria gravar nada, houve %d escritas", repo.writes)
	}
}

func TestListMantemHomonimosComIdsDistintos(t *testing.T) {
	repo := newStubRSVPRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Submit(ctx, SubmitInput{FullName: "Maria Souza", CPF: "111.111.111-11", Attendance: "sim"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	second, err := svc.Submit(ctx, SubmitInput{FullName: "maria SOUZA", CPF: "222.222.222-22", Attendance: "nao"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("homônimos com ids distintos deveriam ambos aparecer, obtido %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("lista fora da ordem esperada: %s, %s", list[0].ID, list[1].ID)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("total = %d, esperado 2", stats.Total)
	}
}

func TestListDeduplicaLinhasSemIdPorNome(t *testing.T) {
	repo := newStubRSVPRepo()
	svc := NewService(repo)
	ctx := context.Background()

	// linhas legadas sem id dependem da identidade nome+sobrenome
	repo.records = append(repo.records,
		RSVP{Name: "Ana", LastName: "Lima", Attendance: "sim", CreatedAt: time.Now().Add(-time.Hour)},
		RSVP{Name: "ana", LastName: "LIMA", Attendance: "nao", CreatedAt: time.Now()},
	)

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("esperado 1 registro após dedupe, obtido %d", len(list))
	}
	if list[0].Attendance != "nao" {
		t.Errorf("dedupe deveria manter o registro mais recente, manteve %+v", list[0])
	}
}

func TestReplaceCompanions(t *testing.T) {
	repo := newStubRSVPRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitInput{
		FullName: "João Pereira", CPF: "123", Attendance: "sim",
		Companions: []CompanionInput{{FullName: "Ana Pereira", CPF: "456"}},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	guests, err := svc.ReplaceCompanions(ctx, created.ID, []CompanionInput{
		{FullName: "Caio Pereira", CPF: "789"},
		{FullName: "Duda Pereira", CPF: "012"},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("esperado 2 acompanhantes, obtido %d", len(guests))
	}

	if _, err := svc.ReplaceCompanions(ctx, uuid.New(), nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("confirmação inexistente deveria dar ErrNotFound, obtido %v", err)
	}
}

func TestGetStats(t *testing.T) {
	repo := newStubRSVPRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, SubmitInput{
		FullName: "Maria Souza", CPF: "111", Attendance: "sim",
		Companions: []CompanionInput{{FullName: "Ana Souza", CPF: "222"}},
	}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, err := svc.Submit(ctx, SubmitInput{FullName: "João Pereira", CPF: "333", Attendance: "nao"}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if stats.Total != 2 || stats.Confirmed != 1 || stats.Declined != 1 || stats.Companions != 1 {
		t.Errorf("agregados incorretos: %+v", stats)
	}
}
