package rsvp

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chadecozinha/api/internal/util"
)

// ValidationError indica formulário rejeitado antes de qualquer escrita.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

type repository interface {
	CreateWithGuests(ctx context.Context, record RSVP, guests []GuestRow) (*RSVP, error)
	ListAll(ctx context.Context) ([]RSVP, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RSVP, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListGuests(ctx context.Context, rsvpID uuid.UUID) ([]Guest, error)
	ReplaceGuests(ctx context.Context, rsvpID uuid.UUID, guests []GuestRow) error
	CountGuests(ctx context.Context) (int, error)
}

// Service reúne as regras do fluxo de confirmação de presença.
type Service struct {
	repo repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// Submit valida o formulário e persiste a confirmação junto com os
// acompanhantes. Nada é gravado quando a validação falha.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*RSVP, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Attendance = strings.ToLower(strings.TrimSpace(input.Attendance))

	if input.FullName == "" || strings.TrimSpace(input.CPF) == "" || input.Attendance == "" {
		return nil, invalid("preencha todos os campos obrigatórios")
	}
	if !util.ValidateFullName(input.FullName) {
		return nil, invalid("informe nome e sobrenome")
	}
	if !IsValidAttendance(input.Attendance) {
		return nil, ErrInvalidAttendance
	}

	if len(input.Companions) > 0 && input.Attendance != AttendanceYes {
		return nil, invalid("acompanhantes só são permitidos com presença confirmada")
	}
	if len(input.Companions) > MaxCompanions {
		return nil, invalid("máximo de 4 acompanhantes")
	}

	guests, err := buildGuestRows(input.Companions)
	if err != nil {
		return nil, err
	}

	first, last := util.SplitFullName(input.FullName)

	record := RSVP{
		Name:       first,
		LastName:   last,
		Whatsapp:   util.FormatWhatsApp(input.Whatsapp),
		CPF:        util.FormatCPF(input.CPF),
		Attendance: input.Attendance,
	}
	if msg := strings.TrimSpace(input.Message); msg != "" {
		record.Message = &msg
	}

	return s.repo.CreateWithGuests(ctx, record, guests)
}

// List devolve as confirmações mais recentes primeiro, deduplicadas pelo
// id; linhas sem id caem na identidade nome+sobrenome (mantém a mais
// recente). Homônimos com ids distintos aparecem todos.
func (s *Service) List(ctx context.Context) ([]RSVP, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(all))
	result := make([]RSVP, 0, len(all))
	for _, rec := range all {
		key := rec.ID.String()
		if rec.ID == uuid.Nil {
			key = strings.ToLower(rec.Name) + "_" + strings.ToLower(rec.LastName)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, rec)
	}

	return result, nil
}

// Get busca uma confirmação.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*RSVP, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete remove a confirmação e seus acompanhantes. Irreversível.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Guests lista os acompanhantes de uma confirmação.
func (s *Service) Guests(ctx context.Context, rsvpID uuid.UUID) ([]Guest, error) {
	if _, err := s.repo.GetByID(ctx, rsvpID); err != nil {
		return nil, err
	}
	return s.repo.ListGuests(ctx, rsvpID)
}

// ReplaceCompanions refaz a lista de acompanhantes de uma confirmação.
func (s *Service) ReplaceCompanions(ctx context.Context, rsvpID uuid.UUID, companions []CompanionInput) ([]Guest, error) {
	if _, err := s.repo.GetByID(ctx, rsvpID); err != nil {
		return nil, err
	}
	if len(companions) > MaxCompanions {
		return nil, invalid("máximo de 4 acompanhantes")
	}

	guests, err := buildGuestRows(companions)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceGuests(ctx, rsvpID, guests); err != nil {
		return nil, err
	}

	return s.repo.ListGuests(ctx, rsvpID)
}

// GetStats calcula os agregados exibidos no painel.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	companions, err := s.repo.CountGuests(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(list), Companions: companions}
	for _, rec := range list {
		if rec.Attendance == AttendanceYes {
			stats.Confirmed++
		} else {
			stats.Declined++
		}
	}

	return stats, nil
}

func buildGuestRows(companions []CompanionInput) ([]GuestRow, error) {
	guests := make([]GuestRow, 0, len(companions))
	for _, c := range companions {
		name := strings.TrimSpace(c.FullName)
		if name == "" || strings.TrimSpace(c.CPF) == "" {
			return nil, invalid("nome e CPF do acompanhante são obrigatórios")
		}
		if !util.ValidateFullName(name) {
			return nil, invalid("informe nome e sobrenome do acompanhante")
		}

		first, last := util.SplitFullName(name)
		guests = append(guests, GuestRow{
			Name:     first,
			LastName: last,
			Whatsapp: util.FormatWhatsApp(c.Whatsapp),
			CPF:      util.FormatCPF(c.CPF),
		})
	}
	return guests, nil
}
