package event

import (
	"context"
	"strings"
	"time"
)

// ValidationError indica entrada rejeitada antes de qualquer escrita.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

type repository interface {
	Get(ctx context.Context) (*Info, error)
	Upsert(ctx context.Context, input UpdateInput) (*Info, error)
}

// Service expõe leitura pública e edição administrativa do evento.
type Service struct {
	repo repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// Get devolve as informações exibidas no convite, com a data já no
// formato brasileiro quando a entrada for uma data ISO.
func (s *Service) Get(ctx context.Context) (*Info, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	info.EventDateFormatted = FormatDateBR(info.EventDate)
	return info, nil
}

// FormatDateBR converte datas ISO (aaaa-mm-dd) para dd/mm/aaaa. Texto
// livre volta como veio; a data é digitada pelo painel e nem sempre é ISO.
func FormatDateBR(value string) string {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return parsed.Format("02/01/2006")
}

// Update valida e grava os dados do evento.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Info, error) {
	input.EventDate = strings.TrimSpace(input.EventDate)
	input.EventTime = strings.TrimSpace(input.EventTime)
	input.EventLocation = strings.TrimSpace(input.EventLocation)

	if input.EventDate == "" {
		return nil, invalid("data do evento obrigatória")
	}
	if input.EventTime == "" {
		return nil, invalid("horário do evento obrigatório")
	}
	if input.EventLocation == "" {
		return nil, invalid("local do evento obrigatório")
	}
	if input.AdditionalInfo != nil {
		trimmed := strings.TrimSpace(*input.AdditionalInfo)
		if trimmed == "" {
			input.AdditionalInfo = nil
		} else {
			input.AdditionalInfo = &trimmed
		}
	}

	info, err := s.repo.Upsert(ctx, input)
	if err != nil {
		return nil, err
	}
	info.EventDateFormatted = FormatDateBR(info.EventDate)
	return info, nil
}
