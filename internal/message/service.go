package message

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// RecentLimit limita a prévia do mural exibida na página pública.
const RecentLimit = 10

// MaxLength é o tamanho máximo aceito para um recado.
const MaxLength = 1000

// ValidationError indica entrada rejeitada antes de qualquer escrita.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

type repository interface {
	Create(ctx context.Context, senderName, text string) (*Message, error)
	List(ctx context.Context, limit int) ([]Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*Stats, error)
}

// Service reúne as regras do mural de recados.
type Service struct {
	repo repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// Create valida e grava o recado do convidado.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Message, error) {
	sender := strings.TrimSpace(input.SenderName)
	text := strings.TrimSpace(input.Message)

	if sender == "" {
		return nil, invalid("informe seu nome")
	}
	if text == "" {
		return nil, invalid("escreva uma mensagem")
	}
	if len(text) > MaxLength {
		return nil, invalid("mensagem muito longa")
	}

	return s.repo.Create(ctx, sender, text)
}

// Recent devolve os últimos recados para a página pública.
func (s *Service) Recent(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx, RecentLimit)
}

// List devolve todo o mural para o painel.
func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx, 0)
}

// Delete remove um recado pelo painel.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// GetStats resume o mural para o dashboard.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	return s.repo.GetStats(ctx)
}
