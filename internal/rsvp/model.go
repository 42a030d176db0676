package rsvp

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("confirmação não encontrada")
	ErrInvalidAttendance = errors.New("resposta de presença inválida")
)

const (
	AttendanceYes = "sim"
	AttendanceNo  = "nao"

	// MaxCompanions limita acompanhantes por confirmação.
	MaxCompanions = 4
)

// RSVP representa uma confirmação de presença enviada por um convidado.
type RSVP struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LastName   string    `json:"last_name"`
	Whatsapp   string    `json:"whatsapp"`
	CPF        string    `json:"cpf"`
	Attendance string    `json:"attendance"`
	Message    *string   `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Guest representa um acompanhante vinculado a uma confirmação.
type Guest struct {
	ID        uuid.UUID `json:"id"`
	RSVPID    uuid.UUID `json:"rsvp_id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	Whatsapp  string    `json:"whatsapp"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanionInput descreve um acompanhante no envio do formulário.
type CompanionInput struct {
	FullName string `json:"nome"`
	CPF      string `json:"cpf"`
	Whatsapp string `json:"whatsapp"`
}

// SubmitInput encapsula o envio do formulário de confirmação.
type SubmitInput struct {
	FullName   string           `json:"nome"`
	CPF        string           `json:"cpf"`
	Whatsapp   string           `json:"whatsapp"`
	Attendance string           `json:"presenca"`
	Message    string           `json:"mensagem"`
	Companions []CompanionInput `json:"acompanhantes"`
}

// Stats agrega números exibidos no painel.
type Stats struct {
	Total      int `json:"total"`
	Confirmed  int `json:"confirmed"`
	Declined   int `json:"declined"`
	Companions int `json:"companions"`
}

// IsValidAttendance aceita somente as duas respostas do formulário.
func IsValidAttendance(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	return value == AttendanceYes || value == AttendanceNo
}
