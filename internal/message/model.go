package message

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indica recado inexistente.
var ErrNotFound = errors.New("recado não encontrado")

// Message é um recado deixado no mural pelos convidados.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateInput carrega o payload do formulário público.
type CreateInput struct {
	SenderName string `json:"nome"`
	Message    string `json:"mensagem"`
}

// Stats resume o mural para o painel.
type Stats struct {
	Total    int `json:"total"`
	Today    int `json:"today"`
	ThisWeek int `json:"this_week"`
}
