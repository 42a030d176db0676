package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indica que nenhuma informação do evento foi cadastrada.
var ErrNotFound = errors.New("informações do evento não encontradas")

// Info guarda os dados exibidos na página inicial do convite.
// EventDateFormatted é derivado na leitura, não persistido.
type Info struct {
	ID                 uuid.UUID `json:"id"`
	EventDate          string    `json:"event_date"`
	EventDateFormatted string    `json:"event_date_formatted,omitempty"`
	EventTime          string    `json:"event_time"`
	EventLocation      string    `json:"event_location"`
	AdditionalInfo     *string   `json:"additional_info,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateInput carrega os campos editáveis pelo painel.
type UpdateInput struct {
	EventDate      string  `json:"event_date"`
	EventTime      string  `json:"event_time"`
	EventLocation  string  `json:"event_location"`
	AdditionalInfo *string `json:"additional_info"`
}
