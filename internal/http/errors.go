package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/chadecozinha/api/internal/event"
	"github.com/chadecozinha/api/internal/gift"
	"github.com/chadecozinha/api/internal/message"
	"github.com/chadecozinha/api/internal/rsvp"
)

// writeServiceError converte erros de domínio no envelope padrão.
func writeServiceError(w http.ResponseWriter, err error) {
	var giftValidation *gift.ValidationError
	var rsvpValidation *rsvp.ValidationError
	var eventValidation *event.ValidationError
	var messageValidation *message.ValidationError

	switch {
	case errors.As(err, &giftValidation),
		errors.As(err, &rsvpValidation),
		errors.As(err, &eventValidation),
		errors.As(err, &messageValidation):
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	case errors.Is(err, gift.ErrReorderMismatch),
		errors.Is(err, rsvp.ErrInvalidAttendance):
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	case errors.Is(err, gift.ErrAlreadyReserved):
		WriteError(w, http.StatusConflict, "CONFLICT", "este presente já foi reservado por outra pessoa", nil)
	case errors.Is(err, gift.ErrNotFound),
		errors.Is(err, rsvp.ErrNotFound),
		errors.Is(err, event.ErrNotFound),
		errors.Is(err, message.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		log.Error().Err(err).Msg("erro interno no handler")
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "erro interno", nil)
	}
}
