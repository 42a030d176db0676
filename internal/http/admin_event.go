package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chadecozinha/api/internal/event"
)

// AdminGetEvent devolve as informações do evento para edição.
func (h *Handler) AdminGetEvent(w http.ResponseWriter, r *http.Request) {
	info, err := h.events.Get(r.Context())
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			WriteJSON(w, http.StatusOK, nil)
			return
		}
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, info)
}

// AdminUpdateEvent grava os dados do evento.
func (h *Handler) AdminUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var input event.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	info, err := h.events.Update(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, info)
}
