package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chadecozinha/api/internal/rsvp"
	"github.com/chadecozinha/api/internal/util"
)

type adminRSVPEntry struct {
	rsvp.RSVP
	WhatsappLink string `json:"whatsapp_link,omitempty"`
}

// AdminListRSVPs devolve as confirmações sem duplicatas por nome, com o
// link wa.me pronto para contato.
func (h *Handler) AdminListRSVPs(w http.ResponseWriter, r *http.Request) {
	list, err := h.rsvps.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	entries := make([]adminRSVPEntry, 0, len(list))
	for _, rec := range list {
		entries = append(entries, adminRSVPEntry{
			RSVP:         rec,
			WhatsappLink: util.WhatsAppLink(rec.Whatsapp),
		})
	}

	WriteJSON(w, http.StatusOK, entries)
}

// AdminDeleteRSVP remove a confirmação e seus acompanhantes.
func (h *Handler) AdminDeleteRSVP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.rsvps.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// AdminListCompanions lista os acompanhantes de uma confirmação.
func (h *Handler) AdminListCompanions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	guests, err := h.rsvps.Guests(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, guests)
}

// AdminReplaceCompanions substitui a lista de acompanhantes de uma confirmação.
func (h *Handler) AdminReplaceCompanions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload struct {
		Companions []rsvp.CompanionInput `json:"acompanhantes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	guests, err := h.rsvps.ReplaceCompanions(r.Context(), id, payload.Companions)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, guests)
}
