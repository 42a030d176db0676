package http

import "net/http"

// Dashboard agrega os números exibidos na abertura do painel.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rsvpStats, err := h.rsvps.GetStats(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	giftStats, err := h.gifts.GetStats(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	messageStats, err := h.messages.GetStats(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"confirmacoes": rsvpStats,
		"presentes":    giftStats,
		"recados":      messageStats,
	})
}
