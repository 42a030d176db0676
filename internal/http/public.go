package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chadecozinha/api/internal/event"
	"github.com/chadecozinha/api/internal/gift"
	"github.com/chadecozinha/api/internal/message"
	"github.com/chadecozinha/api/internal/rsvp"
)

// GetEvent devolve as informações do evento para o convite.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
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

// ListGifts devolve a vitrine paginada com busca, categoria e ordenação.
func (h *Handler) ListGifts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	search := strings.TrimSpace(query.Get("busca"))
	category := strings.TrimSpace(query.Get("categoria"))
	order := gift.ParseSortOrder(query.Get("ordenacao"))

	page := 1
	if raw := query.Get("pagina"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			page = parsed
		}
	}

	result, err := h.gifts.ListPage(r.Context(), search, category, order, page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// ListGiftCategories enumera as categorias existentes, com "Todos" à frente.
func (h *Handler) ListGiftCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.gifts.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, categories)
}

// ReserveGift marca um presente como reservado em nome do convidado.
func (h *Handler) ReserveGift(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload struct {
		Name string `json:"nome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	reserved, err := h.gifts.Reserve(r.Context(), id, payload.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, reserved)
}

// SubmitRSVP registra a confirmação de presença com acompanhantes.
func (h *Handler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var input rsvp.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	created, err := h.rsvps.Submit(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// ListRecentMessages devolve os últimos recados do mural.
func (h *Handler) ListRecentMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.Recent(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, messages)
}

// CreateMessage grava um recado deixado pelo convidado.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var input message.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	created, err := h.messages.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}
