package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chadecozinha/api/internal/gift"
	"github.com/chadecozinha/api/internal/storage"
)

// AdminListGifts devolve a lista completa na ordem do painel.
func (h *Handler) AdminListGifts(w http.ResponseWriter, r *http.Request) {
	gifts, err := h.gifts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, gifts)
}

// AdminCreateGift cadastra um presente no fim da lista.
func (h *Handler) AdminCreateGift(w http.ResponseWriter, r *http.Request) {
	var input gift.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	created, err := h.gifts.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// AdminUpdateGift aplica alterações parciais a um presente.
func (h *Handler) AdminUpdateGift(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload struct {
		Name        *string `json:"nome"`
		Description *string `json:"descricao"`
		Price       *string `json:"preco"`
		Image       *string `json:"imagem"`
		Link        *string `json:"link"`
		Category    *string `json:"categoria"`
		Position    *int    `json:"posicao"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	input := gift.UpdateInput{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Image:       payload.Image,
		Link:        payload.Link,
		Category:    payload.Category,
		Position:    payload.Position,
	}

	if payload.Price != nil {
		price, err := gift.ParsePrice(*payload.Price)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		input.Price = &price
	}

	updated, err := h.gifts.Update(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, updated)
}

// AdminDeleteGift remove o presente e, quando houver, a imagem no bucket.
func (h *Handler) AdminDeleteGift(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	existing, err := h.gifts.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.gifts.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	if h.s3 != nil && existing.Image != "" {
		if key := h.s3.KeyFromPublicURL(existing.Image); key != "" {
			if err := h.s3.Delete(r.Context(), key); err != nil {
				// presente já saiu do banco; só registra a sobra no bucket
				log.Warn().Err(err).Str("key", key).Msg("falha ao remover imagem do bucket")
			}
		}
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// AdminUploadGiftImage recebe multipart, envia ao bucket e grava a URL
// no presente, removendo a imagem anterior quando houver.
func (h *Handler) AdminUploadGiftImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	existing, err := h.gifts.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "form inválido", nil)
		return
	}

	fileHeader, err := getFirstFile(r.MultipartForm, "imagem")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	switch h.storage.(type) {
	case nil, storage.NoopUploader, *storage.NoopUploader:
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "armazenamento indisponível", nil)
		return
	}

	data, _, err := readMultipartFile(fileHeader, storage.MaxImageSize+1)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	contentType, err := storage.ValidateImage(data)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	result, err := h.storage.Upload(r.Context(), storage.UploadInput{
		Key:          storage.ImageKey(contentType),
		Body:         data,
		ContentType:  contentType,
		CacheControl: "public,max-age=31536000,immutable",
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível enviar imagem", nil)
		return
	}

	updated, err := h.gifts.Update(r.Context(), gift.UpdateInput{ID: id, Image: &result.URL})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if h.s3 != nil && existing.Image != "" && existing.Image != result.URL {
		if key := h.s3.KeyFromPublicURL(existing.Image); key != "" {
			if err := h.s3.Delete(r.Context(), key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("falha ao remover imagem antiga do bucket")
			}
		}
	}

	WriteJSON(w, http.StatusCreated, updated)
}

// AdminReorderGifts persiste a permutação completa vinda do arrastar-e-soltar.
func (h *Handler) AdminReorderGifts(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	ordered, err := h.gifts.Reorder(r.Context(), payload.IDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, ordered)
}

// AdminMoveGift desloca um presente uma posição acima ou abaixo.
func (h *Handler) AdminMoveGift(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload struct {
		Direction string `json:"direcao"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	ordered, err := h.gifts.Move(r.Context(), id, gift.MoveDirection(payload.Direction))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, ordered)
}

// AdminUnreserveGift devolve o presente à lista de disponíveis.
func (h *Handler) AdminUnreserveGift(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	released, err := h.gifts.Unreserve(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, released)
}
