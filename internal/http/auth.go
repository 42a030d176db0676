package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/chadecozinha/api/internal/http/middleware"
	"github.com/chadecozinha/api/internal/service"
)

// Login autentica o administrador e emite a sessão.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"usuario"`
		Password string `json:"senha"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	if strings.TrimSpace(payload.Username) == "" || strings.TrimSpace(payload.Password) == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "usuário e senha são obrigatórios", nil)
		return
	}

	session, err := h.authService.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, http.StatusUnauthorized, "AUTH", err.Error(), nil)
			return
		}
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, session)
}

// Logout revoga a sessão corrente.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	jti := middleware.GetJTI(r.Context())
	if jti == "" {
		WriteError(w, http.StatusUnauthorized, "AUTH", "sessão não identificada", nil)
		return
	}

	if err := h.authService.Logout(r.Context(), jti); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"logout": true})
}

// Me devolve os dados do administrador autenticado.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())

	user, err := h.authService.Me(r.Context(), subject)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "AUTH", "sessão inválida", nil)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
