package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/chadecozinha/api/internal/auth"
)

type contextKey string

const (
	ContextKeySubject  contextKey = "subject"
	ContextKeyUsername contextKey = "username"
	ContextKeyJTI      contextKey = "jti"
)

// SessionChecker diz se um jti ainda corresponde a uma sessão ativa.
type SessionChecker interface {
	IsSessionActive(ctx context.Context, jti string) (bool, error)
}

// Auth valida o JWT de sessão, confere a revogação no Redis e injeta as
// claims no contexto.
func Auth(jwtManager *auth.JWTManager, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "AUTH", "token ausente")
				return
			}

			claims, err := jwtManager.ParseAndValidate(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "AUTH", "token inválido")
				return
			}

			if len(claims.Audience) == 0 || !strings.EqualFold(claims.Audience[0], auth.AudienceAdmin) {
				writeError(w, http.StatusUnauthorized, "AUTH", "audience inválida")
				return
			}

			active, err := sessions.IsSessionActive(r.Context(), claims.ID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "INTERNAL", "erro ao validar sessão")
				return
			}
			if !active {
				writeError(w, http.StatusUnauthorized, "AUTH", "sessão expirada")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySubject, claims.Subject)
			ctx = context.WithValue(ctx, ContextKeyUsername, claims.Username)
			ctx = context.WithValue(ctx, ContextKeyJTI, claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject recupera subject do contexto.
func GetSubject(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeySubject).(string)
	return val
}

// GetUsername recupera username do contexto.
func GetUsername(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeyUsername).(string)
	return val
}

// GetJTI recupera o identificador da sessão do contexto.
func GetJTI(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeyJTI).(string)
	return val
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": nil,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
