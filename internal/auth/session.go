package auth

import "fmt"

// SessionRedisKey monta a chave que registra uma sessão ativa no Redis.
// A presença da chave é o que permite revogar a sessão no logout antes
// do JWT expirar por conta própria.
func SessionRedisKey(jti string) string {
	return fmt.Sprintf("session:%s:%s", AudienceAdmin, jti)
}
