package admin

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound é retornado quando o usuário não existe.
var ErrNotFound = errors.New("usuário não encontrado")

// User representa um administrador do site.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
