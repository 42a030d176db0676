package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/chadecozinha/api/internal/admin"
	"github.com/chadecozinha/api/internal/auth"
)

// ErrInvalidCredentials indica usuário ou senha incorretos. A mensagem
// é a mesma para os dois casos de propósito.
var ErrInvalidCredentials = errors.New("usuário ou senha inválidos")

type adminRepository interface {
	GetByUsername(ctx context.Context, username string) (*admin.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*admin.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type sessionStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// AuthService trata login, logout e consulta da sessão do painel.
type AuthService struct {
	admins adminRepository
	store  sessionStore
	jwt    *auth.JWTManager
}

// NewAuthService cria o serviço de autenticação.
func NewAuthService(admins adminRepository, store sessionStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{admins: admins, store: store, jwt: jwtManager}
}

// JWT expõe o gerenciador de tokens para o middleware de autenticação.
func (s *AuthService) JWT() *auth.JWTManager {
	return s.jwt
}

// Session é o resultado de um login bem-sucedido.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

// Login confere as credenciais e emite uma sessão de 24h registrada no
// Redis. A chave no Redis é o que permite revogar no logout.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, jti, expires, err := s.jwt.GenerateSessionToken(user.ID.String(), user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, auth.SessionRedisKey(jti), user.ID.String(), s.jwt.SessionTTL()).Err(); err != nil {
		return nil, err
	}

	if err := s.admins.TouchLastLogin(ctx, user.ID); err != nil {
		// login já aconteceu; não vale a pena falhar por causa do carimbo
		log.Warn().Err(err).Str("username", user.Username).Msg("falha ao registrar last_login")
	}

	return &Session{Token: token, ExpiresAt: expires, Username: user.Username}, nil
}

// Logout revoga a sessão removendo o jti do Redis. Idempotente.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	return s.store.Del(ctx, auth.SessionRedisKey(jti)).Err()
}

// IsSessionActive diz se o jti ainda consta como sessão válida.
func (s *AuthService) IsSessionActive(ctx context.Context, jti string) (bool, error) {
	n, err := s.store.Exists(ctx, auth.SessionRedisKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Me devolve o administrador dono da sessão.
func (s *AuthService) Me(ctx context.Context, subject string) (*admin.User, error) {
	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, admin.ErrNotFound
	}
	return s.admins.GetByID(ctx, id)
}
