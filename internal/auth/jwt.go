package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AudienceAdmin identifica tokens emitidos para o painel administrativo.
const AudienceAdmin = "admin"

// Claims representa as informações presentes em um JWT de sessão.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager encapsula geração e validação de tokens.
type JWTManager struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewJWTManager cria o gerenciador com segredo e TTL configurados.
func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), sessionTTL: sessionTTL}
}

// SessionTTL devolve a duração configurada da sessão.
func (m *JWTManager) SessionTTL() time.Duration {
	return m.sessionTTL
}

// GenerateSessionToken cria um JWT HS256 com validade igual à sessão.
// Retorna o token assinado, o jti e o instante de expiração.
func (m *JWTManager) GenerateSessionToken(subject, username string) (string, string, time.Time, error) {
	now := time.Now().UTC()
	jti := uuid.NewString()
	expires := now.Add(m.sessionTTL)

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{AudienceAdmin},
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return signed, jti, expires, nil
}

// ParseAndValidate verifica assinatura e expiração.
func (m *JWTManager) ParseAndValidate(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token inválido")
	}

	return claims, nil
}
