// token - пакет для выпуска и проверки JWT, которые связывают идентификатор пользователя с его видом.
package token

import (
	"errors"
	"fmt"
	"time"

	"healthpulse/internal/repositories/user"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken - токен не прошел проверку. Причина (подпись, формат, срок действия) клиенту не раскрывается.
var ErrInvalidToken = errors.New("invalid token")

// Claims - структура утверждений, которая включает стандартные утверждения
// и два пользовательских: идентификатор и вид пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string    `json:"id"`
	UserKind user.Kind `json:"userType"`
}

// Identity - данные пользователя, извлеченные из проверенного токена.
type Identity struct {
	UserID string
	Kind   user.Kind
}

// Service - выпускает и проверяет токены. Состояние выпущенных токенов не хранится.
type Service struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewService - создает сервис с секретным ключом подписи и временем жизни токена.
func NewService(secretKey string, ttl time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Issue - создает токен и возвращает его в виде строки.
func (s *Service) Issue(userID string, kind user.Kind) (string, error) {
	// создаю токен с алгоритмом подписи HS256 и утверждениями - Claims
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
			// дата истечения токена
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
		},
		UserID:   userID,
		UserKind: kind,
	})

	// создаю строку токена
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to signed JWT to string, %w", err)
	}
	return tokenString, nil
}

// Verify - функция для получения данных пользователя из токена с проверкой подписи, алгоритма и срока действия.
// Алгоритм должен совпадать с тем, который сервер использует для подписи токенов.
func (s *Service) Verify(tokenStr string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secretKey, nil
		},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w, %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	kind, ok := user.ParseKind(string(claims.UserKind))
	if !ok || claims.UserID == "" {
		return Identity{}, fmt.Errorf("%w, unknown subject", ErrInvalidToken)
	}
	return Identity{UserID: claims.UserID, Kind: kind}, nil
}
