// hasher - пакет со вспомогательными функциями для хэширования паролей пользователей.
package hasher

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Cost - вычислительная сложность bcrypt.
const Cost = 10

// HashPassword - функция, которая вычисляет bcrypt хэш пароля со случайной солью.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password, %w", err)
	}
	return string(hash), nil
}

// ComparePassword - функция для проверки пароля по сохраненному хэшу.
// Любая ошибка сравнения (в том числе некорректный хэш) означает несовпадение.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// CompareDummy - выполняет сравнение с заранее вычисленным хэшем, когда пользователь не найден.
// Время ответа при неизвестном адресе почты совпадает со временем ответа при неверном пароле.
func CompareDummy(password string) {
	dummyOnce.Do(func() {
		// ошибка возможна только при пароле длиннее 72 байт
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("healthpulse dummy password"), Cost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
