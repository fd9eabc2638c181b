package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	// Хэш одного и того же пароля каждый раз разный из-за случайной соли
	password := "secret1"
	hash1, err := HashPassword(password)
	require.NoError(t, err)
	hash2, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash2)
	assert.NotEqual(t, password, hash1)

	// проверяю стоимость хэширования
	cost, err := bcrypt.Cost([]byte(hash1))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)

	// слишком длинный пароль bcrypt не принимает
	_, err = HashPassword(string(make([]byte, 100)))
	require.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.Equal(t, true, ComparePassword(hash, "secret1"))
	assert.Equal(t, false, ComparePassword(hash, "secret2"))
	assert.Equal(t, false, ComparePassword(hash, ""))
	// сам хэш не является паролем
	assert.Equal(t, false, ComparePassword(hash, hash))
	// некорректный хэш не приводит к панике
	assert.Equal(t, false, ComparePassword("not a hash", "secret1"))
}

func TestCompareDummy(t *testing.T) {
	// повторные вызовы используют один и тот же хэш
	CompareDummy("secret1")
	CompareDummy("secret2")
	require.NotEmpty(t, dummyHash)
}
