// checker - пакет с проверками формы входных данных пользователя.
package checker

import (
	"regexp"
	"strings"
)

// Ограничения длины пароля. bcrypt не принимает пароли длиннее 72 байт.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Граничные значения жизненных показателей.
const (
	MaxHeartRate   = 300
	MaxTemperature = 150
	MaxOxygenLevel = 100
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// CheckEmail - функция для проверки корректности адреса электронной почты.
func CheckEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// CheckPassword - функция для проверки корректности пароля.
func CheckPassword(password string) bool {
	return len(password) >= MinPasswordLength && len(password) <= MaxPasswordLength
}

// CheckName - функция для проверки, что имя или фамилия не пустые.
func CheckName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// CheckHeartRate - пульс в диапазоне [0, 300].
func CheckHeartRate(v int) bool {
	return v >= 0 && v <= MaxHeartRate
}

// CheckTemperature - температура в диапазоне [0, 150].
func CheckTemperature(v float64) bool {
	return v >= 0 && v <= MaxTemperature
}

// CheckOxygenLevel - сатурация в диапазоне [0, 100].
func CheckOxygenLevel(v float64) bool {
	return v >= 0 && v <= MaxOxygenLevel
}
