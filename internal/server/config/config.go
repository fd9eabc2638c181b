package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	// EnvDevelopment - режим разработки: подробности внутренних ошибок отдаются клиенту.
	EnvDevelopment = "development"
	// EnvProduction - режим по умолчанию.
	EnvProduction = "production"
	// MemoryDSN - значение адреса базы данных, при котором используется хранилище в памяти.
	MemoryDSN = "memory"
)

// Configs представляет структуру конфигурации.
type Configs struct {
	Address     string `json:"address"`      // аналог переменной окружения HEALTHPULSE_SERVER_ADDRESS или флага -a
	LogLevel    string `json:"log_level"`    // аналог переменной окружения HEALTHPULSE_SERVER_LOG_LEVEL или флага -l
	DatabaseDSN string `json:"database_dsn"` // аналог переменной окружения HEALTHPULSE_SERVER_DATABASE_URL или флага -d
	SecretKey   string `json:"secret_key"`   // аналог переменной окружения HEALTHPULSE_SERVER_SECRET_KEY или флага -secret-key
	ExpireToken int    `json:"expire_token"` // аналог переменной окружения HEALTHPULSE_SERVER_EXPIRE_TOKEN или флага -expire-token
	Env         string `json:"env"`          // аналог переменной окружения HEALTHPULSE_SERVER_ENV или флага -env
}

// Development - сервер запущен в режиме разработки.
func (c Configs) Development() bool {
	return c.Env == EnvDevelopment
}

// InMemory - вместо PostgreSQL используется хранилище в памяти.
func (c Configs) InMemory() bool {
	return c.DatabaseDSN == MemoryDSN
}

// TokenTTL - время действия токена. В конфигурации задается в часах.
func (c Configs) TokenTTL() time.Duration {
	return time.Duration(c.ExpireToken) * time.Hour
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open configuration file error: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	dec := json.NewDecoder(reader)
	err = dec.Decode(&configs)
	if err != nil {
		return Configs{}, fmt.Errorf("parse configuration file error: %w", err)
	}

	return configs, nil
}
