package main

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"healthpulse/internal/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetVariables() {
	netAddr = ""
	databaseDsn = ""
	logLevel = ""
	configFile = ""
	secretKey = ""
	expireToken = 0
	env = ""
}

func TestParseFlags(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	os.Args = []string{"cmd", "-a", ":9000", "-l", "debug", "-d", "db_dsn", "-c", "/config/file",
		"-secret-key", "key", "-expire-token", "3", "-env", "development"}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	parseFlags()

	assert.Equal(t, ":9000", netAddr)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "db_dsn", databaseDsn)
	assert.Equal(t, "/config/file", configFile)
	assert.Equal(t, "key", secretKey)
	assert.Equal(t, 3, expireToken)
	assert.Equal(t, "development", env)
}

func TestParseVariablesPriority(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	// Устанавливаю переменные окружения
	t.Setenv("HEALTHPULSE_SERVER_ADDRESS", "env_url")
	t.Setenv("HEALTHPULSE_SERVER_DATABASE_URL", "env_dsn")
	t.Setenv("HEALTHPULSE_SERVER_LOG_LEVEL", "env_info")
	t.Setenv("HEALTHPULSE_SERVER_SECRET_KEY", "env_key")
	t.Setenv("HEALTHPULSE_SERVER_EXPIRE_TOKEN", "5")

	// Создаю временный конфигурационный файл
	testConfigFile := "./test_config.json"
	configContent := `{
		"address": "file_url",
		"log_level": "file_debug",
		"database_dsn": "file_dsn",
		"env": "development"
	}`
	err := os.WriteFile(testConfigFile, []byte(configContent), 0644)
	require.NoError(t, err)
	defer os.Remove(testConfigFile)

	// Устанавливаю значения флагов
	os.Args = []string{"cmd", "-a", "flag_url", "-c", testConfigFile}

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg, err := parseVariables()
	require.NoError(t, err)

	// Флаги имеют приоритет, затем файл, затем окружение
	assert.Equal(t, "flag_url", cfg.Address)
	assert.Equal(t, "file_debug", cfg.LogLevel)
	assert.Equal(t, "file_dsn", cfg.DatabaseDSN)
	assert.Equal(t, "env_key", cfg.SecretKey)
	assert.Equal(t, 5, cfg.ExpireToken)
	assert.Equal(t, config.EnvDevelopment, cfg.Env)
}

func TestParseEnvironment(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	// Устанавливаю переменные окружения
	t.Setenv("HEALTHPULSE_SERVER_ADDRESS", ":8000")
	t.Setenv("HEALTHPULSE_SERVER_DATABASE_URL", "env_dsn")
	t.Setenv("HEALTHPULSE_SERVER_LOG_LEVEL", "test_info")
	t.Setenv("HEALTHPULSE_SERVER_EXPIRE_TOKEN", "not a number")

	parseEnvironment()

	assert.Equal(t, ":8000", netAddr)
	assert.Equal(t, "test_info", logLevel)
	assert.Equal(t, "env_dsn", databaseDsn)
	assert.Equal(t, 0, expireToken)
	// режим по умолчанию
	assert.Equal(t, config.EnvProduction, env)
}

func TestParseConfigFile(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	testFlagNetAddr := "localhost:8082"
	testFlagLogLevel := "info"
	testFlagDatabaseDsn := "memory"

	createFile := func(name string) {
		data := fmt.Sprintf("{\"address\": \"%s\",\"log_level\": \"%s\",\"database_dsn\": \"%s\",\"expire_token\": 24}",
			testFlagNetAddr, testFlagLogLevel, testFlagDatabaseDsn)
		f, err := os.Create(name)
		require.NoError(t, err)
		defer f.Close()
		_, err = f.Write([]byte(data))
		require.NoError(t, err)
	}
	nameFile := "./test_config.json"
	createFile(nameFile)
	defer os.Remove(nameFile)

	// Устанавливаю путь к файлу конфигурации
	configFile = nameFile
	require.NoError(t, parseConfigFile())

	assert.Equal(t, testFlagNetAddr, netAddr)
	assert.Equal(t, testFlagLogLevel, logLevel)
	assert.Equal(t, testFlagDatabaseDsn, databaseDsn)
	assert.Equal(t, 24, expireToken)

	// несуществующий файл
	configFile = "./missing.json"
	require.Error(t, parseConfigFile())
}

func TestCheckVariables(t *testing.T) {
	// Сбрасываю значения переменных перед и после тестирования
	resetVariables()
	defer resetVariables()

	err := checkVariables()
	require.Error(t, err)

	netAddr = "some addr"
	err = checkVariables()
	require.Error(t, err)

	logLevel = "some level"
	err = checkVariables()
	require.Error(t, err)

	databaseDsn = "some dsn"
	err = checkVariables()
	require.Error(t, err)

	secretKey = "some key"
	err = checkVariables()
	require.Error(t, err)

	expireToken = 1
	env = config.EnvProduction
	err = checkVariables()
	require.NoError(t, err)

	env = "staging"
	err = checkVariables()
	require.Error(t, err)
}
