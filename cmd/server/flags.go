package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"healthpulse/internal/server/config"
)

var (
	netAddr     string // адрес запуска сервиса
	databaseDsn string // адрес базы данных или memory для хранилища в памяти
	logLevel    string // уровень логирования
	configFile  string // путь к файлу конфигурации
	secretKey   string // секретный ключ для создания JWT
	expireToken int    // время действия JWT в часах
	env         string // режим запуска: development или production
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() (config.Configs, error) {
	parseFlags()
	if err := parseConfigFile(); err != nil {
		return config.Configs{}, err
	}
	parseEnvironment()

	// Проверяю корректность установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return config.Configs{}, fmt.Errorf("failed to set global variable, %w", err)
	}

	return config.Configs{
		Address:     netAddr,
		LogLevel:    logLevel,
		DatabaseDSN: databaseDsn,
		SecretKey:   secretKey,
		ExpireToken: expireToken,
		Env:         env,
	}, nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address and port to run server")

	// адрес базы данных, значение memory включает хранилище в памяти
	flag.StringVar(&databaseDsn, "d", "", "database connection address or \"memory\"")

	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&configFile, "c", "", "name of configuration file")
	flag.StringVar(&secretKey, "secret-key", "", "secret key for generating JWT")
	flag.StringVar(&env, "env", "", "environment: development or production")
	flagExpireToken := flag.Int("expire-token", 0, "JWT expiration date in hours")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
	expireToken = *flagExpireToken
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() error {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return nil
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		return fmt.Errorf("parse config file error: %w", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if databaseDsn == "" {
		databaseDsn = configs.DatabaseDSN
	}
	if secretKey == "" {
		secretKey = configs.SecretKey
	}
	if expireToken == 0 {
		expireToken = configs.ExpireToken
	}
	if env == "" {
		env = configs.Env
	}
	return nil
}

// parseEnvironment - функция для переопределения конфигурации из переменных окружения.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if netAddr == "" {
		netAddr = os.Getenv("HEALTHPULSE_SERVER_ADDRESS")
	}
	if databaseDsn == "" {
		databaseDsn = os.Getenv("HEALTHPULSE_SERVER_DATABASE_URL")
	}
	if logLevel == "" {
		logLevel = os.Getenv("HEALTHPULSE_SERVER_LOG_LEVEL")
	}
	if secretKey == "" {
		secretKey = os.Getenv("HEALTHPULSE_SERVER_SECRET_KEY")
	}
	if expireToken == 0 {
		envExpireToken := os.Getenv("HEALTHPULSE_SERVER_EXPIRE_TOKEN")
		if envExpireToken != "" {
			expire, err := strconv.Atoi(envExpireToken)
			if err == nil {
				expireToken = expire
			}
		}
	}
	if env == "" {
		env = os.Getenv("HEALTHPULSE_SERVER_ENV")
	}
	// режим по умолчанию
	if env == "" {
		env = config.EnvProduction
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address and port to run server must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if databaseDsn == "" {
		return fmt.Errorf("database connection address must be set")
	}
	if secretKey == "" {
		return fmt.Errorf("secret key must be set")
	}
	if expireToken <= 0 {
		return fmt.Errorf("expire token must be a positive number of hours")
	}
	if env != config.EnvDevelopment && env != config.EnvProduction {
		return fmt.Errorf("unknown environment %q", env)
	}
	return nil
}
