package main

import (
	"fmt"
	"strings"

	"healthpulse/internal/client/api"
	"healthpulse/internal/client/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Ключи конфигурации клиента. Приоритет в порядке убывания: флаги, переменные окружения HEALTHPULSE_CLIENT_*, файл конфигурации.
const (
	keyServer   = "server"
	keyToken    = "token"
	keyLogLevel = "log-level"
	keyLogFile  = "log-file"
	keyConfig   = "config"
)

// bindGlobalFlags - регистрирует общие флаги и связывает их с viper.
func bindGlobalFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.StringP(keyServer, "a", "http://localhost:5000", "address of HealthPulse server")
	flags.String(keyToken, "", "JWT issued by login or registration")
	flags.StringP(keyLogLevel, "l", "error", "log level")
	flags.String(keyLogFile, "", "write logs to file instead of stderr")
	flags.StringP(keyConfig, "c", "", "name of configuration file")

	for _, key := range []string{keyServer, keyToken, keyLogLevel, keyLogFile} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	v.SetEnvPrefix("HEALTHPULSE_CLIENT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// setup - читает файл конфигурации, инициализирует логер и создает клиента API.
func setup(cmd *cobra.Command, v *viper.Viper) (*api.Client, error) {
	if configFile, _ := cmd.Flags().GetString(keyConfig); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("parse config file error: %w", err)
		}
	}

	if err := logger.Initialize(v.GetString(keyLogLevel), v.GetString(keyLogFile)); err != nil {
		return nil, fmt.Errorf("failed to initialize logger, %w", err)
	}

	server := v.GetString(keyServer)
	if server == "" {
		return nil, fmt.Errorf("address of server must be set")
	}
	client := api.NewClient(server)
	client.SetToken(v.GetString(keyToken))
	return client, nil
}
